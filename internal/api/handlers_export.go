package api

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const exportWindowDays = 366

// ExportJSON returns up to a year of the user's daily logs for clinician
// review or migration to another tracker.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.dayService.FetchRecent(user.ID, exportWindowDays)
	if err != nil {
		return serviceError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cycle-log.json"`)
	return c.JSON(fiber.Map{
		"exported_at": handler.now().Format(time.RFC3339),
		"days":        entries,
	})
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.dayService.FetchRecent(user.ID, exportWindowDays)
	if err != nil {
		return serviceError(c, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{"date", "period_start", "period_end", "spotting", "mood", "energy", "symptoms", "notes"})
	for _, entry := range entries {
		_ = writer.Write([]string{
			entry.Date.Format("2006-01-02"),
			strconv.FormatBool(entry.PeriodStart),
			strconv.FormatBool(entry.PeriodEnd),
			strconv.FormatBool(entry.Spotting),
			strconv.Itoa(entry.Mood),
			strconv.Itoa(entry.Energy),
			strings.Join(entry.Symptoms, ";"),
			entry.Notes,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cycle-log.csv"`)
	return c.Send(buf.Bytes())
}
