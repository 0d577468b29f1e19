package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/db"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/settlement"
	"github.com/gofiber/fiber/v2"
)

const testAdminToken = "test-admin-token"

type settlementRecorder struct {
	mu        sync.Mutex
	mintCalls int
	burnCalls int
	mintErr   error
	burnErr   error
}

func (stub *settlementRecorder) MintBadge(ctx context.Context, walletAddress string, badgeID string) (settlement.MintReceipt, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.mintCalls++
	if stub.mintErr != nil {
		return settlement.MintReceipt{}, stub.mintErr
	}
	return settlement.MintReceipt{Signature: "sig-mint", ExplorerURL: "https://explorer.test/sig-mint"}, nil
}

func (stub *settlementRecorder) BurnPoints(ctx context.Context, walletAddress string, amount int64) (settlement.BurnReceipt, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.burnCalls++
	if stub.burnErr != nil {
		return settlement.BurnReceipt{}, stub.burnErr
	}
	return settlement.BurnReceipt{Signature: "sig-burn"}, nil
}

func (stub *settlementRecorder) CreatePointsMint(ctx context.Context, authority string) (settlement.MintInfo, error) {
	return settlement.MintInfo{MintAddress: "mint-addr", Authority: authority}, nil
}

func (stub *settlementRecorder) LookupMint(ctx context.Context, mintAddress string) (settlement.MintInfo, error) {
	return settlement.MintInfo{MintAddress: mintAddress}, nil
}

type memoryPhotoStore struct {
	uploads int
}

func (store *memoryPhotoStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader, key string) (string, error) {
	store.uploads++
	return "https://cdn.test/" + key, nil
}

func newTestApp(t *testing.T) (*fiber.App, *Handler, *settlementRecorder) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "thinkpink-api-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	settle := &settlementRecorder{}
	handler := NewHandler(database, "test-secret", testAdminToken, time.UTC, settle, &memoryPhotoStore{})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler, settle
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, out any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string) (string, uint) {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":           "Test User",
		"email":          email,
		"password":       "StrongPass1",
		"wallet_address": "wallet-" + email,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", response.StatusCode)
	}

	var parsed struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, response, &parsed)
	if parsed.Token == "" {
		t.Fatal("register returned no token")
	}
	return parsed.Token, parsed.User.ID
}

func submitTestDonationRequest(t *testing.T, app *fiber.App, token string) string {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("location", "Community clinic"); err != nil {
		t.Fatalf("write form field: %v", err)
	}
	part, err := writer.CreateFormFile("photo", "proof.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.Copy(part, strings.NewReader("jpeg-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/donations", &buf)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Authorization", "Bearer "+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("submit donation: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("submit donation returned status %d", response.StatusCode)
	}

	var parsed struct {
		ID string `json:"id"`
	}
	decodeBody(t, response, &parsed)
	if parsed.ID == "" {
		t.Fatal("submission has no id")
	}
	return parsed.ID
}

func doAdmin(t *testing.T, app *fiber.App, method string, path string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	request.Header.Set("X-Admin-Token", testAdminToken)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func grantPoints(t *testing.T, handler *Handler, userID uint, amount int64) {
	t.Helper()
	if err := handler.repositories.Users.AddPoints(userID, amount); err != nil {
		t.Fatalf("grant %d points: %v", amount, err)
	}
}
