package services

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const sweepBatchSize = 25

// StartSettlementSweeper schedules periodic retries of deferred donation
// mints. The job stops when ctx is cancelled.
func StartSettlementSweeper(ctx context.Context, donations *DonationService, interval time.Duration) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			sweepCtx, cancel := context.WithTimeout(ctx, interval)
			defer cancel()
			donations.RetryPendingMints(sweepCtx, sweepBatchSize)
		}),
	)
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	go func() {
		<-ctx.Done()
		if err := scheduler.Shutdown(); err != nil {
			log.Printf("settlement sweeper shutdown: %v", err)
		}
	}()

	return scheduler, nil
}
