package worker

// requeue.go
// Background goroutine that periodically drains the alert DLQ back onto the
// work queue. SMTP outages are usually transient: jobs that failed while the
// relay was down succeed once it returns. Entries that keep failing after
// MaxRequeues resurrections are parked permanently.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	requeueTickInterval = 5 * time.Minute
	requeueBatchSize    = 10

	// ParkedPrefix holds entries the ticker gave up on.
	ParkedPrefix = "dlq:parked:"
)

// StartDLQRequeue launches a goroutine that ticks every 5 minutes and moves
// a batch of DLQ entries back onto their original queue. It respects the
// context for graceful shutdown.
func StartDLQRequeue(ctx context.Context, rdb *redis.Client) {
	go func() {
		ticker := time.NewTicker(requeueTickInterval)
		defer ticker.Stop()

		log.Info().Msg("dlq requeue: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("dlq requeue: shutting down")
				return
			case <-ticker.C:
				requeueBatch(ctx, rdb, QueueAlerts)
			}
		}
	}()
}

func requeueBatch(ctx context.Context, rdb *redis.Client, queue string) {
	dlqKey := DLQPrefix + queue

	for i := 0; i < requeueBatchSize; i++ {
		raw, err := rdb.RPop(ctx, dlqKey).Result()
		if err != nil {
			return // empty queue or Redis down
		}

		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.Error().Err(err).Str("dlq_key", dlqKey).Msg("dlq requeue: corrupt entry dropped")
			continue
		}

		if entry.Requeues >= MaxRequeues {
			parked, _ := json.Marshal(entry)
			if err := rdb.LPush(ctx, ParkedPrefix+queue, parked).Err(); err != nil {
				log.Error().Err(err).Msg("dlq requeue: failed to park entry")
			}
			log.Warn().
				Str("job_type", entry.JobType).
				Int("requeues", entry.Requeues).
				Msg("dlq requeue: entry exhausted its resurrections, parked")
			continue
		}

		entry.Requeues++
		job := Job{Type: entry.JobType, Payload: entry.Payload}
		encoded, err := json.Marshal(job)
		if err != nil {
			continue
		}
		if err := rdb.LPush(ctx, entry.OriginalQueue, encoded).Err(); err != nil {
			log.Error().Err(err).Str("queue", entry.OriginalQueue).Msg("dlq requeue: push failed")
			continue
		}
		log.Info().
			Str("job_type", entry.JobType).
			Str("queue", entry.OriginalQueue).
			Int("requeue", entry.Requeues).
			Msg("dlq requeue: job returned to work queue")
	}
}
