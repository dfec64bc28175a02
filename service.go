package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"percentile_worker/percentile"
)

const popTimeout = 5 * time.Second

func runService(db *sql.DB, calc *percentile.Calculator) {
	opts, err := redisOptionsFromEnv()
	if err != nil {
		log.WithError(err).Fatal("invalid REDIS_URL")
	}
	client := redis.NewClient(opts)
	defer client.Close()

	queue := "queue:" + queueName()
	ctx := context.Background()
	log.WithField("queue", queue).Info("listening for jobs")

	for {
		if err := waitForRedis(ctx, client); err != nil {
			log.WithError(err).Error("redis not reachable")
			time.Sleep(time.Second)
			continue
		}
		consumeQueue(ctx, client, db, calc, queue)
		time.Sleep(time.Second)
	}
}

func redisOptionsFromEnv() (*redis.Options, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	return redis.ParseURL(redisURL)
}

func queueName() string {
	if q := os.Getenv("WORKER_QUEUE"); q != "" {
		return q
	}
	return "default"
}

// waitForRedis pings until the server responds, backing off exponentially.
func waitForRedis(ctx context.Context, client *redis.Client) error {
	op := func() error { return client.Ping(ctx).Err() }
	return backoff.Retry(op, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
}

// consumeQueue blocks on the queue until a read error forces a reconnect.
func consumeQueue(ctx context.Context, client *redis.Client, db *sql.DB, calc *percentile.Calculator, queue string) {
	for {
		res, err := client.BRPop(ctx, popTimeout, queue).Result()
		if err == redis.Nil {
			continue // idle
		}
		if err != nil {
			log.WithError(err).Error("redis read error")
			return
		}
		if len(res) != 2 {
			continue
		}
		handlePayload(db, calc, []byte(res[1]))
	}
}

func handlePayload(db *sql.DB, calc *percentile.Calculator, payload []byte) {
	job, err := decodeJob(payload)
	if err != nil {
		log.WithError(err).Warn("dropping malformed job")
		return
	}
	if !job.accepted() {
		log.WithField("class", job.Class).Debug("skipping job class")
		return
	}
	id, err := job.sampleSetID()
	if err != nil || id == 0 {
		log.WithField("payload", string(payload)).Warn("job missing sample set id")
		return
	}
	if err := processSampleSet(db, calc, id); err != nil {
		jobsFailed.Inc()
		log.WithError(err).WithField("sample_set", id).Error("process error")
	}
}

func processSampleSet(db *sql.DB, calc *percentile.Calculator, id int64) error {
	if !existsSampleSet(db, id) {
		return errors.Errorf("sample_sets id %d not found", id)
	}
	raw, err := fetchSamples(db, id)
	if err != nil {
		return errors.Wrap(err, "fetch samples failed")
	}

	summary, duration, peakBytes, err := measureRun(func() (Summary, error) {
		return summarize(calc, raw)
	})
	if err != nil {
		return errors.Wrap(err, "summarize failed")
	}
	calculationSeconds.Observe(duration)

	if err := insertResult(db, id, summary, duration, peakBytes); err != nil {
		return errors.Wrap(err, "insert result failed")
	}
	jobsProcessed.Inc()
	log.WithFields(logrus.Fields{
		"sample_set": id,
		"duration":   duration,
		"peak_bytes": peakBytes,
	}).Info("processed sample set")
	return nil
}
