package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/pkg/logger"
)

const summaryTTL = 10 * time.Minute

// SummaryCache is an optional redis read-through cache for attendance
// percentage summaries. A nil *SummaryCache (or an unreachable redis) is
// fully functional: reads miss and writes are dropped, so the backend
// degrades to computing summaries from the store every time.
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache connects to redis with short timeouts. It never fails
// construction; connectivity problems surface as cache misses.
func NewSummaryCache(addr string) *SummaryCache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &SummaryCache{client: client}
}

// Healthy verifies redis connectivity.
func (c *SummaryCache) Healthy(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}

func summaryKey(studentID int64) string {
	return fmt.Sprintf("attendance:summary:%d", studentID)
}

// GetSummary returns the cached summary for a student, or nil on miss.
func (c *SummaryCache) GetSummary(ctx context.Context, studentID int64) *models.AttendanceSummary {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, summaryKey(studentID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debug().Err(err).Int64("studentID", studentID).Msg("Summary cache read failed")
		}
		return nil
	}

	var summary models.AttendanceSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil
	}
	return &summary
}

// SetSummary caches a computed summary.
func (c *SummaryCache) SetSummary(ctx context.Context, summary *models.AttendanceSummary) {
	if c == nil || c.client == nil || summary == nil {
		return
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, summaryKey(summary.StudentID), data, summaryTTL).Err(); err != nil {
		logger.Debug().Err(err).Int64("studentID", summary.StudentID).Msg("Summary cache write failed")
	}
}

// InvalidateSummary drops a student's cached summary. Every ledger write
// path calls this so stale percentages never outlive a marking.
func (c *SummaryCache) InvalidateSummary(ctx context.Context, studentIDs ...int64) {
	if c == nil || c.client == nil || len(studentIDs) == 0 {
		return
	}

	keys := make([]string, len(studentIDs))
	for i, id := range studentIDs {
		keys[i] = summaryKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Debug().Err(err).Msg("Summary cache invalidation failed")
	}
}

// Close releases the redis connection.
func (c *SummaryCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
