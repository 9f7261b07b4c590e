package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cogniboost/progress-system/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker drops duplicate deliveries of the same game-end report.
// Key format: dedup:<user_id>:<game>:<submission_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact submission has already been recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID string, kind domain.GameKind, submissionID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, kind, submissionID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, userID string, kind domain.GameKind, submissionID string) error {
	return d.client.Set(ctx, d.key(userID, kind, submissionID), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(userID string, kind domain.GameKind, submissionID string) string {
	return fmt.Sprintf("dedup:%s:%s:%s", userID, kind, submissionID)
}
