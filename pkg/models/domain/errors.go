package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks caller mistakes (malformed dates, unknown enum values,
// non-positive limits). Everything else surfaced by the engine is treated as a
// computation failure.
var ErrInvalidInput = errors.New("invalid input")

// BucketPeriod selects the bucket size for the per-brand averages.
type BucketPeriod string

const (
	BucketWeekly  BucketPeriod = "weekly"
	BucketMonthly BucketPeriod = "monthly"
)

// ParseBucketPeriod validates a caller-supplied period value. The empty string
// defaults to monthly.
func ParseBucketPeriod(s string) (BucketPeriod, error) {
	switch BucketPeriod(s) {
	case "":
		return BucketMonthly, nil
	case BucketWeekly, BucketMonthly:
		return BucketPeriod(s), nil
	default:
		return "", fmt.Errorf("%w: unknown period %q, expected weekly or monthly", ErrInvalidInput, s)
	}
}
