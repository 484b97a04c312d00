package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBucketPeriod(t *testing.T) {
	tests := []struct {
		input   string
		want    BucketPeriod
		wantErr bool
	}{
		{input: "", want: BucketMonthly},
		{input: "weekly", want: BucketWeekly},
		{input: "monthly", want: BucketMonthly},
		{input: "daily", wantErr: true},
		{input: "Weekly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseBucketPeriod(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
