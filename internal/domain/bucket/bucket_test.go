//go:build unit

package bucket_test

import (
	"testing"
	"time"

	"lead-exchange/internal/domain/bucket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForAgeDays(t *testing.T) {
	cases := []struct {
		name     string
		ageDays  int
		want     bucket.Bucket
		eligible bool
		errIs    error
	}{
		{name: "negative age is a hard error", ageDays: -1, errIs: bucket.ErrNegativeAge},
		{name: "zero days not eligible", ageDays: 0, eligible: false},
		{name: "89 days not eligible", ageDays: 89, eligible: false},
		{name: "90 days enters first bucket", ageDays: 90, want: bucket.Month3To5, eligible: true},
		{name: "179 days still first bucket", ageDays: 179, want: bucket.Month3To5, eligible: true},
		{name: "180 days enters second bucket", ageDays: 180, want: bucket.Month6To8, eligible: true},
		{name: "269 days still second bucket", ageDays: 269, want: bucket.Month6To8, eligible: true},
		{name: "270 days enters third bucket", ageDays: 270, want: bucket.Month9To11, eligible: true},
		{name: "359 days still third bucket", ageDays: 359, want: bucket.Month9To11, eligible: true},
		{name: "360 days enters fourth bucket", ageDays: 360, want: bucket.Month12To23, eligible: true},
		{name: "719 days still fourth bucket", ageDays: 719, want: bucket.Month12To23, eligible: true},
		{name: "720 days enters open-ended bucket", ageDays: 720, want: bucket.Month24Plus, eligible: true},
		{name: "very old lead stays in open-ended bucket", ageDays: 10000, want: bucket.Month24Plus, eligible: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := bucket.ForAgeDays(tc.ageDays)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.eligible, ok)
			if tc.eligible {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFromAgeDays(t *testing.T) {
	_, err := bucket.FromAgeDays(89)
	assert.ErrorIs(t, err, bucket.ErrNotEligible)

	b, err := bucket.FromAgeDays(90)
	require.NoError(t, err)
	assert.Equal(t, bucket.Month3To5, b)
}

func TestAdjacentOrder(t *testing.T) {
	// Older neighbor always comes first; edges have a single neighbor.
	assert.Equal(t, []bucket.Bucket{bucket.Month9To11, bucket.Month3To5}, bucket.Month6To8.Adjacent())
	assert.Equal(t, []bucket.Bucket{bucket.Month6To8}, bucket.Month3To5.Adjacent())
	assert.Equal(t, []bucket.Bucket{bucket.Month12To23}, bucket.Month24Plus.Adjacent())
	assert.Nil(t, bucket.Bucket("NOPE").Adjacent())
}

func TestLeadAge(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejects non-UTC instants", func(t *testing.T) {
		zone := time.FixedZone("CST", -6*3600)
		_, err := bucket.NewLeadAge(createdAt.In(zone), createdAt.Add(time.Hour))
		require.Error(t, err)
	})

	t.Run("rejects asOf before createdAt", func(t *testing.T) {
		_, err := bucket.NewLeadAge(createdAt, createdAt.Add(-time.Second))
		require.ErrorIs(t, err, bucket.ErrInvalidOrder)
	})

	t.Run("days are whole 24h periods", func(t *testing.T) {
		age, err := bucket.NewLeadAge(createdAt, createdAt.Add(90*24*time.Hour-time.Second))
		require.NoError(t, err)
		assert.Equal(t, 89, age.Days())

		age, err = bucket.NewLeadAge(createdAt, createdAt.Add(90*24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 90, age.Days())

		b, ok := age.Bucket()
		assert.True(t, ok)
		assert.Equal(t, bucket.Month3To5, b)
	})

	t.Run("months are 30-day intervals", func(t *testing.T) {
		age, err := bucket.NewLeadAge(createdAt, createdAt.Add(185*24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 6, age.Months())
	})
}
