package pricing_test

import (
	"testing"
	"time"

	"travel-booking-service/internal/module/booking/pricing"

	"github.com/stretchr/testify/assert"
)

func TestRefundAmount(t *testing.T) {
	total := dec("1000")

	testCases := []struct {
		name  string
		start time.Time
		want  string
	}{
		{name: "ten days", start: now.AddDate(0, 0, 10), want: "900"},
		{name: "exactly seven days", start: now.AddDate(0, 0, 7), want: "900"},
		{name: "five days", start: now.AddDate(0, 0, 5), want: "500"},
		{name: "two days", start: now.AddDate(0, 0, 2), want: "250"},
		{name: "under a day", start: now.Add(20 * time.Hour), want: "0"},
		{name: "same day", start: now, want: "0"},
		{name: "already started", start: now.Add(-48 * time.Hour), want: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.RefundAmount(total, tc.start, now, pricing.DefaultRefundPolicy)
			assert.True(t, dec(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 6, pricing.DaysUntil(now.Add(7*24*time.Hour-time.Minute), now))
	assert.Equal(t, 0, pricing.DaysUntil(now.Add(-time.Hour), now))
}
