package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

func TestAgeBoundary(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		now  time.Time
		want string
	}{
		{"day before birthday", "2000-06-15", time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), "23"},
		{"on birthday", "2000-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "24"},
		{"after birthday", "2000-06-15", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), "24"},
		{"earlier month same day", "2000-06-15", time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), "23"},
		{"rfc3339 input", "2000-06-15T00:00:00Z", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "24"},
		{"empty input", "", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), Placeholder},
		{"garbage input", "not-a-date", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.dob, tt.now))
		})
	}
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "05 Mar 2024, 09:30", Timestamp(at))
	assert.Equal(t, "05 Mar 2024, 09:30", Timestamp("2024-03-05T09:30:00Z"))
	assert.Equal(t, "05 Mar 2024, 09:30", Timestamp(at.UnixMilli()))
	assert.Equal(t, "05 Mar 2024, 09:30", Timestamp(float64(at.UnixMilli())))
	assert.Equal(t, Placeholder, Timestamp("yesterday-ish"))
	assert.Equal(t, Placeholder, Timestamp(nil))
	assert.Equal(t, Placeholder, Timestamp(struct{}{}))
}

func TestCurrency(t *testing.T) {
	got := Currency(models.NewAmount(1500), "BDT")
	assert.NotEqual(t, Placeholder, got)
	assert.Contains(t, got, "1,500")

	// Unknown codes fall back to the default currency rather than failing.
	fallback := Currency(models.NewAmount(10), "NOPE")
	assert.NotEqual(t, Placeholder, fallback)

	// Missing amount renders the placeholder.
	assert.Equal(t, Placeholder, Currency(models.Amount{}, "BDT"))
}
