package humanize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelative(t *testing.T) {
	now := time.Date(2022, 1, 3, 14, 5, 30, 0, time.UTC)

	tests := []struct {
		name     string
		ref      time.Time
		detailed bool
		want     string
	}{
		{
			name: "past",
			ref:  now.Add(-90 * time.Second),
			want: "prieš 1 minutę ir 30 sekundžių",
		},
		{
			name: "future",
			ref:  now.Add(90 * time.Second),
			want: "už 1 minutės ir 30 sekundžių",
		},
		{
			name: "same instant",
			ref:  now,
			want: "už 0 sekundžių",
		},
		{
			name: "past hours",
			ref:  now.Add(-3*time.Hour - 12*time.Minute),
			want: "prieš 3 valandas ir 12 minučių",
		},
		{
			name:     "detailed",
			ref:      now.Add(-5 * time.Minute),
			detailed: true,
			want:     "prieš 5 minutes (2022 m. sausio 03 d. 14:00)",
		},
		{
			name: "too far in the past",
			ref:  now.Add(-40 * 24 * time.Hour),
			want: "2021 m. lapkričio 24 d. 14:05",
		},
		{
			name:     "too far in the future, detailed",
			ref:      now.Add(40 * 24 * time.Hour),
			detailed: true,
			want:     "2022 m. vasario 12 d. 14:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Relative(tt.ref, now, tt.detailed))
		})
	}
}

func TestTime(t *testing.T) {
	assert.Equal(t, "prieš 2 valandas", Time(time.Now().Add(-2*time.Hour)))
}
