package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tolgaakgoz/attendly/internal/pkg/helpers"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := helpers.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestExpandDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "zero length range is one day",
			start: "2024-05-10",
			end:   "2024-05-10",
			want:  []string{"2024-05-10"},
		},
		{
			name:  "inclusive on both ends",
			start: "2024-05-10",
			end:   "2024-05-13",
			want:  []string{"2024-05-10", "2024-05-11", "2024-05-12", "2024-05-13"},
		},
		{
			name:  "crosses a month boundary",
			start: "2024-01-30",
			end:   "2024-02-02",
			want:  []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"},
		},
		{
			name:  "inverted range yields nothing",
			start: "2024-05-13",
			end:   "2024-05-10",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := ExpandDateRange(mustDate(t, tt.start), mustDate(t, tt.end))
			var got []string
			for _, d := range days {
				got = append(got, helpers.FormatDate(d))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainsID(t *testing.T) {
	assert.True(t, containsID([]int64{1, 2, 3}, 2))
	assert.False(t, containsID([]int64{1, 2, 3}, 4))
	assert.False(t, containsID(nil, 1))
}
