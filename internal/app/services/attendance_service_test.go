package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tolgaakgoz/attendly/internal/pkg/helpers"
)

func TestHolidayDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  []string
	}{
		{
			// five Sundays plus the 1st and 3rd Saturday
			name:  "march 2024",
			year:  2024,
			month: time.March,
			want:  []string{"2024-03-02", "2024-03-03", "2024-03-10", "2024-03-16", "2024-03-17", "2024-03-24", "2024-03-31"},
		},
		{
			// month with five Saturdays: only the 1st and 3rd count
			name:  "august 2025",
			year:  2025,
			month: time.August,
			want:  []string{"2025-08-02", "2025-08-03", "2025-08-10", "2025-08-16", "2025-08-17", "2025-08-24", "2025-08-31"},
		},
		{
			name:  "february 2021",
			year:  2021,
			month: time.February,
			want:  []string{"2021-02-06", "2021-02-07", "2021-02-14", "2021-02-20", "2021-02-21", "2021-02-28"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := HolidayDates(tt.year, tt.month)
			got := make([]string, len(dates))
			for i, d := range dates {
				got[i] = helpers.FormatDate(d)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHolidayDatesAllInMonth(t *testing.T) {
	for _, d := range HolidayDates(2026, time.January) {
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 2026, d.Year())
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		statuses    []string
		wantPresent int
		wantTotal   int
		wantPercent float64
	}{
		{
			name:        "holidays excluded from both sides",
			statuses:    []string{"present", "absent", "Holiday", "On-Duty"},
			wantPresent: 2,
			wantTotal:   3,
			wantPercent: 66.67,
		},
		{
			name:        "no records",
			statuses:    nil,
			wantPresent: 0,
			wantTotal:   0,
			wantPercent: 0,
		},
		{
			name:        "only holidays",
			statuses:    []string{"Holiday", "HOLIDAY", "holiday"},
			wantPresent: 0,
			wantTotal:   0,
			wantPercent: 0,
		},
		{
			name:        "case insensitive present matching",
			statuses:    []string{"Present", "ON_DUTY", "on-duty"},
			wantPresent: 3,
			wantTotal:   3,
			wantPercent: 100,
		},
		{
			name:        "unknown labels count as absent",
			statuses:    []string{"present", "late", "sick"},
			wantPresent: 1,
			wantTotal:   3,
			wantPercent: 33.33,
		},
		{
			name:        "all absent",
			statuses:    []string{"absent", "absent"},
			wantPresent: 0,
			wantTotal:   2,
			wantPercent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(7, tt.statuses)
			assert.Equal(t, int64(7), summary.StudentID)
			assert.Equal(t, tt.wantPresent, summary.PresentDays)
			assert.Equal(t, tt.wantTotal, summary.TotalDays)
			assert.Equal(t, tt.wantPercent, summary.Percentage)
		})
	}
}

func TestSummarizeRounding(t *testing.T) {
	// 1/3 must round to two decimals, not truncate
	summary := Summarize(1, []string{"present", "absent", "absent"})
	assert.Equal(t, 33.33, summary.Percentage)

	summary = Summarize(1, []string{"present", "present", "absent"})
	assert.Equal(t, 66.67, summary.Percentage)
}
