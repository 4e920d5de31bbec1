package timeline

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestBuildInitial(t *testing.T) {
	refs := []time.Time{
		time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC),
		time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.December, 1, 0, 0, 0, 0, time.FixedZone("JST", 9*3600)),
		time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC),
	}
	for _, ref := range refs {
		t.Run(ref.Format(time.RFC3339), func(t *testing.T) {
			tl := BuildInitial(ref)
			require.Len(t, tl.Milestones, 13)

			for i, s := range tl.Milestones {
				d := time.Time(s.TargetDate)
				assert.Equal(t, i, s.AgeInMonths)
				assert.Equal(t, model.SizeUnknown, s.Size)
				assert.NotNil(t, s.Items)
				assert.Empty(t, s.Items)
				assert.Equal(t, 1, d.Day())

				// one calendar month after ref's month
				wantYear := ref.Year() + (int(ref.Month())-1+i)/12
				wantMonth := time.Month((int(ref.Month())-1+i)%12 + 1)
				assert.Equal(t, wantYear, d.Year())
				assert.Equal(t, wantMonth, d.Month())

				if i > 0 {
					prev := time.Time(tl.Milestones[i-1].TargetDate)
					assert.True(t, d.After(prev))
					assert.Equal(t, prev.AddDate(0, 1, 0), d)
				}
			}
		})
	}
}

func TestBuildInitial_YearBoundary(t *testing.T) {
	tl := BuildInitial(date(t, "2025-11-15"))
	assert.Equal(t, "2025-11-01", tl.Milestones[0].TargetDate.String())
	assert.Equal(t, "2026-01-01", tl.Milestones[2].TargetDate.String())
	assert.Equal(t, "2026-11-01", tl.Milestones[12].TargetDate.String())
}

func slotsOn(t *testing.T, days ...string) []model.MilestoneSlot {
	t.Helper()
	out := make([]model.MilestoneSlot, 0, len(days))
	for i, d := range days {
		out = append(out, model.MilestoneSlot{AgeInMonths: i, TargetDate: strfmt.Date(date(t, d)), Size: "50-60cm"})
	}
	return out
}

func TestFilterFuture(t *testing.T) {
	slots := slotsOn(t, "2024-01-15", "2024-02-15", "2024-03-15", "2024-04-01", "2024-04-15", "2024-05-15")
	ref := time.Date(2024, time.April, 20, 10, 0, 0, 0, time.UTC)

	got := FilterFuture(slots, ref)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-04-01", got[0].TargetDate.String())
	assert.Equal(t, "2024-04-15", got[1].TargetDate.String())
	assert.Equal(t, "2024-05-15", got[2].TargetDate.String())
	assert.Equal(t, 3, got[0].AgeInMonths)
}

func TestFilterFuture_Idempotent(t *testing.T) {
	slots := slotsOn(t, "2023-12-31", "2024-01-01", "2024-06-30", "2025-01-01")
	for _, ref := range []time.Time{
		date(t, "2023-01-01"),
		date(t, "2024-01-31"),
		date(t, "2024-07-01"),
		date(t, "2030-01-01"),
	} {
		once := FilterFuture(slots, ref)
		twice := FilterFuture(once, ref)
		assert.Equal(t, once, twice, "ref %s", ref)
	}
}

func TestFilterFuture_PlaceholderIsAllVisible(t *testing.T) {
	now := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	tl := BuildInitial(now)
	assert.Len(t, FilterFuture(tl.Milestones, now), 13)
	assert.Len(t, FilterFuture(tl.Milestones, now.AddDate(0, 3, 0)), 10)
}

func TestAgeInMonths(t *testing.T) {
	tests := []struct {
		name  string
		birth string
		on    string
		want  int
	}{
		{"same day", "2025-10-01", "2025-10-01", 0},
		{"29 days", "2025-10-01", "2025-10-30", 0},
		{"exactly one month", "2025-10-01", "2025-11-01", 1},
		{"four months ten days", "2025-10-01", "2026-02-11", 4},
		{"first birthday", "2025-01-01", "2026-01-01", 12},
		{"day before monthday", "2025-10-15", "2025-11-14", 0},
		{"on monthday", "2025-10-15", "2025-11-15", 1},
		{"month end to february", "2025-01-31", "2025-02-28", 0},
		{"month end to march", "2025-01-31", "2025-03-01", 1},
		{"across year", "2024-12-15", "2025-02-15", 2},
		{"birth in future", "2099-12-31", "2025-01-01", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeInMonths(date(t, tt.birth), date(t, tt.on)))
		})
	}
}
