// Package timeline builds and filters the milestone sequence shown to the user.
package timeline

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
)

// PlaceholderMonths is the highest age covered by the placeholder timeline.
const PlaceholderMonths = 12

// BuildInitial returns the placeholder timeline anchored on ref's month: slot i falls on the
// first day of the month i months after ref. It carries no business data and is meant to be
// replaced wholesale by the first backend response.
func BuildInitial(ref time.Time) model.MilestoneResponse {
	slots := make([]model.MilestoneSlot, 0, PlaceholderMonths+1)
	for i := 0; i <= PlaceholderMonths; i++ {
		d := time.Date(ref.Year(), ref.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		slots = append(slots, model.MilestoneSlot{
			AgeInMonths: i,
			TargetDate:  strfmt.Date(d),
			Size:        model.SizeUnknown,
			Items:       []model.Garment{},
		})
	}
	return model.MilestoneResponse{Milestones: slots}
}

// FilterFuture keeps the slots dated on or after the first day of ref's month, preserving
// order. The result never aliases the input slice.
func FilterFuture(slots []model.MilestoneSlot, ref time.Time) []model.MilestoneSlot {
	cutoff := dayKey(ref.Year(), ref.Month(), 1)
	out := make([]model.MilestoneSlot, 0, len(slots))
	for _, s := range slots {
		d := time.Time(s.TargetDate)
		if dayKey(d.Year(), d.Month(), d.Day()) >= cutoff {
			out = append(out, s)
		}
	}
	return out
}

// dayKey orders calendar days without involving time zones.
func dayKey(y int, m time.Month, d int) int {
	return y*10000 + int(m)*100 + d
}

// AgeInMonths returns the whole months elapsed between birth and on. A month counts once
// the day of month is reached; the result is never negative.
func AgeInMonths(birth, on time.Time) int {
	months := (on.Year()-birth.Year())*12 + int(on.Month()) - int(birth.Month())
	if on.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
