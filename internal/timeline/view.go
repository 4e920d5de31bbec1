package timeline

import (
	"fmt"
	"time"

	"github.com/kj-nakamura/baby-wear-translator/internal/model"
)

// View is the display state of a timeline: the current sequence and the selected index
// into its visible (future) part. A View is not safe for concurrent use.
type View struct {
	current  model.MilestoneResponse
	selected int
}

// NewView starts on the placeholder timeline for now.
func NewView(now time.Time) *View {
	return &View{current: BuildInitial(now)}
}

// Replace swaps in a freshly fetched timeline. The previous sequence is discarded, never
// merged, and the selection returns to the first visible slot.
func (v *View) Replace(resp model.MilestoneResponse) {
	v.current = resp
	v.selected = 0
}

// Timeline returns the sequence currently held, unfiltered.
func (v *View) Timeline() model.MilestoneResponse { return v.current }

// Visible recomputes the future slots for now.
func (v *View) Visible(now time.Time) []model.MilestoneSlot {
	return FilterFuture(v.current.Milestones, now)
}

// Selected is the selected index into Visible.
func (v *View) Selected() int { return v.selected }

// Select moves the selection to index i of the visible slots.
func (v *View) Select(i int, now time.Time) error {
	n := len(v.Visible(now))
	if i < 0 || i >= n {
		return fmt.Errorf("timeline: index %d out of range [0,%d)", i, n)
	}
	v.selected = i
	return nil
}

// Active returns the selected visible slot. ok is false when nothing is visible. A selection
// left out of range by a shrinking filter falls back to the first slot.
func (v *View) Active(now time.Time) (slot model.MilestoneSlot, ok bool) {
	visible := v.Visible(now)
	if len(visible) == 0 {
		return model.MilestoneSlot{}, false
	}
	if v.selected >= len(visible) {
		return visible[0], true
	}
	return visible[v.selected], true
}
