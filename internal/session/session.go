// Package session holds the interactive browsing state.
package session

import (
	"sort"

	"go.uber.org/zap"

	"github.com/verte-zerg/tinysteps/internal/logging"
	"github.com/verte-zerg/tinysteps/internal/model"
)

// Options seeds a new session.
type Options struct {
	Age          int
	Mode         model.ViewMode
	Category     string
	ChangePoints []int
	Logger       *zap.Logger
}

// State is the selection state of one browsing session. It lives in memory
// only and is mutated solely in response to user input.
type State struct {
	mode       model.ViewMode
	age        int
	category   string
	detail     *model.Record
	dragging   bool
	categories []string
	points     []int
	logger     *zap.Logger
}

// New creates a session over the given categories (ascending order). The
// default category is chosen here, once, rather than while rendering.
func New(categories []string, opts Options) *State {
	s := &State{
		mode:       model.ModePulse,
		categories: append([]string(nil), categories...),
		points:     append([]int(nil), opts.ChangePoints...),
		logger:     logging.OrNop(opts.Logger),
	}
	sort.Ints(s.points)
	s.SetAge(opts.Age)
	if opts.Mode == model.ModeLibrary {
		s.mode = model.ModeLibrary
	}
	if opts.Category != "" {
		s.SetCategory(opts.Category)
	}
	s.EnsureDefaultCategory()
	return s
}

// Mode returns the current view mode.
func (s *State) Mode() model.ViewMode {
	return s.mode
}

// Age returns the selected age in months.
func (s *State) Age() int {
	return s.age
}

// Category returns the active category, or "" when the catalogue has none.
func (s *State) Category() string {
	return s.category
}

// Categories returns the selectable categories.
func (s *State) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Detail returns the record shown in the detail overlay, if any.
func (s *State) Detail() (model.Record, bool) {
	if s.detail == nil {
		return model.Record{}, false
	}
	return *s.detail, true
}

// Dragging reports whether the slider thumb is being dragged.
func (s *State) Dragging() bool {
	return s.dragging
}

// SetAge clamps n to the slider range and makes it the selected age.
func (s *State) SetAge(n int) {
	if n < 0 {
		n = 0
	}
	if n > model.MaxAgeMonths {
		n = model.MaxAgeMonths
	}
	if n != s.age {
		s.logger.Debug("age changed", zap.Int("from", s.age), zap.Int("to", n))
	}
	s.age = n
}

// StepAge moves the selected age by delta months.
func (s *State) StepAge(delta int) {
	s.SetAge(s.age + delta)
}

// NextChangePoint jumps to the first change point after the current age.
func (s *State) NextChangePoint() bool {
	for _, p := range s.points {
		if p > s.age && p <= model.MaxAgeMonths {
			s.SetAge(p)
			return true
		}
	}
	return false
}

// PrevChangePoint jumps to the last change point before the current age.
func (s *State) PrevChangePoint() bool {
	for i := len(s.points) - 1; i >= 0; i-- {
		if s.points[i] < s.age {
			s.SetAge(s.points[i])
			return true
		}
	}
	return false
}

// SetCategory selects name if it is a known category. Unknown names are
// ignored and reported as false.
func (s *State) SetCategory(name string) bool {
	for _, c := range s.categories {
		if c == name {
			s.category = name
			return true
		}
	}
	s.logger.Debug("ignored unknown category", zap.String("category", name))
	return false
}

// CycleCategory moves the active category by delta positions, wrapping around.
func (s *State) CycleCategory(delta int) {
	count := len(s.categories)
	if count == 0 {
		return
	}
	idx := 0
	for i, c := range s.categories {
		if c == s.category {
			idx = i
			break
		}
	}
	next := ((idx+delta)%count + count) % count
	s.category = s.categories[next]
}

// EnsureDefaultCategory selects the first category when none is selected.
// It never overrides an existing choice.
func (s *State) EnsureDefaultCategory() {
	if s.category != "" || len(s.categories) == 0 {
		return
	}
	s.category = s.categories[0]
}

// SetViewMode switches between pulse and library. Unknown modes are ignored.
func (s *State) SetViewMode(mode model.ViewMode) {
	switch mode {
	case model.ModePulse, model.ModeLibrary:
		s.mode = mode
	}
}

// ToggleViewMode flips between pulse and library.
func (s *State) ToggleViewMode() {
	if s.mode == model.ModePulse {
		s.mode = model.ModeLibrary
		return
	}
	s.mode = model.ModePulse
}

// OpenDetail shows r in the detail overlay.
func (s *State) OpenDetail(r model.Record) {
	s.detail = &r
	s.logger.Debug("detail opened", zap.String("id", r.ID))
}

// CloseDetail hides the detail overlay. Closing with nothing open is a no-op.
func (s *State) CloseDetail() {
	s.detail = nil
}

// BeginDrag marks the slider thumb as grabbed.
func (s *State) BeginDrag() {
	s.dragging = true
}

// EndDrag releases the slider thumb.
func (s *State) EndDrag() {
	s.dragging = false
}
