// Package slot groups selected turf slots into contiguous blocks and turns
// them into booking or maintenance-block submissions.
package slot

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/savioruz/turfics/pkg/constant"
)

var (
	ErrUnknownSlot     = errors.New("unknown slot")
	ErrSlotUnavailable = errors.New("slot is not available")
	ErrDuplicateSlot   = errors.New("slot already selected")
	ErrEmptySelection  = errors.New("no slots selected")
	ErrMinimumDuration = errors.New("minimum booking duration not met")
)

type Status string

const (
	StatusAvailable Status = constant.SlotStatusAvailable
	StatusBooked    Status = constant.SlotStatusBooked
	StatusBlocked   Status = constant.SlotStatusBlocked
)

type Slot struct {
	ID     string    `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Price  float64   `json:"price"`
	Status Status    `json:"status"`
}

func (s Slot) Available() bool {
	return s.Status == StatusAvailable
}

// Selection is the set of slots a user picked for one unit and date.
// It is unique by slot id and never holds booked or blocked slots.
type Selection struct {
	slots map[string]Slot
}

func NewSelection() *Selection {
	return &Selection{slots: make(map[string]Slot)}
}

func (s *Selection) Add(sl Slot) error {
	if !sl.Available() {
		return fmt.Errorf("%w: %s is %s", ErrSlotUnavailable, sl.ID, sl.Status)
	}

	if _, ok := s.slots[sl.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSlot, sl.ID)
	}

	s.slots[sl.ID] = sl

	return nil
}

// Select resolves slot ids against the slots a unit offers for a date.
// Ids the unit does not offer fail with ErrUnknownSlot.
func Select(available []Slot, ids []string) (*Selection, error) {
	byID := make(map[string]Slot, len(available))
	for _, sl := range available {
		byID[sl.ID] = sl
	}

	sel := NewSelection()

	for _, id := range ids {
		sl, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrUnknownSlot, id)
		}

		if err := sel.Add(sl); err != nil {
			return nil, err
		}
	}

	return sel, nil
}

// Toggle adds an available slot or removes it if already selected.
// Booked and blocked slots are ignored.
func (s *Selection) Toggle(sl Slot) bool {
	if _, ok := s.slots[sl.ID]; ok {
		delete(s.slots, sl.ID)

		return false
	}

	return s.Add(sl) == nil
}

func (s *Selection) Clear() {
	s.slots = make(map[string]Slot)
}

func (s *Selection) Len() int {
	return len(s.slots)
}

// Slots returns the selection sorted ascending by start.
func (s *Selection) Slots() []Slot {
	out := make([]Slot, 0, len(s.slots))
	for _, sl := range s.slots {
		out = append(out, sl)
	}

	sortByStart(out)

	return out
}

func sortByStart(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Start.Equal(slots[j].Start) {
			return slots[i].ID < slots[j].ID
		}

		return slots[i].Start.Before(slots[j].Start)
	})
}

// Group partitions slots into maximal contiguous runs ordered by start.
// A slot continues the current run only when its start equals the previous end exactly.
func Group(slots []Slot) [][]Slot {
	if len(slots) == 0 {
		return nil
	}

	sorted := make([]Slot, len(slots))
	copy(sorted, slots)
	sortByStart(sorted)

	groups := [][]Slot{{sorted[0]}}

	for _, sl := range sorted[1:] {
		current := groups[len(groups)-1]
		if sl.Start.Equal(current[len(current)-1].End) {
			groups[len(groups)-1] = append(current, sl)

			continue
		}

		groups = append(groups, []Slot{sl})
	}

	return groups
}
