package turfapi

import (
	"fmt"

	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/slot"
)

// ToSlot converts the wire slot. Naive start and end times are read in the app timezone.
func (s Slot) ToSlot() (slot.Slot, error) {
	start, err := helper.ParseInstant(s.StartISO)
	if err != nil {
		return slot.Slot{}, fmt.Errorf("slot %s start: %w", s.ID, err)
	}

	end, err := helper.ParseInstant(s.EndISO)
	if err != nil {
		return slot.Slot{}, fmt.Errorf("slot %s end: %w", s.ID, err)
	}

	return slot.Slot{
		ID:     s.ID,
		Start:  start,
		End:    end,
		Price:  s.Price,
		Status: slot.Status(s.Status),
	}, nil
}

func ToSlots(in []Slot) ([]slot.Slot, error) {
	out := make([]slot.Slot, 0, len(in))

	for _, s := range in {
		sl, err := s.ToSlot()
		if err != nil {
			return nil, err
		}

		out = append(out, sl)
	}

	return out, nil
}
