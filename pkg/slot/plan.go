package slot

import (
	"fmt"
	"time"
)

type Mode string

const (
	ModeBook  Mode = "book"
	ModeBlock Mode = "block"
)

type Policy struct {
	SlotDuration time.Duration
	MinSlots     int
}

func DefaultPolicy() Policy {
	return Policy{SlotDuration: 30 * time.Minute, MinSlots: 2}
}

// With overrides the positive values it is given.
func (p Policy) With(slotDuration time.Duration, minSlots int) Policy {
	if slotDuration > 0 {
		p.SlotDuration = slotDuration
	}

	if minSlots > 0 {
		p.MinSlots = minSlots
	}

	return p
}

// Block is one submission: a contiguous run of slots.
type Block struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
	Price    float64       `json:"price"`
	Slots    []Slot        `json:"slots"`
}

func (b Block) DurationMinutes() int {
	return int(b.Duration / time.Minute)
}

// Plan groups slots and validates every block against the mode.
// In book mode one short block rejects the whole plan.
func Plan(slots []Slot, mode Mode, p Policy) ([]Block, error) {
	if len(slots) == 0 {
		return nil, ErrEmptySelection
	}

	groups := Group(slots)
	blocks := make([]Block, 0, len(groups))

	for _, g := range groups {
		if mode == ModeBook && len(g) < p.MinSlots {
			return nil, fmt.Errorf("%w: block starting %s has %d slot(s), need at least %d",
				ErrMinimumDuration, g[0].Start.Format("15:04"), len(g), p.MinSlots)
		}

		b := Block{
			Start:    g[0].Start,
			Duration: time.Duration(len(g)) * p.SlotDuration,
			Slots:    g,
		}
		b.End = b.Start.Add(b.Duration)

		for _, sl := range g {
			b.Price += sl.Price
		}

		blocks = append(blocks, b)
	}

	return blocks, nil
}

func TotalPrice(blocks []Block) float64 {
	var total float64
	for _, b := range blocks {
		total += b.Price
	}

	return total
}
