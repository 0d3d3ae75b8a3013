package slot

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) Slot {
	start := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)

	return Slot{
		ID:     start.Format("15:04"),
		Start:  start,
		End:    start.Add(30 * time.Minute),
		Price:  600,
		Status: StatusAvailable,
	}
}

func TestGroup(t *testing.T) {
	t.Run("success: empty input", func(t *testing.T) {
		assert.Nil(t, Group(nil))
	})

	t.Run("success: single slot", func(t *testing.T) {
		groups := Group([]Slot{at(19, 0)})

		require.Len(t, groups, 1)
		assert.Len(t, groups[0], 1)
	})

	t.Run("success: order independent", func(t *testing.T) {
		slots := []Slot{at(18, 0), at(18, 30), at(19, 0), at(20, 0), at(21, 30), at(22, 0)}
		want := Group(slots)

		r := rand.New(rand.NewSource(7))
		for i := 0; i < 20; i++ {
			shuffled := make([]Slot, len(slots))
			copy(shuffled, slots)
			r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

			assert.Equal(t, want, Group(shuffled))
		}

		require.Len(t, want, 3)
		assert.Len(t, want[0], 3)
		assert.Len(t, want[1], 1)
		assert.Len(t, want[2], 2)
	})

	t.Run("success: adjacency inside groups and gaps between groups", func(t *testing.T) {
		groups := Group([]Slot{at(6, 0), at(6, 30), at(8, 0), at(8, 30), at(9, 0), at(11, 0)})

		for _, g := range groups {
			for i := 0; i+1 < len(g); i++ {
				assert.True(t, g[i].End.Equal(g[i+1].Start))
			}
		}

		for i := 0; i+1 < len(groups); i++ {
			last := groups[i][len(groups[i])-1]
			assert.False(t, last.End.Equal(groups[i+1][0].Start))
			assert.True(t, groups[i][0].Start.Before(groups[i+1][0].Start))
		}
	})

	t.Run("success: duplicate start breaks contiguity", func(t *testing.T) {
		a := at(18, 0)
		b := at(18, 0)
		b.ID = "dup"

		groups := Group([]Slot{a, b})

		assert.Len(t, groups, 2)
	})

	t.Run("success: exact instant comparison", func(t *testing.T) {
		a := at(18, 0)
		b := at(18, 30)
		b.Start = b.Start.Add(time.Millisecond)

		assert.Len(t, Group([]Slot{a, b}), 2)
	})
}

func TestSelection(t *testing.T) {
	sel := NewSelection()

	booked := at(17, 0)
	booked.Status = StatusBooked
	blocked := at(17, 30)
	blocked.Status = StatusBlocked

	assert.ErrorIs(t, sel.Add(booked), ErrSlotUnavailable)
	assert.False(t, sel.Toggle(blocked))
	assert.Equal(t, 0, sel.Len())

	assert.True(t, sel.Toggle(at(18, 30)))
	assert.True(t, sel.Toggle(at(18, 0)))
	assert.ErrorIs(t, sel.Add(at(18, 0)), ErrDuplicateSlot)

	slots := sel.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "18:00", slots[0].ID)

	assert.False(t, sel.Toggle(at(18, 0)))
	assert.Equal(t, 1, sel.Len())

	sel.Clear()
	assert.Equal(t, 0, sel.Len())
}

func TestSelect(t *testing.T) {
	booked := at(19, 0)
	booked.Status = StatusBooked
	available := []Slot{at(18, 0), at(18, 30), booked}

	t.Run("success: ids resolve in start order", func(t *testing.T) {
		sel, err := Select(available, []string{"18:30", "18:00"})

		require.NoError(t, err)
		slots := sel.Slots()
		require.Len(t, slots, 2)
		assert.Equal(t, "18:00", slots[0].ID)
	})

	t.Run("error: unknown id", func(t *testing.T) {
		sel, err := Select(available, []string{"18:00", "23:30"})

		assert.ErrorIs(t, err, ErrUnknownSlot)
		assert.EqualError(t, err, "unknown slot 23:30")
		assert.Nil(t, sel)
	})

	t.Run("error: booked slot", func(t *testing.T) {
		_, err := Select(available, []string{"19:00"})

		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("error: duplicate id", func(t *testing.T) {
		_, err := Select(available, []string{"18:00", "18:00"})

		assert.ErrorIs(t, err, ErrDuplicateSlot)
	})
}

func TestPolicy_With(t *testing.T) {
	p := DefaultPolicy().With(time.Hour, 0)
	assert.Equal(t, time.Hour, p.SlotDuration)
	assert.Equal(t, 2, p.MinSlots)

	p = DefaultPolicy().With(0, 3)
	assert.Equal(t, 30*time.Minute, p.SlotDuration)
	assert.Equal(t, 3, p.MinSlots)
}

func TestPlan(t *testing.T) {
	policy := DefaultPolicy()

	t.Run("success: two adjacent slots make one hour booking", func(t *testing.T) {
		blocks, err := Plan([]Slot{at(18, 30), at(18, 0)}, ModeBook, policy)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, 60, blocks[0].DurationMinutes())
		assert.Equal(t, at(18, 0).Start, blocks[0].Start)
		assert.Equal(t, at(19, 0).Start, blocks[0].End)
		assert.InDelta(t, 1200.0, blocks[0].Price, 0.001)
	})

	t.Run("error: single slot rejected in book mode", func(t *testing.T) {
		blocks, err := Plan([]Slot{at(19, 0)}, ModeBook, policy)

		assert.ErrorIs(t, err, ErrMinimumDuration)
		assert.Nil(t, blocks)
	})

	t.Run("success: single slot accepted in block mode", func(t *testing.T) {
		blocks, err := Plan([]Slot{at(19, 0)}, ModeBlock, policy)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, 30, blocks[0].DurationMinutes())
	})

	t.Run("error: one short block rejects the whole selection", func(t *testing.T) {
		_, err := Plan([]Slot{at(6, 0), at(6, 30), at(9, 0)}, ModeBook, policy)

		assert.ErrorIs(t, err, ErrMinimumDuration)
	})

	t.Run("error: empty selection", func(t *testing.T) {
		_, err := Plan(nil, ModeBlock, policy)

		assert.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("success: total price", func(t *testing.T) {
		blocks, err := Plan([]Slot{at(6, 0), at(6, 30), at(9, 0), at(9, 30)}, ModeBook, policy)

		require.NoError(t, err)
		assert.InDelta(t, 2400.0, TotalPrice(blocks), 0.001)
	})
}

func TestSubmitAll(t *testing.T) {
	blocks, err := Plan([]Slot{at(6, 0), at(8, 0), at(10, 0)}, ModeBlock, DefaultPolicy())
	require.NoError(t, err)

	t.Run("success: results keep block order", func(t *testing.T) {
		var calls int32

		res, err := SubmitAll(context.Background(), blocks, func(_ context.Context, b Block) (string, error) {
			atomic.AddInt32(&calls, 1)

			return b.Start.Format("15:04"), nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"06:00", "08:00", "10:00"}, res)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("error: any failure fails the batch", func(t *testing.T) {
		conflict := errors.New("slot is already booked")

		res, err := SubmitAll(context.Background(), blocks, func(_ context.Context, b Block) (int, error) {
			if b.Start.Hour() == 8 {
				return 0, conflict
			}

			return 1, nil
		})

		assert.ErrorIs(t, err, conflict)
		assert.Nil(t, res)
	})
}
