package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoicePDF(t *testing.T) {
	t.Run("success: renders a pdf document", func(t *testing.T) {
		out, err := InvoicePDF(Invoice{
			Reference:    "BK-0042",
			CustomerName: "Asha",
			TurfName:     "Greenfield Arena",
			Location:     "Koramangala, Bengaluru",
			Sport:        "Football",
			UnitName:     "Pitch 1",
			Date:         "2024-05-01",
			StartTime:    "18:00",
			EndTime:      "19:00",
			Price:        1200,
			PaidNow:      360,
			Status:       "confirmed",
			IssuedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("error: missing reference", func(t *testing.T) {
		_, err := InvoicePDF(Invoice{})
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})
}

func TestPosterPDF(t *testing.T) {
	t.Run("success: every background renders", func(t *testing.T) {
		for _, bg := range Backgrounds() {
			out, err := PosterPDF(Poster{
				Name:         "Monsoon Cup",
				Sport:        "Football",
				StartDate:    "2024-06-10",
				EntryFee:     500,
				PrizePool:    20000,
				Headline:     "Monsoon Cup 2024",
				Subheadline:  "Eight teams. One trophy.",
				Highlights:   []string{"Floodlit finals", "Live scores"},
				CallToAction: "Register now",
				Background:   bg,
				RegisterURL:  "https://turfics.test/tournaments/3",
			})
			require.NoError(t, err, bg)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), bg)
		}
	})

	t.Run("error: nothing to render", func(t *testing.T) {
		_, err := PosterPDF(Poster{})
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("success: background validation", func(t *testing.T) {
		assert.True(t, ValidBackground("neon"))
		assert.False(t, ValidBackground("sparkles"))
	})
}
