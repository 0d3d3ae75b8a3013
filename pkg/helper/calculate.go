package helper

import (
	"github.com/savioruz/turfics/pkg/constant"
)

// PayNowAmount is the amount charged at confirmation. Partial payment charges
// ratio of the total. Amounts are not rounded; clients round up for display.
func PayNowAmount(total float64, mode string, ratio float64) float64 {
	if total <= 0 {
		return 0
	}

	if mode == constant.PaymentModePartial {
		return total * ratio
	}

	return total
}

// SplitPerPerson divides the outstanding balance across the booker and
// friends. Without friends there is nothing to split.
func SplitPerPerson(balance float64, friends int) float64 {
	if balance <= 0 || friends <= 0 {
		return 0
	}

	return balance / float64(friends+1)
}

func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems + limit - 1) / limit
}

// Paginate returns the page window of a slice of length n. Pages past the
// last one are empty; they are detected by page count so (page-1)*limit
// never overflows.
func Paginate(n, page, limit int) (start, end int) {
	if limit <= 0 {
		return 0, n
	}

	if page > CalculateTotalPages(n, limit) {
		return n, n
	}

	start = CalculateOffset(page, limit)

	return start, min(start+limit, n)
}
