package comparison

import (
	"sort"

	"github.com/shopspring/decimal"
)

// NotAvailable is the sentinel shown when one side lacks an attribute
const NotAvailable = "N/A"

// Winner identifies which side of a comparison row holds the greater value
type Winner string

const (
	WinnerLeft  Winner = "left"
	WinnerRight Winner = "right"
	WinnerTie   Winner = "tie"
)

// Row is the comparison outcome for a single attribute key
type Row struct {
	Key        string `json:"key"`
	LeftValue  string `json:"left_value"`
	RightValue string `json:"right_value"`
	Winner     Winner `json:"winner"`
}

// CompareAttributes builds one row per key in the union of both
// attribute maps, in lexicographic key order. A winner is declared only
// when both values parse as plain decimal numbers; any unparseable
// value, including the N/A sentinel and unit-suffixed specs such as
// "8GB", forces a tie. Textual comparison is deliberately not
// attempted.
func CompareAttributes(left, right map[string]string) []Row {
	keys := make([]string, 0, len(left)+len(right))
	seen := make(map[string]struct{}, len(left)+len(right))
	for key := range left {
		keys = append(keys, key)
		seen[key] = struct{}{}
	}
	for key := range right {
		if _, ok := seen[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		leftValue, ok := left[key]
		if !ok {
			leftValue = NotAvailable
		}
		rightValue, ok := right[key]
		if !ok {
			rightValue = NotAvailable
		}
		rows = append(rows, Row{
			Key:        key,
			LeftValue:  leftValue,
			RightValue: rightValue,
			Winner:     determineWinner(leftValue, rightValue),
		})
	}

	return rows
}

// determineWinner compares two raw attribute values numerically.
// Strictly greater wins; equality or any parse failure is a tie.
func determineWinner(leftValue, rightValue string) Winner {
	leftNum, leftErr := decimal.NewFromString(leftValue)
	rightNum, rightErr := decimal.NewFromString(rightValue)
	if leftErr != nil || rightErr != nil {
		return WinnerTie
	}

	switch leftNum.Cmp(rightNum) {
	case 1:
		return WinnerLeft
	case -1:
		return WinnerRight
	default:
		return WinnerTie
	}
}
