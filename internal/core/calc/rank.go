package calc

import (
	"slices"

	"github.com/shopspring/decimal"
)

// TopN returns up to n items ordered by score, highest first. Items with equal
// scores keep their input order. n <= 0 returns every item. The input slice is
// not modified.
func TopN[T any](items []T, n int, score func(T) decimal.Decimal) []T {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return score(b).Cmp(score(a))
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopNInt is TopN for integer scores.
func TopNInt[T any](items []T, n int, score func(T) int) []T {
	return TopN(items, n, func(item T) decimal.Decimal {
		return decimal.NewFromInt(int64(score(item)))
	})
}
