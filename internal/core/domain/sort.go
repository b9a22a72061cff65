package domain

import "sort"

// SortProducts orders a fetched slice in place for display. The sort is
// stable: tied products keep their original order, which is a display
// ranking, not a total order.
func SortProducts(ps []Product, by SortField, order SortOrder) {
	less := comparator(by)
	if less == nil {
		return
	}
	if by == SortPrice && order == SortDesc {
		inner := less
		less = func(a, b Product) bool { return inner(b, a) }
	}
	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}

func comparator(by SortField) func(a, b Product) bool {
	switch by {
	case SortPrice:
		return func(a, b Product) bool { return a.Price < b.Price }
	case SortRating:
		return func(a, b Product) bool { return a.Rating > b.Rating }
	case SortReviewCount:
		return func(a, b Product) bool { return a.ReviewCount > b.ReviewCount }
	case SortNewest:
		return func(a, b Product) bool { return a.Flags.New && !b.Flags.New }
	case SortTrending:
		return func(a, b Product) bool { return a.Flags.Trending && !b.Flags.Trending }
	}
	return nil
}
