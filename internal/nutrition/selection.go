package nutrition

import (
	"errors"
	"slices"

	"github.com/jonathan/wellness-engine/internal/types"
)

// ErrNoOptions is returned when neither the filtered nor the raw option list
// has any entries.
var ErrNoOptions = errors.New("no options to select from")

// Tagged is implemented by catalog entries that can be ranked by tags.
type Tagged interface {
	TagSet() types.TagSet
}

type scored[T Tagged] struct {
	item  T
	score int
}

// rank orders options by tag overlap, highest first. Ties keep catalog order.
func rank[T Tagged](options []T, tags types.TagSet) []T {
	ranked := make([]scored[T], len(options))
	for i, o := range options {
		ranked[i] = scored[T]{item: o, score: o.TagSet().Overlap(tags)}
	}
	slices.SortStableFunc(ranked, func(a, b scored[T]) int {
		return b.score - a.score
	})

	out := make([]T, len(ranked))
	for i, r := range ranked {
		out[i] = r.item
	}
	return out
}

// SelectOption picks the option for a day. Options are ranked by tag overlap
// and the pick rotates with (dayIndex + weekOffset). When options is empty
// the pick falls back to raw[dayIndex mod len(raw)] without ranking.
func SelectOption[T Tagged](options, raw []T, dayIndex, weekOffset int, tags types.TagSet) (T, error) {
	var zero T
	if len(options) == 0 {
		if len(raw) == 0 {
			return zero, ErrNoOptions
		}
		return raw[mod(dayIndex, len(raw))], nil
	}
	ranked := rank(options, tags)
	return ranked[mod(dayIndex+weekOffset, len(ranked))], nil
}

// SelectTopItems returns up to limit options with the highest tag overlap.
func SelectTopItems[T Tagged](options []T, tags types.TagSet, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	ranked := rank(options, tags)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
