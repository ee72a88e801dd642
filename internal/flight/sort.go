package flight

import (
	"fmt"
	"sort"
	"strconv"
)

// SortByPrice returns the quotes ordered by ascending numeric price. The
// sort is stable, so equal prices keep their input order. Any price that
// does not parse as an integer fails the whole sort; no partial output is
// produced.
func SortByPrice(quotes []Quote) ([]Quote, error) {
	if len(quotes) == 0 {
		return []Quote{}, nil
	}

	type priced struct {
		quote Quote
		price int
	}

	items := make([]priced, 0, len(quotes))
	for _, q := range quotes {
		p, err := strconv.Atoi(q.Price)
		if err != nil {
			return nil, fmt.Errorf("parsing price %q for route %s-%s: %w", q.Price, q.Src, q.Dst, ErrBadPriceData)
		}
		items = append(items, priced{quote: q, price: p})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].price < items[j].price })

	out := make([]Quote, len(items))
	for i, it := range items {
		out[i] = it.quote
	}
	return out, nil
}
