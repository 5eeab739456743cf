package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// WeightEntry is one labelled option of a WeightTable.
type WeightEntry struct {
	Label  string
	Weight float64
}

// WeightTable selects labels with probability weight/total. Weights are relative and
// need not sum to any particular value.
type WeightTable struct {
	entries []WeightEntry
	total   float64
}

// W is shorthand for building entries in literal tables.
func W(label string, weight float64) WeightEntry { return WeightEntry{Label: label, Weight: weight} }

// NewWeightTable validates entries: at least one, unique non-empty labels, finite
// non-negative weights and a positive total.
func NewWeightTable(entries ...WeightEntry) (WeightTable, error) {
	if len(entries) == 0 {
		return WeightTable{}, configErrorf("weight table is empty")
	}
	seen := make(map[string]struct{}, len(entries))
	total := 0.0
	for _, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			return WeightTable{}, configErrorf("weight table has an empty label")
		}
		if _, dup := seen[e.Label]; dup {
			return WeightTable{}, configErrorf("duplicate weight label %q", e.Label)
		}
		seen[e.Label] = struct{}{}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
			return WeightTable{}, configErrorf("weight for %q must be finite and non-negative, got %v", e.Label, e.Weight)
		}
		total += e.Weight
	}
	if total <= 0 {
		return WeightTable{}, configErrorf("weight table total must be positive")
	}
	return WeightTable{entries: append([]WeightEntry{}, entries...), total: total}, nil
}

// UniformWeights gives every label weight 1.
func UniformWeights(labels []string) (WeightTable, error) {
	entries := make([]WeightEntry, len(labels))
	for i, l := range labels {
		entries[i] = W(l, 1)
	}
	return NewWeightTable(entries...)
}

func (t WeightTable) Entries() []WeightEntry { return append([]WeightEntry{}, t.entries...) }
func (t WeightTable) Total() float64         { return t.total }
func (t WeightTable) Len() int               { return len(t.entries) }

// Weight returns the weight of label, or 0 when absent.
func (t WeightTable) Weight(label string) float64 {
	for _, e := range t.entries {
		if e.Label == label {
			return e.Weight
		}
	}
	return 0
}

// Probability returns weight/total for label.
func (t WeightTable) Probability(label string) float64 {
	if t.total == 0 {
		return 0
	}
	return t.Weight(label) / t.total
}

// Labels returns labels in table order.
func (t WeightTable) Labels() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Label
	}
	return out
}

// Pick draws one label. A source whose Float64 returns 0 always yields the first
// positively weighted entry.
func (t WeightTable) Pick(rng RandomSource) (string, error) {
	if rng == nil {
		return "", errors.Wrap(ErrInvalidArgument, "random source is nil")
	}
	if len(t.entries) == 0 || t.total <= 0 {
		return "", configErrorf("weight table not initialised")
	}
	r := rng.Float64() * t.total
	cumulative := 0.0
	last := -1
	for i, e := range t.entries {
		if e.Weight <= 0 {
			continue
		}
		cumulative += e.Weight
		last = i
		if r < cumulative {
			return e.Label, nil
		}
	}
	// rounding can leave r == total
	return t.entries[last].Label, nil
}

// matches reports an ErrConfiguration when the label set differs from items.
func (t WeightTable) matches(kind string, items []string) error {
	want := make(map[string]struct{}, len(items))
	for _, it := range items {
		want[it] = struct{}{}
	}
	var missing, orphan []string
	have := make(map[string]struct{}, len(t.entries))
	for _, label := range t.Labels() {
		have[label] = struct{}{}
		if _, ok := want[label]; !ok {
			orphan = append(orphan, label)
		}
	}
	for _, it := range items {
		if _, ok := have[it]; !ok {
			missing = append(missing, it)
		}
	}
	if len(missing) == 0 && len(orphan) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(orphan)
	return configErrorf("%s weights do not match: missing %v, orphan %v", kind, missing, orphan)
}
