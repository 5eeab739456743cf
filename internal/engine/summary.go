package engine

import (
	"github.com/pkg/errors"
)

// DrawSummary tallies a run of draws. PerMonster always holds every catalog name.
type DrawSummary struct {
	Rounds      int
	Monster     int
	NoEncounter int
	PerMonster  map[string]int
	order       []string
}

// MonsterCount is one row of a summary in catalog order.
type MonsterCount struct {
	Name  string
	Count int
}

func newDrawSummary(c *Catalog) DrawSummary {
	names := c.Names()
	per := make(map[string]int, len(names))
	for _, n := range names {
		per[n] = 0
	}
	return DrawSummary{PerMonster: per, order: names}
}

func (s *DrawSummary) record(r EncounterResult) {
	s.Rounds++
	name, ok := r.Monster()
	if !ok {
		s.NoEncounter++
		return
	}
	s.Monster++
	s.PerMonster[name]++
}

// Total is the number of outcomes counted.
func (s DrawSummary) Total() int { return s.Monster + s.NoEncounter }

// Ordered lists every monster with its count, in catalog order.
func (s DrawSummary) Ordered() []MonsterCount {
	out := make([]MonsterCount, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, MonsterCount{Name: n, Count: s.PerMonster[n]})
	}
	return out
}

// Seen lists only monsters met at least once.
func (s DrawSummary) Seen() []MonsterCount {
	var out []MonsterCount
	for _, mc := range s.Ordered() {
		if mc.Count > 0 {
			out = append(out, mc)
		}
	}
	return out
}

// SimulateMultipleDraws runs SimulateEncounter rounds times. The first failing draw
// aborts the run and no summary is returned.
func (d *Drawer) SimulateMultipleDraws(rng RandomSource, rounds int) (DrawSummary, error) {
	if rounds < 0 {
		return DrawSummary{}, errors.Wrapf(ErrInvalidArgument, "rounds must be >= 0, got %d", rounds)
	}
	sum := newDrawSummary(d.catalog)
	for i := 0; i < rounds; i++ {
		res, err := d.SimulateEncounter(rng)
		if err != nil {
			return DrawSummary{}, errors.Wrapf(err, "draw %d of %d", i+1, rounds)
		}
		sum.record(res)
	}
	return sum, nil
}
