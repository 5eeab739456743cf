package engine

import (
	"github.com/pkg/errors"
)

// EncounterResult is either NoEncounter or a MonsterEncounter carrying the monster name.
type EncounterResult struct {
	kind    EventType
	monster string
}

func NoEncounter() EncounterResult { return EncounterResult{kind: EventNoEncounter} }

func MonsterEncounter(name string) EncounterResult {
	return EncounterResult{kind: EventMonster, monster: name}
}

func (r EncounterResult) Type() EventType { return r.kind }
func (r EncounterResult) IsMonster() bool { return r.kind == EventMonster }
func (r EncounterResult) IsNothing() bool { return r.kind == EventNoEncounter }

// Monster returns the encountered monster's name, if any.
func (r EncounterResult) Monster() (string, bool) {
	if r.kind != EventMonster {
		return "", false
	}
	return r.monster, true
}

func (r EncounterResult) String() string {
	if name, ok := r.Monster(); ok {
		return string(EventMonster) + "(" + name + ")"
	}
	return string(EventNoEncounter)
}

// Drawer samples encounters from a catalog and two weight tables. It holds no
// mutable state; randomness is passed per call.
type Drawer struct {
	catalog  *Catalog
	events   WeightTable
	monsters WeightTable
}

type drawerConfig struct {
	events   *WeightTable
	monsters *WeightTable
}

// DrawerOption customises NewDrawer.
type DrawerOption func(*drawerConfig)

// WithEventWeights replaces the Monster/NoEncounter table.
func WithEventWeights(t WeightTable) DrawerOption {
	return func(c *drawerConfig) { c.events = &t }
}

// WithMonsterWeights replaces the per-monster table. It must cover exactly the catalog.
func WithMonsterWeights(t WeightTable) DrawerOption {
	return func(c *drawerConfig) { c.monsters = &t }
}

// NewDrawer builds a drawer and validates both tables against their item sets.
// Without options events default to 60/40 and monsters to uniform weights.
func NewDrawer(catalog *Catalog, opts ...DrawerOption) (*Drawer, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, configErrorf("drawer requires a non-empty catalog")
	}
	cfg := drawerConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	d := &Drawer{catalog: catalog}
	if cfg.events != nil {
		d.events = *cfg.events
	} else {
		t, err := DefaultEventWeights()
		if err != nil {
			return nil, err
		}
		d.events = t
	}
	if cfg.monsters != nil {
		d.monsters = *cfg.monsters
	} else {
		t, err := UniformWeights(catalog.Names())
		if err != nil {
			return nil, err
		}
		d.monsters = t
	}
	if d.events.Len() == 0 || d.monsters.Len() == 0 {
		return nil, configErrorf("weight tables must be built with NewWeightTable")
	}
	if err := d.events.matches("event", eventLabels()); err != nil {
		return nil, err
	}
	if err := d.monsters.matches("monster", catalog.Names()); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Drawer) Catalog() *Catalog           { return d.catalog }
func (d *Drawer) EventWeights() WeightTable   { return d.events }
func (d *Drawer) MonsterWeights() WeightTable { return d.monsters }

// DrawEventType decides between a monster and nothing.
func (d *Drawer) DrawEventType(rng RandomSource) (EventType, error) {
	label, err := d.events.Pick(rng)
	if err != nil {
		return "", err
	}
	ev := EventType(label)
	if !ev.Validate() {
		return "", configErrorf("unknown event type %q", label)
	}
	return ev, nil
}

// DrawMonster samples a monster name and resolves it through the catalog.
func (d *Drawer) DrawMonster(rng RandomSource) (MonsterRecord, error) {
	name, err := d.monsters.Pick(rng)
	if err != nil {
		return MonsterRecord{}, err
	}
	rec, err := d.catalog.Lookup(name)
	if err != nil {
		return MonsterRecord{}, errors.Wrap(err, "draw monster")
	}
	return rec, nil
}

// SimulateEncounter performs one draw: the event type first, then a monster if needed.
func (d *Drawer) SimulateEncounter(rng RandomSource) (EncounterResult, error) {
	ev, err := d.DrawEventType(rng)
	if err != nil {
		return EncounterResult{}, err
	}
	if ev == EventNoEncounter {
		return NoEncounter(), nil
	}
	rec, err := d.DrawMonster(rng)
	if err != nil {
		return EncounterResult{}, err
	}
	return MonsterEncounter(rec.Name), nil
}

// Odds holds normalised probabilities for reports.
type Odds struct {
	Events map[EventType]float64
	// Monsters is P(specific monster | monster encounter).
	Monsters map[string]float64
}

// Overall returns the unconditional chance that one draw yields name.
func (o Odds) Overall(name string) float64 {
	return o.Events[EventMonster] * o.Monsters[name]
}

func (d *Drawer) Probabilities() Odds {
	odds := Odds{
		Events:   make(map[EventType]float64, len(AllEventTypes)),
		Monsters: make(map[string]float64, d.catalog.Len()),
	}
	for _, ev := range AllEventTypes {
		odds.Events[ev] = d.events.Probability(string(ev))
	}
	for _, name := range d.catalog.Names() {
		odds.Monsters[name] = d.monsters.Probability(name)
	}
	return odds
}
