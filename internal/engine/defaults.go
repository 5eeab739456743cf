package engine

// Reference roster. Event Beast is the rare special with no level.
var defaultMonsters = []MonsterRecord{
	{Name: "Sproutkin", Level: NumericLevel(1), HP: 40, Attack: 8, Defense: 4, Experience: 15, Drop: "Leaf Seed", Skill: "10% chance to poison"},
	{Name: "Ironleaf Beetle", Level: NumericLevel(2), HP: 60, Attack: 10, Defense: 8, Experience: 25, Drop: "Iron Shard", Skill: "Reduces magic damage by 20%"},
	{Name: "Vine Wolf", Level: NumericLevel(3), HP: 80, Attack: 12, Defense: 6, Experience: 35, Drop: "Wolf Pelt", Skill: "May attack twice"},
	{Name: "Sprout Mage", Level: NumericLevel(3), HP: 55, Attack: 8, Defense: 5, Experience: 30, Drop: "Mana Fruit", Skill: "Casts Poison Mist"},
	{Name: "Nano Sprig", Level: NumericLevel(2), HP: 50, Attack: 9, Defense: 5, Experience: 20, Drop: "Nano Core", Skill: "Nano-powered strike"},
	{Name: "Event Beast", Level: UnspecifiedLevel(), HP: 100, Attack: 20, Defense: 8, Experience: 40, Drop: "Rare Component", Skill: "Falls into deep sleep for 1 turn"},
}

var defaultEventWeights = []WeightEntry{
	W(string(EventMonster), 60),
	W(string(EventNoEncounter), 40),
}

var defaultMonsterWeights = []WeightEntry{
	W("Sproutkin", 4),
	W("Ironleaf Beetle", 4),
	W("Vine Wolf", 4),
	W("Sprout Mage", 4),
	W("Nano Sprig", 4),
	W("Event Beast", 1),
}

// DefaultCatalog returns the reference roster.
func DefaultCatalog() (*Catalog, error) { return NewCatalog(defaultMonsters...) }

// DefaultEventWeights returns Monster 60 / NoEncounter 40.
func DefaultEventWeights() (WeightTable, error) { return NewWeightTable(defaultEventWeights...) }

// DefaultMonsterWeights returns the reference per-monster weights.
func DefaultMonsterWeights() (WeightTable, error) { return NewWeightTable(defaultMonsterWeights...) }

// DefaultDrawer wires the reference catalog with its weights.
func DefaultDrawer() (*Drawer, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	events, err := DefaultEventWeights()
	if err != nil {
		return nil, err
	}
	monsters, err := DefaultMonsterWeights()
	if err != nil {
		return nil, err
	}
	return NewDrawer(catalog, WithEventWeights(events), WithMonsterWeights(monsters))
}
