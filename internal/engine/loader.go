package engine

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type weightEntryFile struct {
	Label  string  `yaml:"label"`
	Weight float64 `yaml:"weight"`
}

type monsterFile struct {
	Name       string  `yaml:"name"`
	Level      Level   `yaml:"level"`
	HP         int     `yaml:"hp"`
	Attack     int     `yaml:"attack"`
	Defense    int     `yaml:"defense"`
	Experience int     `yaml:"experience"`
	Drop       string  `yaml:"drop"`
	Skill      string  `yaml:"skill"`
	Weight     float64 `yaml:"weight"`
}

type encounterFile struct {
	Events   []weightEntryFile `yaml:"events"`
	Monsters []monsterFile     `yaml:"monsters"`
}

// UnmarshalYAML accepts a positive integer, null, or a placeholder string such as "—".
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		*l = UnspecifiedLevel()
		return nil
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		if n <= 0 {
			return configErrorf("line %d: level must be positive, got %d", node.Line, n)
		}
		*l = NumericLevel(n)
		return nil
	case "!!str":
		switch strings.ToLower(strings.TrimSpace(node.Value)) {
		case "", unspecifiedLevel, "-", "special", "none":
			*l = UnspecifiedLevel()
			return nil
		}
		return configErrorf("line %d: unknown level %q", node.Line, node.Value)
	default:
		return configErrorf("line %d: level must be an integer or placeholder", node.Line)
	}
}

// ParseDrawerConfig builds a drawer from YAML. Monster weights sit on each monster;
// an omitted events list falls back to the 60/40 default. Unknown keys are rejected.
func ParseDrawerConfig(raw []byte) (*Drawer, error) {
	var f encounterFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, ErrConfiguration) {
			return nil, err
		}
		return nil, errors.Wrapf(ErrConfiguration, "parse encounter config: %v", err)
	}
	records := make([]MonsterRecord, 0, len(f.Monsters))
	weights := make([]WeightEntry, 0, len(f.Monsters))
	for _, m := range f.Monsters {
		records = append(records, MonsterRecord{
			Name:       m.Name,
			Level:      m.Level,
			HP:         m.HP,
			Attack:     m.Attack,
			Defense:    m.Defense,
			Experience: m.Experience,
			Drop:       m.Drop,
			Skill:      m.Skill,
		})
		weights = append(weights, W(m.Name, m.Weight))
	}
	catalog, err := NewCatalog(records...)
	if err != nil {
		return nil, err
	}
	monsters, err := NewWeightTable(weights...)
	if err != nil {
		return nil, err
	}
	opts := []DrawerOption{WithMonsterWeights(monsters)}
	if len(f.Events) > 0 {
		entries := make([]WeightEntry, len(f.Events))
		for i, e := range f.Events {
			entries[i] = W(e.Label, e.Weight)
		}
		events, err := NewWeightTable(entries...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithEventWeights(events))
	}
	return NewDrawer(catalog, opts...)
}

// LoadDrawerFile reads and parses an encounter config file.
func LoadDrawerFile(path string) (*Drawer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read encounter config")
	}
	d, err := ParseDrawerConfig(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}
