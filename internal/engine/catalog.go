package engine

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// unspecifiedLevel is how special monsters render their level.
const unspecifiedLevel = "—"

// Level is either a positive number or unspecified (event and special monsters).
type Level struct {
	n int
}

func NumericLevel(n int) Level  { return Level{n: n} }
func UnspecifiedLevel() Level   { return Level{} }
func (l Level) Specified() bool { return l.n > 0 }

// Value returns the numeric level and whether one is set.
func (l Level) Value() (int, bool) { return l.n, l.n > 0 }

func (l Level) String() string {
	if !l.Specified() {
		return unspecifiedLevel
	}
	return strconv.Itoa(l.n)
}

// MonsterRecord is one catalog entry. Name is the identity.
type MonsterRecord struct {
	Name       string
	Level      Level
	HP         int
	Attack     int
	Defense    int
	Experience int
	Drop       string
	Skill      string
}

func (m MonsterRecord) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return configErrorf("monster name empty")
	}
	if m.Level.n < 0 {
		return configErrorf("monster %q has negative level %d", m.Name, m.Level.n)
	}
	for label, v := range map[string]int{"hp": m.HP, "attack": m.Attack, "defense": m.Defense, "experience": m.Experience} {
		if v < 0 {
			return configErrorf("monster %q has negative %s %d", m.Name, label, v)
		}
	}
	return nil
}

// Catalog is the ordered, read-only monster roster.
type Catalog struct {
	names  []string
	byName map[string]MonsterRecord
}

// NewCatalog validates records and keeps them in the given order.
func NewCatalog(records ...MonsterRecord) (*Catalog, error) {
	if len(records) == 0 {
		return nil, configErrorf("catalog has no monsters")
	}
	c := &Catalog{
		names:  make([]string, 0, len(records)),
		byName: make(map[string]MonsterRecord, len(records)),
	}
	for _, rec := range records {
		if err := rec.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[rec.Name]; dup {
			return nil, configErrorf("duplicate monster %q", rec.Name)
		}
		c.names = append(c.names, rec.Name)
		c.byName[rec.Name] = rec
	}
	return c, nil
}

// Lookup returns the record for name or an error wrapping ErrNotFound.
func (c *Catalog) Lookup(name string) (MonsterRecord, error) {
	rec, ok := c.byName[name]
	if !ok {
		return MonsterRecord{}, errors.Wrapf(ErrNotFound, "monster %q", name)
	}
	return rec, nil
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

func (c *Catalog) Len() int { return len(c.names) }

// Names returns monster names in catalog order.
func (c *Catalog) Names() []string { return append([]string{}, c.names...) }

// Records returns all records in catalog order.
func (c *Catalog) Records() []MonsterRecord {
	out := make([]MonsterRecord, len(c.names))
	for i, name := range c.names {
		out[i] = c.byName[name]
	}
	return out
}
