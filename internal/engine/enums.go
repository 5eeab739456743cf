package engine

// String backed enums so labels read the same in config files and reports.

type EventType string

const (
	EventMonster     EventType = "Monster"
	EventNoEncounter EventType = "NoEncounter"
)

var AllEventTypes = []EventType{EventMonster, EventNoEncounter}

func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (e EventType) Validate() bool { return contains(AllEventTypes, e) }

func eventLabels() []string {
	out := make([]string, len(AllEventTypes))
	for i, e := range AllEventTypes {
		out[i] = string(e)
	}
	return out
}
