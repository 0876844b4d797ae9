package catalog

import "fmt"

// Kind identifies the answer shape a template produces.
type Kind string

const (
	KindJournal Kind = "journal"
	KindSelect  Kind = "select"
	KindNumeric Kind = "numeric"
)

// AllKinds lists every question kind in display order.
func AllKinds() []Kind {
	return []Kind{KindJournal, KindSelect, KindNumeric}
}

// Label returns the Japanese label shown on the title screen.
func (k Kind) Label() string {
	switch k {
	case KindJournal:
		return "仕訳"
	case KindSelect:
		return "選択"
	case KindNumeric:
		return "計算"
	default:
		return string(k)
	}
}

// ParseKind parses a kind code such as "journal".
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown question kind %q: must be journal, select or numeric", s)
}
