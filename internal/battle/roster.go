package battle

import "fmt"

// Monster is the opponent of the current turn.
type Monster struct {
	ID    string
	Name  string
	Emoji string
	MaxHP int
	HP    int
	Level int
}

type species struct {
	name  string
	emoji string
	hp    int
}

var roster = []species{
	{"スライム", "💧", 30},
	{"バット", "🦇", 40},
	{"スケルトン", "💀", 50},
	{"ゴースト", "👻", 60},
	{"オーク", "👹", 80},
	{"ミミック", "📦", 90},
	{"ゴーレム", "🗿", 100},
	{"ケルベロス", "🐺", 120},
	{"サイクロプス", "👁️", 150},
	{"ドラゴン", "🐉", 200},
	{"キングデーモン", "👿", 250},
	{"魔王", "👑", 300},
}

// RosterSize is the number of distinct monsters before the roster loops.
var RosterSize = len(roster)

// Spawn creates the monster for spawn index i. Every full pass through
// the roster adds 50% of the base HP.
func Spawn(runID string, i int) Monster {
	s := roster[i%len(roster)]
	loop := i / len(roster)
	hp := s.hp * (2 + loop) / 2
	return Monster{
		ID:    fmt.Sprintf("%s/m%d", runID, i),
		Name:  s.name,
		Emoji: s.emoji,
		MaxHP: hp,
		HP:    hp,
		Level: i + 1,
	}
}
