package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_SkipsDisabledAndWraps(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key(tea.KeyDown))
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(key(tea.KeyDown))
	assert.Equal(t, 1, m.Selected, "wraps past the disabled first item")

	m, _ = m.Update(key(tea.KeyUp))
	assert.Equal(t, 2, m.Selected)
}

func TestMenu_ToggleAndAction(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "仕訳", Toggle: true, On: true},
		{Label: "選択", Toggle: true},
		{Label: "start", Action: func() tea.Cmd { called = true; return nil }},
	})

	m, _ = m.Update(key(tea.KeyEnter))
	assert.Empty(t, m.Toggled())

	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Equal(t, []int{1}, m.Toggled())
	assert.Contains(t, m.View(), "[x] 選択")

	m, _ = m.Update(key(tea.KeyDown))
	_, _ = m.Update(key(tea.KeyEnter))
	assert.True(t, called)
}

func TestOptionPicker_ArrowsAndEnter(t *testing.T) {
	p := NewOptionPicker([]string{"現金", "売掛金", "買掛金", "仕入"})

	p, _ = p.Update(key(tea.KeyRight))
	p, _ = p.Update(key(tea.KeyDown))
	assert.Equal(t, 3, p.Selected)

	p, _ = p.Update(key(tea.KeyDown))
	assert.Equal(t, 3, p.Selected, "no row below")

	p, _ = p.Update(key(tea.KeyEnter))
	got, ok := p.Chosen()
	require.True(t, ok)
	assert.Equal(t, "仕入", got)

	p, _ = p.Update(key(tea.KeyLeft))
	assert.Equal(t, 3, p.Selected, "frozen after submit")
}

func TestOptionPicker_DigitSubmits(t *testing.T) {
	p := NewOptionPicker([]string{"a", "b", "c"})

	p, _ = p.Update(char('7'))
	assert.False(t, p.Submitted, "out of range digit is ignored")

	p, _ = p.Update(char('2'))
	got, ok := p.Chosen()
	require.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestOptionPicker_Reveal(t *testing.T) {
	p := NewOptionPicker([]string{"a", "b"})
	_, ok := p.Chosen()
	assert.False(t, ok)

	p = p.Reveal("b")
	assert.Equal(t, 1, p.CorrectIndex)
	assert.Contains(t, p.View(60), "2. b")
}

func TestGauge(t *testing.T) {
	g := HPBar("HP", 150, 300, 40)
	assert.InDelta(t, 0.5, g.Ratio, 1e-9)
	assert.Equal(t, "150/300", g.Value)
	assert.Contains(t, g.View(), "150/300")

	empty := HPBar("HP", 0, 0, 40)
	assert.Zero(t, empty.Ratio)

	assert.Contains(t, CountdownBar(0.3, 40).View(), "攻撃まで")
}

func TestCycleIndex(t *testing.T) {
	assert.Equal(t, 0, cycleIndex(-1, 1, 3))
	assert.Equal(t, -1, cycleIndex(2, 1, 3))
	assert.Equal(t, 2, cycleIndex(-1, -1, 3))
	assert.Equal(t, -1, cycleIndex(0, -1, 3))
	assert.Equal(t, -1, cycleIndex(-1, 1, 0))
}

func TestJournalForm_CycleAndEntry(t *testing.T) {
	f := NewJournalForm([]string{"仕入", "買掛金", "現金"}, []int64{12000, 120000})

	// Debit line 1: account 仕入, amount 120,000 via cycling.
	f, _ = f.Update(key(tea.KeyRight))
	f, _ = f.Update(key(tea.KeyTab))
	f, _ = f.Update(key(tea.KeyRight))
	f, _ = f.Update(key(tea.KeyRight))

	// Credit line 1: account 買掛金, amount typed with full-width digits.
	f, _ = f.Update(key(tea.KeyTab))
	f, _ = f.Update(key(tea.KeyRight))
	f, _ = f.Update(key(tea.KeyRight))
	f, _ = f.Update(key(tea.KeyTab))
	for _, r := range "１２００００" {
		f, _ = f.Update(char(r))
	}

	f, _ = f.Update(key(tea.KeyEnter))
	require.True(t, f.Submitted)

	e := f.Entry()
	assert.Equal(t, []catalog.JournalLine{{Account: "仕入", Amount: 120000}}, e.Debits)
	assert.Equal(t, []catalog.JournalLine{{Account: "買掛金", Amount: 120000}}, e.Credits)
}

func TestJournalForm_BlankLinesDropped(t *testing.T) {
	f := NewJournalForm([]string{"現金", "売上"}, nil)
	f.SetLine(sideDebit, 1, "現金", 5000)
	f.SetLine(sideCredit, 2, "売上", 5000)
	f.SetLine(sideCredit, 0, "売上", 0)

	e := f.Entry()
	assert.Len(t, e.Debits, 1)
	assert.Len(t, e.Credits, 1)
	assert.True(t, e.Balanced())
}

func TestJournalForm_ClearAccount(t *testing.T) {
	f := NewJournalForm([]string{"現金"}, nil)
	f, _ = f.Update(key(tea.KeyRight))
	f, _ = f.Update(key(tea.KeyBackspace))
	f.SetLine(sideCredit, 0, "現金", 100)
	assert.Empty(t, f.Entry().Debits)
	assert.True(t, strings.Contains(f.View(80), "借方"))
}

func TestAnswerText(t *testing.T) {
	assert.Empty(t, AnswerText(nil))

	assert.Equal(t, "現金", AnswerText(&problemgen.Problem{Kind: catalog.KindSelect, Correct: "現金"}))
	assert.Equal(t, "12,000円", AnswerText(&problemgen.Problem{Kind: catalog.KindNumeric, NumericAnswer: 12000}))

	p := &problemgen.Problem{
		Kind: catalog.KindJournal,
		Journal: catalog.JournalEntry{
			Debits:  []catalog.JournalLine{{Account: "仕入", Amount: 120000}},
			Credits: []catalog.JournalLine{{Account: "現金", Amount: 20000}, {Account: "買掛金", Amount: 100000}},
		},
	}
	assert.Equal(t, "(借) 仕入 120,000 / (貸) 現金 20,000、買掛金 100,000", AnswerText(p))
}
