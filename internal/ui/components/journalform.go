package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/ui/theme"
)

// JournalRows is the number of lines offered on each side of the form.
const JournalRows = 3

const (
	sideDebit = iota
	sideCredit
)

const (
	colAccount = iota
	colAmount
)

// JournalForm is the entry form for journal questions. Each side has
// JournalRows lines of an account, cycled through the offered accounts,
// and an amount, typed or cycled through the offered amounts.
type JournalForm struct {
	accounts []string
	amounts  []int64

	account [2][JournalRows]int
	amount  [2][JournalRows]int
	inputs  [2][JournalRows]textinput.Model

	side, row, col int
	Submitted      bool
}

// NewJournalForm creates an empty form offering the given options.
func NewJournalForm(accounts []string, amounts []int64) JournalForm {
	f := JournalForm{accounts: accounts, amounts: amounts}
	for s := range 2 {
		for r := range JournalRows {
			f.account[s][r] = -1
			f.amount[s][r] = -1
			ti := textinput.New()
			ti.Placeholder = "金額"
			ti.CharLimit = 12
			f.inputs[s][r] = ti
		}
	}
	return f
}

// Init focuses nothing; the first cell is an account cell.
func (f JournalForm) Init() tea.Cmd {
	return nil
}

// Update handles navigation, cycling and typing. Enter submits.
func (f JournalForm) Update(msg tea.Msg) (JournalForm, tea.Cmd) {
	if f.Submitted {
		return f, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if f.col == colAmount {
			return f.updateInput(msg)
		}
		return f, nil
	}

	switch kmsg.String() {
	case "enter":
		f.Submitted = true
		return f, f.blur()
	case "tab":
		return f.moveCell(1)
	case "shift+tab":
		return f.moveCell(-1)
	case "up":
		return f.moveTo(f.side, (f.row+JournalRows-1)%JournalRows, f.col)
	case "down":
		return f.moveTo(f.side, (f.row+1)%JournalRows, f.col)
	case "left":
		f.cycle(-1)
		return f, nil
	case "right":
		f.cycle(1)
		return f, nil
	case "backspace", "delete":
		if f.col == colAccount {
			f.account[f.side][f.row] = -1
			return f, nil
		}
	}

	if f.col == colAmount {
		return f.updateInput(msg)
	}
	return f, nil
}

func (f JournalForm) updateInput(msg tea.Msg) (JournalForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.side][f.row], cmd = f.inputs[f.side][f.row].Update(msg)
	f.amount[f.side][f.row] = -1
	return f, cmd
}

// moveCell steps through cells in reading order: debit account, debit
// amount, credit account, credit amount, then the next row.
func (f JournalForm) moveCell(step int) (JournalForm, tea.Cmd) {
	const perRow = 4
	i := f.row*perRow + f.side*2 + f.col
	n := JournalRows * perRow
	i = (i + step + n) % n
	return f.moveTo((i%perRow)/2, i/perRow, i%2)
}

func (f JournalForm) moveTo(side, row, col int) (JournalForm, tea.Cmd) {
	blur := f.blur()
	f.side, f.row, f.col = side, row, col
	if col == colAmount {
		return f, tea.Batch(blur, f.inputs[side][row].Focus())
	}
	return f, blur
}

func (f *JournalForm) blur() tea.Cmd {
	f.inputs[f.side][f.row].Blur()
	return nil
}

// cycle moves the focused cell through its option list. Cycling passes
// through a blank position between the last and first option.
func (f *JournalForm) cycle(step int) {
	if f.col == colAccount {
		f.account[f.side][f.row] = cycleIndex(f.account[f.side][f.row], step, len(f.accounts))
		return
	}
	i := cycleIndex(f.amount[f.side][f.row], step, len(f.amounts))
	f.amount[f.side][f.row] = i
	if i < 0 {
		f.inputs[f.side][f.row].SetValue("")
		return
	}
	f.inputs[f.side][f.row].SetValue(catalog.Yen(f.amounts[i]))
}

func cycleIndex(i, step, n int) int {
	if n == 0 {
		return -1
	}
	// Positions run -1 (blank), 0 .. n-1.
	return (i+1+step+n+1)%(n+1) - 1
}

// SetLine fills a line directly. It is used by tests and demo play.
func (f *JournalForm) SetLine(side, row int, account string, amount int64) {
	for i, a := range f.accounts {
		if a == account {
			f.account[side][row] = i
		}
	}
	f.inputs[side][row].SetValue(catalog.Yen(amount))
}

// Entry returns the entered journal. Blank lines and lines whose amount
// does not parse are dropped.
func (f JournalForm) Entry() catalog.JournalEntry {
	var e catalog.JournalEntry
	for r := range JournalRows {
		e.Debits = append(e.Debits, f.line(sideDebit, r))
		e.Credits = append(e.Credits, f.line(sideCredit, r))
	}
	return problemgen.NormalizeJournal(e)
}

func (f JournalForm) line(side, row int) catalog.JournalLine {
	var l catalog.JournalLine
	if i := f.account[side][row]; i >= 0 && i < len(f.accounts) {
		l.Account = f.accounts[i]
	}
	if amount, err := problemgen.ParseAmount(f.inputs[side][row].Value()); err == nil {
		l.Amount = amount
	}
	return l
}

// View renders the form with debits on the left and credits on the right.
func (f JournalForm) View(width int) string {
	colWidth := max(width/2-2, 24)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Subtitle.Width(colWidth).Render("借方"),
		theme.Subtitle.Width(colWidth).Render("貸方"),
	)

	rows := []string{header}
	for r := range JournalRows {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colWidth).Render(f.viewLine(sideDebit, r)),
			lipgloss.NewStyle().Width(colWidth).Render(f.viewLine(sideCredit, r)),
		))
	}
	return strings.Join(rows, "\n")
}

func (f JournalForm) viewLine(side, row int) string {
	name := "――"
	if i := f.account[side][row]; i >= 0 && i < len(f.accounts) {
		name = f.accounts[i]
	}

	accStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(12)
	prefix := "  "
	if !f.Submitted && f.side == side && f.row == row && f.col == colAccount {
		accStyle = theme.Selected.Width(12)
		prefix = "▸ "
	}
	return prefix + accStyle.Render(name) + " " + f.inputs[side][row].View()
}
