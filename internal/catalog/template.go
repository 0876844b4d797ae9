package catalog

// JournalLine is one (account, amount) pair on one side of an entry.
type JournalLine struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

// JournalEntry is a set of debit and credit lines.
type JournalEntry struct {
	Debits  []JournalLine `json:"debits"`
	Credits []JournalLine `json:"credits"`
}

// DebitTotal sums the debit side.
func (e JournalEntry) DebitTotal() int64 { return sum(e.Debits) }

// CreditTotal sums the credit side.
func (e JournalEntry) CreditTotal() int64 { return sum(e.Credits) }

// Balanced reports whether both sides sum to the same amount.
func (e JournalEntry) Balanced() bool { return e.DebitTotal() == e.CreditTotal() }

func sum(lines []JournalLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Amount
	}
	return total
}

// Choice is a single-select question's correct option and its full option list.
type Choice struct {
	Correct string
	Options []string
}

// Template is an immutable question template. Exactly one of Journal,
// Select or Numeric is set, matching Kind.
type Template struct {
	ID          string
	Kind        Kind
	Text        func(amount int64, counterparty string) string
	Journal     func(amount int64, counterparty string) JournalEntry
	Select      func() Choice
	Numeric     func(amount int64) int64
	Explanation string
}

func side(lines ...JournalLine) []JournalLine { return lines }

func line(account string, amount int64) JournalLine {
	return JournalLine{Account: account, Amount: amount}
}

func journal(debits, credits []JournalLine) JournalEntry {
	return JournalEntry{Debits: debits, Credits: credits}
}

func fixed(text string) func(int64, string) string {
	return func(int64, string) string { return text }
}

func choice(correct string, others ...string) func() Choice {
	return func() Choice {
		return Choice{Correct: correct, Options: append([]string{correct}, others...)}
	}
}
