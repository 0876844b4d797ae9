package problemgen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/abhisek/bokibattle/internal/catalog"
)

// Answer is a submitted answer. It is one of JournalAnswer, SelectAnswer
// or NumericAnswer.
type Answer interface {
	isAnswer()
}

// JournalAnswer is a submitted journal entry.
type JournalAnswer struct {
	Entry catalog.JournalEntry
}

// SelectAnswer is the chosen option of a single-select question.
type SelectAnswer string

// NumericAnswer is the chosen value of a numeric question.
type NumericAnswer int64

func (JournalAnswer) isAnswer() {}
func (SelectAnswer) isAnswer()  {}
func (NumericAnswer) isAnswer() {}

// IsCorrect reports whether answer solves p. It never panics: a nil
// problem, a nil answer or an answer whose shape does not match the
// problem's kind is simply incorrect.
//
// Journal answers are compared per side as sorted "account:amount"
// token lists, so line order does not matter but spelling and amounts
// must match exactly.
func IsCorrect(answer Answer, p *Problem) bool {
	if p == nil || answer == nil {
		return false
	}
	switch a := answer.(type) {
	case SelectAnswer:
		return p.Kind == catalog.KindSelect && string(a) == p.Correct
	case NumericAnswer:
		return p.Kind == catalog.KindNumeric && int64(a) == p.NumericAnswer
	case JournalAnswer:
		if p.Kind != catalog.KindJournal {
			return false
		}
		if len(a.Entry.Debits) == 0 || len(a.Entry.Credits) == 0 {
			return false
		}
		return tokens(a.Entry.Debits) == tokens(p.Journal.Debits) &&
			tokens(a.Entry.Credits) == tokens(p.Journal.Credits)
	default:
		return false
	}
}

func tokens(lines []catalog.JournalLine) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Account + ":" + strconv.FormatInt(l.Amount, 10)
	}
	slices.Sort(out)
	return strings.Join(out, ",")
}

// NormalizeJournal drops rows with an empty account or a non-positive
// amount. Input forms call it before building a JournalAnswer.
func NormalizeJournal(e catalog.JournalEntry) catalog.JournalEntry {
	return catalog.JournalEntry{
		Debits:  keepFilled(e.Debits),
		Credits: keepFilled(e.Credits),
	}
}

func keepFilled(lines []catalog.JournalLine) []catalog.JournalLine {
	var out []catalog.JournalLine
	for _, l := range lines {
		if strings.TrimSpace(l.Account) == "" || l.Amount <= 0 {
			continue
		}
		out = append(out, catalog.JournalLine{Account: strings.TrimSpace(l.Account), Amount: l.Amount})
	}
	return out
}

// ParseAmount parses a typed yen amount. Full-width digits, thousands
// separators, a trailing 円 and surrounding whitespace are accepted,
// e.g. "１２，０００円" parses as 12000.
func ParseAmount(s string) (int64, error) {
	s = width.Narrow.String(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "円")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return n, nil
}

// CorrectAnswer returns the answer that solves p.
func CorrectAnswer(p *Problem) Answer {
	switch p.Kind {
	case catalog.KindSelect:
		return SelectAnswer(p.Correct)
	case catalog.KindNumeric:
		return NumericAnswer(p.NumericAnswer)
	default:
		return JournalAnswer{Entry: p.Journal}
	}
}

// WrongAnswer returns a plausible answer to p that IsCorrect rejects:
// another offered option, or the correct entry with one amount changed.
func WrongAnswer(p *Problem) Answer {
	switch p.Kind {
	case catalog.KindSelect:
		for _, o := range p.Options {
			if o != p.Correct {
				return SelectAnswer(o)
			}
		}
		return SelectAnswer("")
	case catalog.KindNumeric:
		for _, o := range p.NumericOptions {
			if o != p.NumericAnswer {
				return NumericAnswer(o)
			}
		}
		return NumericAnswer(p.NumericAnswer + 1)
	default:
		e := catalog.JournalEntry{
			Debits:  slices.Clone(p.Journal.Debits),
			Credits: slices.Clone(p.Journal.Credits),
		}
		if len(e.Debits) > 0 {
			e.Debits[0].Amount += AmountUnit
		}
		return JournalAnswer{Entry: e}
	}
}
