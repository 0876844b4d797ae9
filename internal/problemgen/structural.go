package problemgen

import (
	"fmt"
	"unicode/utf8"

	"github.com/abhisek/bokibattle/internal/catalog"
)

const (
	maxTextRunes        = 300
	maxExplanationRunes = 600
	maxLinesPerSide     = 4
)

// StructuralValidator checks that text fields are present and bounded and
// that both sides of the entry carry at least one line.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	switch {
	case p.Text == "":
		return v.fail("questionText is empty")
	case utf8.RuneCountInString(p.Text) > maxTextRunes:
		return v.fail(fmt.Sprintf("questionText exceeds %d characters", maxTextRunes))
	case p.Explanation == "":
		return v.fail("explanation is empty")
	case utf8.RuneCountInString(p.Explanation) > maxExplanationRunes:
		return v.fail(fmt.Sprintf("explanation exceeds %d characters", maxExplanationRunes))
	case len(p.Journal.Debits) == 0:
		return v.fail("debits is empty")
	case len(p.Journal.Credits) == 0:
		return v.fail("credits is empty")
	case len(p.Journal.Debits) > maxLinesPerSide || len(p.Journal.Credits) > maxLinesPerSide:
		return v.fail(fmt.Sprintf("more than %d lines on one side", maxLinesPerSide))
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

// BalanceValidator checks that every amount is positive and that debits
// equal credits.
type BalanceValidator struct{}

func (v *BalanceValidator) Name() string { return "balance" }

func (v *BalanceValidator) Validate(p *Problem) *ValidationError {
	for _, l := range append(append([]catalog.JournalLine{}, p.Journal.Debits...), p.Journal.Credits...) {
		if l.Amount <= 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("non-positive amount %d for %q", l.Amount, l.Account),
			}
		}
	}
	if !p.Journal.Balanced() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("debits %d do not equal credits %d", p.Journal.DebitTotal(), p.Journal.CreditTotal()),
		}
	}
	return nil
}

// ChartValidator checks that every account is in the chart of accounts
// and appears on at most one side.
type ChartValidator struct{}

func (v *ChartValidator) Name() string { return "chart" }

func (v *ChartValidator) Validate(p *Problem) *ValidationError {
	debit := make(map[string]bool)
	for _, l := range p.Journal.Debits {
		if !catalog.IsAccount(l.Account) {
			return v.unknown(l.Account)
		}
		debit[l.Account] = true
	}
	for _, l := range p.Journal.Credits {
		if !catalog.IsAccount(l.Account) {
			return v.unknown(l.Account)
		}
		if debit[l.Account] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("account %q appears on both sides", l.Account),
			}
		}
	}
	return nil
}

func (v *ChartValidator) unknown(account string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("account %q is not in the chart of accounts", account),
	}
}
