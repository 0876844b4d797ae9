package components

import (
	"strings"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
)

// AnswerText renders the correct answer of p on one line, e.g.
// "(借) 仕入 120,000 / (貸) 買掛金 120,000".
func AnswerText(p *problemgen.Problem) string {
	if p == nil {
		return ""
	}
	switch p.Kind {
	case catalog.KindSelect:
		return p.Correct
	case catalog.KindNumeric:
		return YenLabel(p.NumericAnswer)
	}
	return "(借) " + linesText(p.Journal.Debits) + " / (貸) " + linesText(p.Journal.Credits)
}

// YenLabel formats an amount option, e.g. "12,000円".
func YenLabel(n int64) string {
	return catalog.Yen(n) + "円"
}

func linesText(lines []catalog.JournalLine) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Account + " " + catalog.Yen(l.Amount)
	}
	return strings.Join(parts, "、")
}
