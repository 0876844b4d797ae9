package problemgen

import (
	"testing"

	"github.com/abhisek/bokibattle/internal/catalog"
)

func journalProblem() *Problem {
	return &Problem{
		ID:   "p1",
		Kind: catalog.KindJournal,
		Journal: catalog.JournalEntry{
			Debits:  []catalog.JournalLine{{Account: "売掛金", Amount: 500}, {Account: "現金", Amount: 500}},
			Credits: []catalog.JournalLine{{Account: "売上", Amount: 1000}},
		},
	}
}

func entry(debits, credits []catalog.JournalLine) JournalAnswer {
	return JournalAnswer{Entry: catalog.JournalEntry{Debits: debits, Credits: credits}}
}

func TestIsCorrect_JournalSwappedOrder(t *testing.T) {
	p := &Problem{
		Kind: catalog.KindJournal,
		Journal: catalog.JournalEntry{
			Debits:  []catalog.JournalLine{{Account: "現金", Amount: 500}, {Account: "売掛金", Amount: 500}},
			Credits: []catalog.JournalLine{{Account: "売上", Amount: 1000}},
		},
	}
	a := entry(
		[]catalog.JournalLine{{Account: "売掛金", Amount: 500}, {Account: "現金", Amount: 500}},
		[]catalog.JournalLine{{Account: "売上", Amount: 1000}},
	)
	if !IsCorrect(a, p) {
		t.Error("expected reordered lines to be correct")
	}
}

func TestIsCorrect_JournalTwoLines(t *testing.T) {
	p := &Problem{
		Kind: catalog.KindJournal,
		Journal: catalog.JournalEntry{
			Debits:  []catalog.JournalLine{{Account: "売掛金", Amount: 500}},
			Credits: []catalog.JournalLine{{Account: "現金", Amount: 500}},
		},
	}
	a := entry(
		[]catalog.JournalLine{{Account: "売掛金", Amount: 500}},
		[]catalog.JournalLine{{Account: "現金", Amount: 500}},
	)
	if !IsCorrect(a, p) {
		t.Error("expected exact match to be correct")
	}
	swapped := entry(a.Entry.Credits, a.Entry.Debits)
	if IsCorrect(swapped, p) {
		t.Error("debit and credit sides must not be interchangeable")
	}
}

func TestIsCorrect_JournalMismatch(t *testing.T) {
	p := journalProblem()
	tests := []struct {
		name string
		a    JournalAnswer
	}{
		{"amount off by one", entry(
			[]catalog.JournalLine{{Account: "売掛金", Amount: 501}, {Account: "現金", Amount: 500}},
			[]catalog.JournalLine{{Account: "売上", Amount: 1000}},
		)},
		{"wrong account", entry(
			[]catalog.JournalLine{{Account: "売掛金", Amount: 500}, {Account: "当座預金", Amount: 500}},
			[]catalog.JournalLine{{Account: "売上", Amount: 1000}},
		)},
		{"missing line", entry(
			[]catalog.JournalLine{{Account: "売掛金", Amount: 500}},
			[]catalog.JournalLine{{Account: "売上", Amount: 1000}},
		)},
		{"extra line", entry(
			[]catalog.JournalLine{{Account: "売掛金", Amount: 500}, {Account: "現金", Amount: 500}},
			[]catalog.JournalLine{{Account: "売上", Amount: 1000}, {Account: "雑収入", Amount: 1}},
		)},
		{"empty credits", entry(
			[]catalog.JournalLine{{Account: "売掛金", Amount: 500}, {Account: "現金", Amount: 500}},
			nil,
		)},
		{"empty debits", entry(
			nil,
			[]catalog.JournalLine{{Account: "売上", Amount: 1000}},
		)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if IsCorrect(tc.a, p) {
				t.Errorf("expected incorrect")
			}
		})
	}
}

func TestIsCorrect_Select(t *testing.T) {
	p := &Problem{Kind: catalog.KindSelect, Correct: "前払金", Options: []string{"前払金", "前受金"}}
	if !IsCorrect(SelectAnswer("前払金"), p) {
		t.Error("expected correct")
	}
	if IsCorrect(SelectAnswer("前受金"), p) {
		t.Error("expected incorrect")
	}
	if IsCorrect(SelectAnswer(" 前払金"), p) {
		t.Error("select comparison must be exact")
	}
}

func TestIsCorrect_Numeric(t *testing.T) {
	p := &Problem{Kind: catalog.KindNumeric, NumericAnswer: 24000}
	if !IsCorrect(NumericAnswer(24000), p) {
		t.Error("expected correct")
	}
	if IsCorrect(NumericAnswer(24001), p) {
		t.Error("expected incorrect")
	}
}

func TestIsCorrect_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		a    Answer
		p    *Problem
	}{
		{"numeric to select", NumericAnswer(1), &Problem{Kind: catalog.KindSelect, Correct: "1"}},
		{"select to numeric", SelectAnswer("24000"), &Problem{Kind: catalog.KindNumeric, NumericAnswer: 24000}},
		{"journal to numeric", entry(nil, nil), &Problem{Kind: catalog.KindNumeric}},
		{"select to journal", SelectAnswer("現金"), journalProblem()},
		{"nil answer", nil, journalProblem()},
		{"nil problem", SelectAnswer("x"), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if IsCorrect(tc.a, tc.p) {
				t.Error("expected shape mismatch to be incorrect")
			}
		})
	}
}

func TestNormalizeJournal(t *testing.T) {
	in := catalog.JournalEntry{
		Debits: []catalog.JournalLine{
			{Account: " 現金 ", Amount: 500},
			{Account: "", Amount: 100},
			{Account: "売掛金", Amount: 0},
		},
		Credits: []catalog.JournalLine{
			{Account: "売上", Amount: 500},
			{Account: "雑収入", Amount: -1},
		},
	}
	got := NormalizeJournal(in)
	if len(got.Debits) != 1 || got.Debits[0].Account != "現金" {
		t.Errorf("unexpected debits: %+v", got.Debits)
	}
	if len(got.Credits) != 1 || got.Credits[0].Account != "売上" {
		t.Errorf("unexpected credits: %+v", got.Credits)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12000", 12000, false},
		{" 12,000 ", 12000, false},
		{"12,000円", 12000, false},
		{"１２，０００", 12000, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
