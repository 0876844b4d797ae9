package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/bokibattle/internal/catalog"
)

const systemPrompt = `あなたは日商簿記3級の講師です。仕訳問題を1問作成してください。

ルール:
- 3級の出題範囲の取引を1つ選び、問題文と正しい仕訳を作成する。
- 借方合計と貸方合計は必ず一致させる。
- 金額はすべて正の整数（円）。
- 勘定科目は指定された一覧の表記をそのまま使う。一覧にない科目は使わない。
- 同じ勘定科目を借方と貸方の両方に使わない。
- 各側の仕訳行は4行以内。
- 解説は簡潔に、なぜその勘定科目になるかを説明する。
- 「出題済み」の問題と同じ取引は出題しない。`

// buildUserMessage lists the run difficulty, the permitted accounts and
// the recently served questions.
func buildUserMessage(req Request, prior []string, cfg Config) string {
	var b strings.Builder

	level := req.Difficulty
	if level == "" {
		level = "easy"
	}
	fmt.Fprintf(&b, "難易度: %s\n", level)
	fmt.Fprintf(&b, "勘定科目一覧: %s\n", strings.Join(catalog.Accounts(), "、"))

	b.WriteString("\n出題済み:\n")
	b.WriteString(buildPrior(prior, cfg.MaxPriorQuestions))

	return b.String()
}

// buildPrior formats prior questions, keeping only the most recent max.
// Returns "なし" when there are none.
func buildPrior(prior []string, max int) string {
	if len(prior) == 0 {
		return "なし"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
