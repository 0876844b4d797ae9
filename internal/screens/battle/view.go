package battle

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	game "github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/ui/components"
	"github.com/abhisek/bokibattle/internal/ui/layout"
	"github.com/abhisek/bokibattle/internal/ui/theme"
)

func (s *BattleScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	snap := s.snap

	if snap.Screen == game.ScreenAborted {
		return components.CabinetFrame(renderAborted(), width, height)
	}

	sections := []string{renderMonster(snap, cw)}
	switch snap.Screen {
	case game.ScreenLoading, game.ScreenIdle:
		sections = append(sections, components.Panel("", theme.Hint.Render("モンスターが近づいてくる…"), cw))
	case game.ScreenBattle:
		sections = append(sections, s.renderQuestion(cw))
	case game.ScreenResolving, game.ScreenResult:
		sections = append(sections, s.renderOutcome(cw))
	}
	sections = append(sections, renderPlayer(snap, cw))

	if s.confirm {
		sections = append(sections, renderConfirm(cw, s.canSurrender()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

func renderMonster(snap game.Snapshot, cw int) string {
	m := snap.Monster
	name := theme.Title.Render(fmt.Sprintf("%s %s  Lv.%d", m.Emoji, m.Name, m.Level))
	hp := components.HPBar("HP", m.HP, m.MaxHP, cw-4).View()
	body := name + "\n" + hp
	if snap.Screen == game.ScreenBattle && snap.Difficulty.Level != game.LevelPractice {
		body += "\n" + components.CountdownBar(snap.Remaining(), cw-4).View()
	}
	return components.Panel(fmt.Sprintf("第%d問 / %d", snap.QuestionIndex+1, game.MaxQuestions), body, cw)
}

func (s *BattleScreen) renderQuestion(cw int) string {
	p := s.snap.Problem
	text := lipgloss.NewStyle().Width(cw - 4).Render(p.Text)

	var input string
	if p.Kind == catalog.KindJournal {
		input = s.form.View(cw - 4)
	} else {
		input = s.picker.View(cw - 4)
	}
	return theme.Window.Width(cw - 2).Render(text + "\n\n" + input)
}

func (s *BattleScreen) renderOutcome(cw int) string {
	res := s.snap.Result
	if res == nil {
		return ""
	}

	var lines []string
	switch {
	case res.Surrendered:
		lines = append(lines, theme.Incorrect.Render("降参した…"))
	case res.TimedOut:
		lines = append(lines, theme.Incorrect.Render(fmt.Sprintf("時間切れ！ %dのダメージを受けた", res.DamageTaken)))
	case res.Critical:
		lines = append(lines, theme.CriticalHit.Render(fmt.Sprintf("会心の一撃！ %dのダメージを与えた", res.DamageDealt)))
	case res.Correct:
		lines = append(lines, theme.Correct.Render(fmt.Sprintf("正解！ %dのダメージを与えた", res.DamageDealt)))
	default:
		lines = append(lines, theme.Incorrect.Render(fmt.Sprintf("不正解… %dのダメージを受けた", res.DamageTaken)))
	}
	if res.ScoreGained > 0 {
		lines = append(lines, fmt.Sprintf("スコア +%s", layout.Number(res.ScoreGained)))
	}
	if res.MonsterDefeated {
		lines = append(lines, theme.Selected.Render(s.snap.Monster.Name+"を倒した！"))
	}
	if res.PlayerDefeated && !res.Surrendered {
		lines = append(lines, theme.Incorrect.Render("力尽きた…"))
	}

	if p := res.Expected; p != nil && s.snap.Screen == game.ScreenResult {
		lines = append(lines, "", "正解: "+theme.Correct.Render(components.AnswerText(p)))
		if p.Explanation != "" {
			lines = append(lines, theme.Hint.Width(cw-4).Render(p.Explanation))
		}
		if p.Kind != catalog.KindJournal {
			lines = append(lines, "", s.picker.View(cw-4))
		}
	}
	return theme.Window.Width(cw - 2).Render(strings.Join(lines, "\n"))
}

func renderPlayer(snap game.Snapshot, cw int) string {
	pl := snap.Player
	hp := components.HPBar("HP", pl.HP, pl.MaxHP, cw/2).View()
	if snap.Difficulty.Level == game.LevelPractice {
		hp = theme.Hint.Render("練習モード")
	}
	stats := fmt.Sprintf("スコア %s   コンボ %d", layout.Number(pl.Score), pl.Combo)
	return components.Panel("", hp+"   "+stats, cw)
}

func renderConfirm(cw int, surrender bool) string {
	body := "Q: 記録せずにタイトルへ\nN: バトルに戻る"
	if surrender {
		body = "Y: 降参する（記録が残ります）\n" + body
	}
	return components.Panel("メニュー", body, cw)
}

func renderAborted() string {
	return theme.Incorrect.Render("問題を用意できませんでした") + "\n\n" +
		theme.Hint.Render("何かキーを押すと戻ります")
}
