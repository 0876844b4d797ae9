package battle

import "github.com/abhisek/bokibattle/internal/problemgen"

// Transition computes the next state and the effects to perform. It is
// pure: it never blocks, never reads a clock and never mutates s.
//
// Events that do not apply to the current state (a submission after a
// timeout, a tick or problem for an older turn, an advance while a turn
// is open) leave the state unchanged and produce no effects.
func Transition(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Start:
		switch s.(type) {
		case Initializing, RunEnded:
			return start(e)
		}
		return s, nil
	case Quit:
		switch s.(type) {
		case Initializing, RunEnded:
			return s, nil
		}
		return RunEnded{Run: s.Current(), Outcome: OutcomeAborted}, []Effect{StopCountdown{}}
	}

	switch st := s.(type) {
	case AwaitingAnswer:
		return awaiting(st, ev)
	case Resolving:
		if d, ok := ev.(DisplayDone); ok && d.Turn == st.Run.Turn {
			return displayDone(st)
		}
	case ShowingResult:
		if _, ok := ev.(Advance); ok {
			return advance(st)
		}
	}
	return s, nil
}

func start(e Start) (State, []Effect) {
	d := e.Difficulty
	run := Run{
		RunID:      e.RunID,
		Difficulty: d,
		Kinds:      e.Kinds,
		Player:     Player{MaxHP: d.PlayerHP, HP: d.PlayerHP},
		Monster:    Spawn(e.RunID, 0),
		Turn:       1,
	}
	return AwaitingAnswer{Run: run, Interval: AttackInterval(d, 0)}, []Effect{
		Notify{Cue: BattleBGM(d.Level)},
		requestProblem(run),
	}
}

func requestProblem(run Run) RequestProblem {
	return RequestProblem{
		Turn: run.Turn,
		Request: problemgen.Request{
			Difficulty: string(run.Difficulty.Level),
			Kinds:      run.Kinds,
		},
	}
}

func awaiting(st AwaitingAnswer, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case ProblemReady:
		if e.Turn != st.Run.Turn || st.Problem != nil {
			return st, nil
		}
		if e.Err != nil || e.Problem == nil {
			return RunEnded{Run: st.Run, Outcome: OutcomeAborted}, []Effect{StopCountdown{}}
		}
		st.Problem = e.Problem
		st.Elapsed = 0
		return st, []Effect{
			StopCountdown{},
			StartCountdown{Turn: st.Run.Turn, Interval: st.Interval},
		}

	case Tick:
		if e.Turn != st.Run.Turn || st.Problem == nil {
			return st, nil
		}
		st.Elapsed += e.Delta
		if st.Elapsed < st.Interval {
			return st, nil
		}
		return timeout(st)

	case Submit:
		if st.Problem == nil || (e.ProblemID != "" && e.ProblemID != st.Problem.ID) {
			return st, nil
		}
		return submit(st, e.Answer)

	case Surrender:
		res := Result{Surrendered: true, PlayerDefeated: true, Expected: st.Problem}
		return ShowingResult{Run: st.Run, Result: res}, []Effect{
			StopCountdown{},
			Notify{Cue: CueCancel},
		}
	}
	return st, nil
}

// timeout applies missed-deadline damage. A survivable timeout opens a
// new turn on the same question index.
func timeout(st AwaitingAnswer) (State, []Effect) {
	run := st.Run
	dmg := TimeoutDamage(run.QuestionIndex)
	run.Player.HP = max(0, run.Player.HP-dmg)
	run.Player.Combo = 0

	if run.Player.HP > 0 {
		run.Turn++
		return AwaitingAnswer{Run: run, Interval: st.Interval}, []Effect{
			StopCountdown{},
			Notify{Cue: CueDamage},
			requestProblem(run),
		}
	}

	res := Result{TimedOut: true, DamageTaken: dmg, PlayerDefeated: true, Expected: st.Problem}
	return Resolving{Run: run, Result: res}, []Effect{
		StopCountdown{},
		Notify{Cue: CueDamage},
		Schedule{Delay: DefeatDelay, Event: DisplayDone{Turn: run.Turn}},
	}
}

func submit(st AwaitingAnswer, answer problemgen.Answer) (State, []Effect) {
	run := st.Run
	res := Result{Expected: st.Problem}
	cue := CueDamage

	if problemgen.IsCorrect(answer, st.Problem) {
		res.Correct = true
		res.DamageDealt = BaseDamage
		cue = CueAttack
		if IsCritical(st.Elapsed, st.Interval) {
			res.Critical = true
			res.DamageDealt = CriticalDamage
			res.TimeBonus = TimeBonus
			cue = CueCritical
		}
		res.ScoreGained = res.DamageDealt*10 + res.TimeBonus + run.Player.Combo*ComboBonus
		run.Player.Score += res.ScoreGained
		run.Player.Combo++
		run.Monster.HP = max(0, run.Monster.HP-res.DamageDealt)
		res.MonsterDefeated = run.Monster.HP == 0
	} else {
		res.DamageTaken = WrongDamage
		run.Player.HP = max(0, run.Player.HP-WrongDamage)
		run.Player.Combo = 0
		res.PlayerDefeated = run.Player.HP == 0
	}

	return Resolving{Run: run, Result: res}, []Effect{
		StopCountdown{},
		Notify{Cue: cue},
		Schedule{Delay: ResultDelay, Event: DisplayDone{Turn: run.Turn}},
	}
}

func displayDone(st Resolving) (State, []Effect) {
	if st.Result.TimedOut && st.Result.PlayerDefeated {
		return end(st.Run, OutcomeDefeated, st.Result)
	}
	return ShowingResult(st), nil
}

func advance(st ShowingResult) (State, []Effect) {
	run := st.Run
	if st.Result.PlayerDefeated {
		return end(run, OutcomeDefeated, st.Result)
	}
	next := run.QuestionIndex + 1
	if next >= MaxQuestions {
		run.QuestionIndex = next
		return end(run, OutcomeCleared, st.Result)
	}
	if st.Result.MonsterDefeated {
		run.MonsterIndex++
		run.Monster = Spawn(run.RunID, run.MonsterIndex)
	}
	run.QuestionIndex = next
	run.Turn++
	return AwaitingAnswer{Run: run, Interval: AttackInterval(run.Difficulty, next)}, []Effect{
		Notify{Cue: CueSelect},
		requestProblem(run),
	}
}

func end(run Run, outcome Outcome, last Result) (State, []Effect) {
	cue := CueGameOver
	if outcome == OutcomeCleared {
		cue = CueClear
	}
	return RunEnded{Run: run, Outcome: outcome, Last: &last}, []Effect{
		Notify{Cue: cue},
		RecordRun{Outcome: outcome},
	}
}
