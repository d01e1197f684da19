package reactor

// Result summarizes a finished or abandoned run.
type Result struct {
	Difficulty   string
	Seed         int64
	Score        int
	LevelReached int // 1-based
	Cleared      int
	Rounds       int
	Victory      bool
	Finished     bool
}

// Outcome returns "victory", "defeat" or "abandoned".
func (r Result) Outcome() string {
	switch {
	case r.Victory:
		return "victory"
	case r.Finished:
		return "defeat"
	default:
		return "abandoned"
	}
}

// Result returns the run's summary so far.
func (r *Run) Result() Result {
	return Result{
		Difficulty:   string(r.opts.Difficulty),
		Seed:         r.opts.Seed,
		Score:        r.Score(),
		LevelReached: r.levelIdx + 1,
		Cleared:      r.cleared,
		Rounds:       r.Rounds(),
		Victory:      r.victory,
		Finished:     r.Over(),
	}
}

// Simulate plays a whole run headless with pilot making every decision.
func Simulate(opts Options, pilot Pilot) (Result, error) {
	r, err := NewRun(opts)
	if err != nil {
		return Result{}, err
	}
	for !r.Over() {
		switch {
		case r.Stage() == StageReward:
			if !r.ChooseUpgrade(pilot.ChooseUpgrade(r.Upgrades())) {
				r.ChooseUpgrade(0)
			}
		case r.Match().AwaitingHelm():
			pilot.TakeTurn(r)
			r.EndTurn()
		default:
			r.Advance()
		}
	}
	return r.Result(), nil
}
