package reactor_test

import (
	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
)

func testLevel(id string, hull float64, script ...string) levels.Level {
	return levels.Level{
		ID:        id,
		Name:      "Test " + id,
		EnemyName: "Dummy " + id,
		Hull:      hull,
		Power:     1,
		Script:    script,
		Reveal:    core.LinearReveal{Start: len(script)},
	}
}

func testOptions(lvls ...levels.Level) reactor.Options {
	return reactor.Options{
		Config:     config.DefaultReactorConfig(),
		Levels:     lvls,
		Difficulty: config.DifficultyFixed,
		Seed:       42,
	}
}

// playRound lets the autopilot take one helm phase and runs the automatic
// phases until the next helm or the end of the level.
func playRound(r *reactor.Run) {
	r.Advance()
	if r.Match().AwaitingHelm() {
		reactor.Autopilot{}.TakeTurn(r)
	}
	r.Advance()
}
