package reactor

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reactor/internal/config"
	platformcore "github.com/vovakirdan/tui-reactor/internal/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
	"github.com/vovakirdan/tui-reactor/internal/registry"
)

// Setup is what every new game instance starts from.
type Setup struct {
	Config     config.ReactorConfig
	Levels     []levels.Level
	Difficulty config.DifficultyPreset
	StartLevel int // 1-based, 0 means the first level
	Logger     *log.Logger
}

var (
	setupMu sync.RWMutex
	setup   *Setup
)

// Configure sets the setup used by games created afterwards.
func Configure(s Setup) {
	setupMu.Lock()
	defer setupMu.Unlock()
	setup = &s
}

// CurrentSetup returns the active setup, falling back to the embedded
// configuration and campaign.
func CurrentSetup() Setup {
	setupMu.RLock()
	defer setupMu.RUnlock()
	if setup != nil {
		return *setup
	}
	lvls, _ := levels.Campaign().LoadAll()
	return Setup{
		Config:     config.DefaultReactorConfig(),
		Levels:     lvls,
		Difficulty: config.DifficultyNormal,
	}
}

// autoThink is how long the autopilot waits before acting in demo mode.
const autoThink = 700 * time.Millisecond

func init() {
	registry.Register("reactor", func() registry.Game {
		return New(false)
	})
	registry.Register("reactor-demo", func() registry.Game {
		return New(true)
	})
}

var (
	_ registry.Configurable = (*Game)(nil)
	_ registry.Resizer      = (*Game)(nil)
	_ registry.RunInfo      = (*Game)(nil)
)

// Game adapts a Run to the platform's fixed-tick loop.
type Game struct {
	auto  bool
	pilot Autopilot

	run *Run
	err error

	screenW int
	screenH int
	dt      time.Duration

	paused    bool
	rewardIdx int
	think     time.Duration

	// per-session choices, zero values keep the setup's
	startLevel int
	difficulty config.DifficultyPreset
}

// New creates a reactor game. With auto set the autopilot plays.
func New(auto bool) *Game {
	return &Game{auto: auto, pilot: Autopilot{MaxDiscards: 1}}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.auto {
		return "reactor-demo"
	}
	return "reactor"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.auto {
		return "Reactor (autopilot)"
	}
	return "Reactor"
}

// Apply implements registry.Configurable.
func (g *Game) Apply(opts registry.Options) error {
	if opts.Difficulty != "" {
		p, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return err
		}
		g.difficulty = p
	}
	if opts.StartLevel < 0 {
		return fmt.Errorf("reactor: invalid start level %d", opts.StartLevel)
	}
	g.startLevel = opts.StartLevel
	return nil
}

// Reset starts a new run.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.dt = time.Second / time.Duration(rate)
	g.paused = false
	g.rewardIdx = 0
	g.think = autoThink

	s := CurrentSetup()
	if g.difficulty != "" {
		s.Difficulty = g.difficulty
	}
	if g.startLevel > 0 {
		s.StartLevel = g.startLevel
	}
	start := 0
	if s.StartLevel > 0 {
		start = s.StartLevel - 1
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	g.run, g.err = NewRun(Options{
		Config:     s.Config,
		Levels:     s.Levels,
		Difficulty: s.Difficulty,
		Seed:       seed,
		StartLevel: start,
		Logger:     s.Logger,
	})
}

// Resize adapts the layout without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Run returns the active run, nil when setup failed.
func (g *Game) Run() *Run { return g.run }

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.run == nil {
		return platformcore.StepResult{State: g.State()}
	}
	if in.Has(platformcore.ActionPause) && !g.run.Over() {
		g.paused = !g.paused
	}
	if g.paused || g.run.Over() {
		return platformcore.StepResult{State: g.State()}
	}

	switch g.run.Stage() {
	case StageReward:
		g.stepReward(in)
	case StageCombat:
		if g.run.Match().AwaitingHelm() {
			g.stepHelm(in)
		}
	}

	var events []string
	if a, ok := g.run.Tick(g.dt); ok {
		events = append(events, a.String())
	}
	return platformcore.StepResult{State: g.State(), Events: events}
}

func (g *Game) stepHelm(in platformcore.InputFrame) {
	if g.auto {
		if g.wait() {
			g.pilot.TakeTurn(g.run)
		}
		return
	}
	switch {
	case in.Has(platformcore.ActionLeft):
		g.run.MoveSelection(-1)
	case in.Has(platformcore.ActionRight):
		g.run.MoveSelection(1)
	case in.Has(platformcore.ActionConfirm):
		g.run.PlaySelected()
	case in.Has(platformcore.ActionDiscard):
		g.run.DiscardSelected()
	case in.Has(platformcore.ActionEndTurn):
		g.run.EndTurn()
	}
}

func (g *Game) stepReward(in platformcore.InputFrame) {
	ups := g.run.Upgrades()
	if g.auto {
		if g.wait() {
			g.run.ChooseUpgrade(g.pilot.ChooseUpgrade(ups))
		}
		return
	}
	switch {
	case in.Has(platformcore.ActionLeft), in.Has(platformcore.ActionUp):
		g.rewardIdx = platformcore.Clamp(g.rewardIdx-1, 0, len(ups)-1)
	case in.Has(platformcore.ActionRight), in.Has(platformcore.ActionDown):
		g.rewardIdx = platformcore.Clamp(g.rewardIdx+1, 0, len(ups)-1)
	case in.Has(platformcore.ActionConfirm):
		if g.run.ChooseUpgrade(g.rewardIdx) {
			g.rewardIdx = 0
		}
	}
}

// wait counts down the autopilot's think time and reports when it elapsed.
func (g *Game) wait() bool {
	g.think -= g.dt
	if g.think > 0 {
		return false
	}
	g.think = autoThink
	return true
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.run == nil {
		return platformcore.GameState{GameOver: true}
	}
	res := g.run.Result()
	return platformcore.GameState{
		Score:    res.Score,
		Level:    res.LevelReached,
		Cleared:  res.Cleared,
		Rounds:   res.Rounds,
		GameOver: g.run.Over(),
		Victory:  res.Victory,
		Paused:   g.paused,
	}
}

// Seed returns the current run's seed.
func (g *Game) Seed() int64 {
	if g.run == nil {
		return 0
	}
	return g.run.Seed()
}

// Difficulty returns the current run's preset name.
func (g *Game) Difficulty() string {
	if g.run == nil {
		return string(CurrentSetup().Difficulty)
	}
	return string(g.run.Difficulty())
}

// errorText describes why the game could not start.
func (g *Game) errorText() string {
	if g.err == nil {
		return ""
	}
	return fmt.Sprint(g.err)
}
