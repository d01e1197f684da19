// Package reactor wires the reactor simulation, combat and campaign into a
// playable game.
package reactor

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/combat"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
)

// DefaultMaxRounds ends a level as a loss when the enemy outlasts it.
const DefaultMaxRounds = 40

// advanceLimit bounds Advance; a full round is far below it.
const advanceLimit = 10000

// Stage is where a run currently is.
type Stage uint8

const (
	StageCombat Stage = iota
	StageReward
	StageOver
)

// String returns the string representation of a stage.
func (s Stage) String() string {
	switch s {
	case StageReward:
		return "reward"
	case StageOver:
		return "over"
	default:
		return "combat"
	}
}

// Options configure a run.
type Options struct {
	Config     config.ReactorConfig
	Levels     []levels.Level
	Difficulty config.DifficultyPreset
	Seed       int64
	StartLevel int // index into Levels
	MaxRounds  int // 0 means DefaultMaxRounds
	Trace      *core.Trace
	Logger     *log.Logger
}

// Run is one campaign attempt: a persistent player deck fighting through
// the levels in order, picking upgrades between them.
type Run struct {
	opts       Options
	rng        *rand.Rand
	catalog    core.Catalog
	pool       []core.Module
	difficulty *config.DifficultyManager
	log        *log.Logger

	deck     *core.PlayerDeck
	match    *core.Match
	player   *combat.Ship
	resolver *combat.Resolver

	levelIdx int
	stage    Stage
	upgrades []core.Upgrade

	dealt   float64 // damage dealt in finished levels
	cleared int
	rounds  int // rounds played in finished levels
	victory bool
}

// NewRun validates the options and starts the first level.
func NewRun(opts Options) (*Run, error) {
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	if _, err := config.ParsePreset(string(opts.Difficulty)); err != nil {
		return nil, err
	}
	config.ApplyReactorPreset(&opts.Config, opts.Difficulty)
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = DefaultMaxRounds
	}
	if opts.StartLevel < 0 || opts.StartLevel >= len(opts.Levels) {
		return nil, fmt.Errorf("reactor: start level %d out of range (have %d)", opts.StartLevel+1, len(opts.Levels))
	}
	if err := ValidateLevels(opts.Config, opts.Levels); err != nil {
		return nil, err
	}
	catalog, err := Catalog(opts.Config)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := opts.Config.Player
	r := &Run{
		opts:       opts,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		catalog:    catalog,
		pool:       Modules(opts.Config.Rewards.Modules),
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		log:        logger,
		deck:       core.NewPlayerDeck(DeckConfig(p), catalog),
		player:     combat.NewShip("Player", p.Hull, p.Armor, 1),
		levelIdx:   opts.StartLevel,
	}
	r.startLevel()
	return r, nil
}

// dispatcher forwards match output to the current level's resolver and the
// optional trace.
type dispatcher struct{ r *Run }

func (d dispatcher) Dispatch(a core.Action) {
	d.r.resolver.Dispatch(a)
	if d.r.opts.Trace != nil {
		d.r.opts.Trace.Dispatch(a)
	}
}

func (d dispatcher) RoundEnded(round int) {
	d.r.resolver.RoundEnded(round)
	if d.r.opts.Trace != nil {
		d.r.opts.Trace.RoundEnded(round)
	}
}

func (r *Run) startLevel() {
	lvl := r.opts.Levels[r.levelIdx]
	enemy := combat.NewShip(lvl.EnemyName, r.difficulty.EnemyHull(lvl.Hull), lvl.Armor, lvl.Power)
	r.player.Burn = 0
	r.resolver = combat.NewResolver(r.player, enemy, r.catalog, r.difficulty)
	if r.match == nil {
		r.match = core.NewMatch(r.deck, lvl.Core(), Pacing(r.opts.Config.Pacing), r.rng, dispatcher{r})
	} else {
		r.match.StartLevel(lvl.Core())
	}
	r.stage = StageCombat
	r.upgrades = nil
	r.log.Debug("level start", "level", lvl.ID, "enemy", enemy.Name, "hull", enemy.Hull)
}

// settle checks combat after every step and moves the run on.
func (r *Run) settle() {
	if r.stage != StageCombat {
		return
	}
	outcome := r.resolver.Outcome()
	played := r.match.Round() + 1
	if outcome == combat.Ongoing && r.match.Round() >= r.opts.MaxRounds {
		// The cap trips as the next round begins; it was never fought.
		outcome = combat.Lost
		played = r.match.Round()
	}
	if outcome == combat.Ongoing {
		return
	}
	r.match.Halt()
	r.dealt += r.resolver.Dealt
	r.rounds += played
	lvl := r.opts.Levels[r.levelIdx]
	r.log.Debug("level end", "level", lvl.ID, "outcome", outcome, "round", r.match.Round())

	if outcome == combat.Lost {
		r.stage = StageOver
		return
	}
	r.cleared++
	if r.levelIdx == len(r.opts.Levels)-1 {
		r.victory = true
		r.stage = StageOver
		return
	}
	rw := r.opts.Config.Rewards
	offerSlot := rw.MaxSlots > len(r.deck.Reactor)
	r.upgrades = core.GenerateUpgrades(r.rng, r.pool, rw.Choices, offerSlot)
	if len(r.upgrades) == 0 {
		r.nextLevel()
		return
	}
	r.stage = StageReward
}

func (r *Run) nextLevel() {
	r.levelIdx++
	r.startLevel()
}

// Tick advances pacing by dt and settles combat.
func (r *Run) Tick(dt time.Duration) (core.Action, bool) {
	if r.stage != StageCombat {
		return core.Action{}, false
	}
	a, ok := r.match.Tick(dt)
	r.settle()
	return a, ok
}

// Step runs one step ignoring pacing.
func (r *Run) Step() (core.Action, bool) {
	if r.stage != StageCombat {
		return core.Action{}, false
	}
	a, ok := r.match.Step()
	r.settle()
	return a, ok
}

// Advance steps until the helm waits for input or the level ends.
func (r *Run) Advance() []core.Action {
	var actions []core.Action
	for i := 0; i < advanceLimit && r.stage == StageCombat && !r.match.AwaitingHelm(); i++ {
		if a, ok := r.Step(); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

// ChooseUpgrade applies upgrade i and starts the next level.
func (r *Run) ChooseUpgrade(i int) bool {
	if r.stage != StageReward || i < 0 || i >= len(r.upgrades) {
		return false
	}
	u := r.upgrades[i]
	u.Apply(r.deck)
	r.log.Debug("upgrade", "choice", u.String())
	r.nextLevel()
	return true
}

// Match returns the active match.
func (r *Run) Match() *core.Match { return r.match }

// Resolver returns the current level's combat resolver.
func (r *Run) Resolver() *combat.Resolver { return r.resolver }

// Stage returns the run stage.
func (r *Run) Stage() Stage { return r.stage }

// Upgrades returns the pending reward choices.
func (r *Run) Upgrades() []core.Upgrade { return append([]core.Upgrade(nil), r.upgrades...) }

// Level returns the current level.
func (r *Run) Level() levels.Level { return r.opts.Levels[r.levelIdx] }

// LevelIndex returns the zero-based index of the current level.
func (r *Run) LevelIndex() int { return r.levelIdx }

// LevelCount returns the number of levels in the campaign.
func (r *Run) LevelCount() int { return len(r.opts.Levels) }

// Cleared returns how many levels were won.
func (r *Run) Cleared() int { return r.cleared }

// Over reports whether the run ended.
func (r *Run) Over() bool { return r.stage == StageOver }

// Victory reports whether every level was cleared.
func (r *Run) Victory() bool { return r.victory }

// Seed returns the run's seed.
func (r *Run) Seed() int64 { return r.opts.Seed }

// Difficulty returns the preset the run was started with.
func (r *Run) Difficulty() config.DifficultyPreset { return r.opts.Difficulty }

// DifficultyLevel returns the current difficulty level in [0, 1].
func (r *Run) DifficultyLevel() float64 { return r.difficulty.Level(r.match.Round()) }

// Rounds returns the rounds played so far, counting the one in progress.
func (r *Run) Rounds() int {
	if r.stage == StageCombat {
		return r.rounds + r.match.Round() + 1
	}
	return r.rounds
}

// Dealt returns the total damage done to enemies.
func (r *Run) Dealt() float64 {
	if r.stage == StageCombat {
		return r.dealt + r.resolver.Dealt
	}
	return r.dealt
}

// Score returns damage dealt plus the bonus for cleared levels.
func (r *Run) Score() int {
	return int(r.Dealt()) + r.cleared*r.opts.Config.Rewards.LevelBonus
}

// Deck returns a copy of the persistent player deck.
func (r *Run) Deck() *core.PlayerDeck { return r.deck.Clone() }

// MoveSelection moves the hand cursor during the helm phase.
func (r *Run) MoveSelection(step int) bool {
	return r.stage == StageCombat && r.match.MoveSelection(step)
}

// PlaySelected slots the selected hand module.
func (r *Run) PlaySelected() bool {
	return r.stage == StageCombat && r.match.PlaySelected()
}

// DiscardSelected returns the selected hand module to storage.
func (r *Run) DiscardSelected() bool {
	return r.stage == StageCombat && r.match.DiscardSelected()
}

// EndTurn finishes the helm phase.
func (r *Run) EndTurn() bool {
	return r.stage == StageCombat && r.match.EndTurn()
}
