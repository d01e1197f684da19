// Package mcp exposes a headless reactor run to agents over the Model
// Context Protocol.
package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/combat"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
)

// ErrNoRun is returned by commands issued before new_run.
var ErrNoRun = errors.New("no run in progress, use new_run first")

// Session holds the single run an MCP client plays. Tool calls are
// serialized on its mutex.
type Session struct {
	mu         sync.Mutex
	cfg        config.ReactorConfig
	levels     []levels.Level
	difficulty config.DifficultyPreset
	log        *log.Logger
	run        *reactor.Run
}

// NewSession returns a session that starts runs from cfg and lvls.
func NewSession(cfg config.ReactorConfig, lvls []levels.Level, difficulty config.DifficultyPreset, logger *log.Logger) *Session {
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	return &Session{
		cfg:        cfg,
		levels:     lvls,
		difficulty: difficulty,
		log:        logger,
	}
}

// ModuleView is one module as reported to the client.
type ModuleView struct {
	Condition string  `json:"condition,omitempty"`
	Effect    string  `json:"effect"`
	Status    string  `json:"status"`
	Heat      float64 `json:"heat,omitempty"`
}

// ShipView is one combatant.
type ShipView struct {
	Name    string  `json:"name"`
	Hull    float64 `json:"hull"`
	MaxHull float64 `json:"max_hull"`
	Armor   float64 `json:"armor,omitempty"`
	Burn    float64 `json:"burn,omitempty"`
}

// StateView is the response to every tool call.
type StateView struct {
	Stage     string `json:"stage"`
	Level     int    `json:"level"`
	LevelName string `json:"level_name"`
	Levels    int    `json:"levels"`
	Round     int    `json:"round"`
	Phase     string `json:"phase"`
	Helm      bool   `json:"awaiting_helm"`

	Score   int `json:"score"`
	Cleared int `json:"cleared"`
	Rounds  int `json:"rounds"`

	Player ShipView `json:"player"`
	Enemy  ShipView `json:"enemy"`

	Hand         []ModuleView `json:"hand"`
	HandIndex    int          `json:"hand_index"`
	Reactor      []ModuleView `json:"reactor"`
	Storage      int          `json:"storage"`
	HeatCapacity float64      `json:"heat_capacity"`
	EnemyScript  []string     `json:"enemy_script"`

	Rewards []string `json:"rewards,omitempty"`
	Actions []string `json:"actions,omitempty"`
	Log     []string `json:"log,omitempty"`

	GameOver bool   `json:"game_over"`
	Victory  bool   `json:"victory,omitempty"`
	Outcome  string `json:"outcome,omitempty"`
}

// JSON renders the view for a tool result.
func (v *StateView) JSON() string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}

// NewRun replaces the current run. An empty difficulty keeps the session
// default, seed 0 picks a random seed and startLevel is 1-based.
func (s *Session) NewRun(difficulty string, seed int64, startLevel int) (*StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	preset := s.difficulty
	if difficulty != "" {
		p, err := config.ParsePreset(difficulty)
		if err != nil {
			return nil, err
		}
		preset = p
	}
	if seed == 0 {
		seed = rand.Int63()
	}
	start := 0
	if startLevel > 0 {
		start = startLevel - 1
	}

	run, err := reactor.NewRun(reactor.Options{
		Config:     s.cfg,
		Levels:     s.levels,
		Difficulty: preset,
		Seed:       seed,
		StartLevel: start,
		Logger:     s.log,
	})
	if err != nil {
		return nil, err
	}
	s.run = run
	if s.log != nil {
		s.log.Info("run started", "seed", seed, "difficulty", preset, "level", start+1)
	}
	return s.view(run.Advance()), nil
}

// State reports the current run without changing it.
func (s *Session) State() (*StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil {
		return nil, ErrNoRun
	}
	return s.view(nil), nil
}

// MoveSelection moves the hand cursor by step.
func (s *Session) MoveSelection(step int) (*StateView, error) {
	return s.helm("move_selection", func(r *reactor.Run) bool { return r.MoveSelection(step) })
}

// PlayModule slots the selected hand module.
func (s *Session) PlayModule() (*StateView, error) {
	return s.helm("play_module", (*reactor.Run).PlaySelected)
}

// DiscardModule returns the selected hand module to storage.
func (s *Session) DiscardModule() (*StateView, error) {
	return s.helm("discard_module", (*reactor.Run).DiscardSelected)
}

// EndTurn powers up the reactor and plays the round out until the helm
// needs input again.
func (s *Session) EndTurn() (*StateView, error) {
	return s.helm("end_turn", (*reactor.Run).EndTurn)
}

// ChooseReward takes reward i and starts the next level.
func (s *Session) ChooseReward(i int) (*StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil {
		return nil, ErrNoRun
	}
	if s.run.Stage() != reactor.StageReward {
		return nil, fmt.Errorf("no reward to choose in stage %s", s.run.Stage())
	}
	ups := s.run.Upgrades()
	if !s.run.ChooseUpgrade(i) {
		return nil, fmt.Errorf("invalid reward %d, must be 0-%d", i, len(ups)-1)
	}
	return s.view(s.run.Advance()), nil
}

func (s *Session) helm(name string, cmd func(*reactor.Run) bool) (*StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil {
		return nil, ErrNoRun
	}
	if s.run.Stage() != reactor.StageCombat || !s.run.Match().AwaitingHelm() {
		return nil, fmt.Errorf("%s: the helm is not taking commands in stage %s", name, s.run.Stage())
	}
	if !cmd(s.run) {
		return nil, fmt.Errorf("%s: command rejected", name)
	}
	return s.view(s.run.Advance()), nil
}

// view builds the response. Callers hold the lock.
func (s *Session) view(actions []core.Action) *StateView {
	r := s.run
	v := r.Match().Snapshot()
	res := r.Result()

	sv := &StateView{
		Stage:        r.Stage().String(),
		Level:        r.LevelIndex() + 1,
		LevelName:    r.Level().Name,
		Levels:       r.LevelCount(),
		Round:        v.Round + 1,
		Phase:        v.Phase.String(),
		Helm:         r.Stage() == reactor.StageCombat && r.Match().AwaitingHelm(),
		Score:        res.Score,
		Cleared:      res.Cleared,
		Rounds:       res.Rounds,
		Player:       shipView(r.Resolver().Ship(core.SidePlayer)),
		Enemy:        shipView(r.Resolver().Ship(core.SideEnemy)),
		Hand:         moduleViews(v.Hand),
		HandIndex:    v.HandIdx,
		Reactor:      moduleViews(v.Reactor),
		Storage:      len(v.Storage),
		HeatCapacity: v.HeatCapacity,
		GameOver:     r.Over(),
		Victory:      r.Victory(),
	}
	for _, m := range v.Enemy.Script[:v.Enemy.Revealed] {
		sv.EnemyScript = append(sv.EnemyScript, m.Effect)
	}
	for _, u := range r.Upgrades() {
		sv.Rewards = append(sv.Rewards, u.String())
	}
	for _, a := range actions {
		sv.Actions = append(sv.Actions, a.String())
	}
	for _, e := range r.Resolver().Events() {
		sv.Log = append(sv.Log, e.String())
	}
	if r.Over() {
		sv.Outcome = res.Outcome()
	}
	return sv
}

func shipView(s *combat.Ship) ShipView {
	return ShipView{Name: s.Name, Hull: s.Hull, MaxHull: s.MaxHull, Armor: s.Armor, Burn: s.Burn}
}

func moduleViews(ms []core.Module) []ModuleView {
	out := make([]ModuleView, len(ms))
	for i, m := range ms {
		out[i] = ModuleView{Condition: m.Condition, Effect: m.Effect, Status: m.Status.String(), Heat: m.Heat}
	}
	return out
}
