// reactor is a turn-based space combat game played by chaining modules
// through a heat-limited reactor, in the terminal or over SSH.
//
// Usage:
//
//	reactor play             - Pick a level and play
//	reactor levels           - List campaign levels
//	reactor scores           - Show the best runs
//	reactor sim              - Run autopilot campaigns headless
//	reactor serve            - Start SSH server for remote play
//	reactor mcp              - Serve a run to agents over MCP (stdio)
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.reactor/runs.db)
//	--config <path>       - Use a custom game config YAML
//	--levels <dir>        - Load levels from a directory
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
)

// version is set at build time with -ldflags.
var version = "dev"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLogLevel   string
)

// env is what every command shares once flags are parsed.
type env struct {
	cfg        config.ReactorConfig
	levels     []levels.Level
	difficulty config.DifficultyPreset
	logger     *log.Logger
}

var app env

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reactor",
	Short: "Reactor - chain modules, manage heat, win the campaign",
	Long: `Reactor is a turn-based space combat game for the terminal.

Each round you slot modules from your hand into the reactor. Powering up
fires them in chains: a module activates when its condition matches the
last action fired. Long chains hit hard but run hot, and overheated slots
must be reclaimed before they fire again.

Available commands:
  play     - Pick a level and play
  levels   - List campaign levels
  scores   - View the best runs
  sim      - Run autopilot campaigns headless
  serve    - Start SSH server for remote play
  mcp      - Serve a run to agents over MCP

Examples:
  reactor play
  reactor play --level 3 --difficulty hard
  reactor sim --runs 100 --parallel 8
  reactor serve --ssh :2222`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.reactor/runs.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in campaign)")
	pf.StringVar(&flagDifficulty, "difficulty", string(config.DifficultyNormal), "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

// setup loads configuration and levels; errors here are fatal.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	app.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reactor",
		Level:           level,
	})

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	app.difficulty, err = config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	app.cfg, err = config.LoadReactor(flagConfig)
	if err != nil {
		return err
	}

	loader := levels.Campaign()
	if flagLevelsDir != "" {
		loader = levels.Dir(flagLevelsDir)
	}
	app.levels, err = loader.LoadAll()
	if err != nil {
		return err
	}
	if err := reactor.ValidateLevels(app.cfg, app.levels); err != nil {
		return err
	}

	app.logger.Debug("setup loaded",
		"levels", len(app.levels),
		"difficulty", app.difficulty,
		"config", flagConfig,
	)
	return nil
}

// configureGames makes new reactor games start from the loaded setup.
func configureGames(startLevel int, logger *log.Logger) {
	reactor.Configure(reactor.Setup{
		Config:     app.cfg,
		Levels:     app.levels,
		Difficulty: app.difficulty,
		StartLevel: startLevel,
		Logger:     logger,
	})
}
