package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/core"
	"github.com/vovakirdan/tui-reactor/internal/platform/tui"
	"github.com/vovakirdan/tui-reactor/internal/storage"
)

var (
	flagLevel int
	flagDemo  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a level and play",
	Long: `Open the menu to start the campaign, pick a level, watch the
autopilot or browse past runs. With --level the menu is skipped.

Controls:
  Left/Right   - Move hand selection
  Enter/Space  - Slot the selected module
  X            - Discard the selected module
  E/Tab        - End turn and power the reactor
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Back to menu (when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More hull and heat capacity, slow enemy scaling
  normal - Default settings
  hard   - Less hull and heat capacity, enemies scale from the start
  fixed  - No enemy scaling

Examples:
  reactor play
  reactor play --level 2
  reactor play --difficulty hard
  reactor play --demo
  reactor play --config ./my-reactor.yaml --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (1-based), skipping the menu")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play, skipping the menu")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagLevel < 0 || flagLevel > len(app.levels) {
		return fmt.Errorf("invalid --level %d: campaign has %d levels", flagLevel, len(app.levels))
	}

	// Logs would tear the alternate screen
	configureGames(0, nil)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if flagLevel > 0 || flagDemo {
		sel := tui.MenuSelection{GameID: "reactor", StartLevel: flagLevel, Difficulty: app.difficulty}
		if flagDemo {
			sel.GameID = "reactor-demo"
		}
		_, err := playSelection(sel, store, cfg)
		return err
	}

	return menuLoop(store, cfg)
}

// menuLoop alternates between the menu, the scoreboard and games until
// the player quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	difficulty := app.difficulty
	for {
		res, err := tui.RunMenu(store, cfg, app.levels, difficulty)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}

		default:
			difficulty = res.Selection.Difficulty
			// Fresh seed per game unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			backToMenu, err := playSelection(*res.Selection, store, cfg)
			if err != nil {
				return err
			}
			if !backToMenu {
				return nil
			}
		}
	}
}

func playSelection(sel tui.MenuSelection, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	if sel.Difficulty == "" {
		sel.Difficulty = config.DifficultyNormal
	}
	game, err := tui.CreateGame(sel)
	if err != nil {
		return false, err
	}
	return tui.Run(game, store, cfg, nil)
}
