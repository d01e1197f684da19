package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	reactormcp "github.com/vovakirdan/tui-reactor/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve a run to agents over MCP (stdio)",
	Long: `Start a Model Context Protocol server on stdin/stdout so an agent can
play a headless run with tools:

  new_run         - Start a campaign (difficulty, seed, start_level)
  get_state       - Read the current state
  move_selection  - Move the hand cursor
  play_module     - Slot the selected module
  discard_module  - Return the selected module to storage
  end_turn        - Power the reactor and play out the round
  choose_reward   - Pick a reward after winning a level

Logs go to stderr so they never mix with the protocol.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(_ *cobra.Command, _ []string) error {
	logger := app.logger.WithPrefix("reactor-mcp")
	sess := reactormcp.NewSession(app.cfg, app.levels, app.difficulty, logger)

	logger.Info("serving MCP on stdio", "levels", len(app.levels), "difficulty", app.difficulty)
	return server.ServeStdio(reactormcp.NewServer(sess, version))
}
