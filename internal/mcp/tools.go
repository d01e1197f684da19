package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer returns an MCP server with the reactor tools bound to sess.
func NewServer(sess *Session, version string) *server.MCPServer {
	s := server.NewMCPServer("reactor", version)
	RegisterTools(s, sess)
	return s
}

// RegisterTools adds all reactor tools to the MCP server.
func RegisterTools(s *server.MCPServer, sess *Session) {
	h := handlers{sess: sess}
	s.AddTool(newRunTool(), h.newRun)
	s.AddTool(getStateTool(), h.getState)
	s.AddTool(moveSelectionTool(), h.moveSelection)
	s.AddTool(playModuleTool(), h.playModule)
	s.AddTool(discardModuleTool(), h.discardModule)
	s.AddTool(endTurnTool(), h.endTurn)
	s.AddTool(chooseRewardTool(), h.chooseReward)
}

// --- Tool definitions ---

func newRunTool() mcp.Tool {
	return mcp.NewTool("new_run",
		mcp.WithDescription("Start a new reactor campaign, replacing any run in progress. "+
			"Returns the state once the helm first waits for commands."),
		mcp.WithString("difficulty", mcp.Description("Preset: easy, normal, hard or fixed. Defaults to the server's preset.")),
		mcp.WithNumber("seed", mcp.Description("Random seed. 0 or absent picks one.")),
		mcp.WithNumber("start_level", mcp.Description("1-based level to start from. Defaults to 1.")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current run state without changing it. Read-only."),
	)
}

func moveSelectionTool() mcp.Tool {
	return mcp.NewTool("move_selection",
		mcp.WithDescription("Move the hand cursor. Negative steps move left. The cursor stops at either end of the hand."),
		mcp.WithNumber("step", mcp.Required(), mcp.Description("Number of positions to move")),
	)
}

func playModuleTool() mcp.Tool {
	return mcp.NewTool("play_module",
		mcp.WithDescription("Slot the selected hand module into the next available reactor slot. "+
			"Overheated slots are reclaimed first, then empty ones."),
	)
}

func discardModuleTool() mcp.Tool {
	return mcp.NewTool("discard_module",
		mcp.WithDescription("Return the selected hand module to storage."),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("Finish helm commands. The reactor powers up, the chain resolves, the enemy acts, "+
			"and the run plays on until the helm needs commands again, a reward is offered or the run ends. "+
			"Returns the actions fired along the way."),
	)
}

func chooseRewardTool() mcp.Tool {
	return mcp.NewTool("choose_reward",
		mcp.WithDescription("Pick one of the offered rewards after a level is won and start the next level."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into the rewards list")),
	)
}

// --- Tool handlers ---

type handlers struct {
	sess *Session
}

func result(v *StateView, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(v.JSON()), nil
}

func (h handlers) newRun(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level := request.GetInt("start_level", 0)
	if level < 0 {
		return mcp.NewToolResultErrorf("start_level must be >= 1, got %d", level), nil
	}
	return result(h.sess.NewRun(
		request.GetString("difficulty", ""),
		int64(request.GetFloat("seed", 0)),
		level,
	))
}

func (h handlers) getState(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(h.sess.State())
}

func (h handlers) moveSelection(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	step, err := request.RequireInt("step")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(h.sess.MoveSelection(step))
}

func (h handlers) playModule(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(h.sess.PlayModule())
}

func (h handlers) discardModule(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(h.sess.DiscardModule())
}

func (h handlers) endTurn(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(h.sess.EndTurn())
}

func (h handlers) chooseReward(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := request.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(h.sess.ChooseReward(index))
}
