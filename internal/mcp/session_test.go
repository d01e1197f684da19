package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
	reactormcp "github.com/vovakirdan/tui-reactor/internal/mcp"
)

func newSession(t *testing.T) *reactormcp.Session {
	t.Helper()
	lvls, err := levels.Campaign().LoadAll()
	require.NoError(t, err)
	return reactormcp.NewSession(config.DefaultReactorConfig(), lvls, config.DifficultyNormal, nil)
}

func TestCommandsNeedRun(t *testing.T) {
	s := newSession(t)

	_, err := s.State()
	assert.ErrorIs(t, err, reactormcp.ErrNoRun)
	_, err = s.EndTurn()
	assert.ErrorIs(t, err, reactormcp.ErrNoRun)
	_, err = s.ChooseReward(0)
	assert.ErrorIs(t, err, reactormcp.ErrNoRun)
}

func TestNewRunWaitsForHelm(t *testing.T) {
	s := newSession(t)
	v, err := s.NewRun("", 42, 0)
	require.NoError(t, err)

	assert.Equal(t, "combat", v.Stage)
	assert.True(t, v.Helm)
	assert.Equal(t, 1, v.Level)
	assert.Equal(t, 1, v.Round)
	assert.Len(t, v.Hand, 5)
	assert.False(t, v.GameOver)
	assert.Equal(t, v.Player.MaxHull, v.Player.Hull)
}

func TestNewRunOptions(t *testing.T) {
	s := newSession(t)

	v, err := s.NewRun("hard", 7, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Level)

	_, err = s.NewRun("brutal", 7, 0)
	assert.Error(t, err)

	_, err = s.NewRun("", 7, 99)
	assert.Error(t, err)
}

func TestHelmCommands(t *testing.T) {
	s := newSession(t)
	v, err := s.NewRun("fixed", 42, 0)
	require.NoError(t, err)
	hand := len(v.Hand)

	v, err = s.MoveSelection(-100)
	require.NoError(t, err)
	assert.Equal(t, 0, v.HandIndex)

	v, err = s.PlayModule()
	require.NoError(t, err)
	assert.Len(t, v.Hand, hand-1)
	assert.Equal(t, "Inactive", v.Reactor[0].Status)

	_, err = s.ChooseReward(0)
	assert.Error(t, err, "no reward during combat")

	v, err = s.EndTurn()
	require.NoError(t, err)
	assert.NotEmpty(t, v.Actions)
	assert.NotEmpty(t, v.Log)
	if !v.GameOver && v.Stage == "combat" {
		assert.True(t, v.Helm)
		assert.Equal(t, 2, v.Round)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	play := func() string {
		s := newSession(t)
		_, err := s.NewRun("normal", 99, 0)
		require.NoError(t, err)
		_, err = s.PlayModule()
		require.NoError(t, err)
		v, err := s.EndTurn()
		require.NoError(t, err)
		return v.JSON()
	}
	assert.Equal(t, play(), play())
}

func TestRunPlaysToTheEnd(t *testing.T) {
	s := newSession(t)
	v, err := s.NewRun("easy", 5, 0)
	require.NoError(t, err)

	for i := 0; i < 2000 && !v.GameOver; i++ {
		switch {
		case v.Stage == "reward":
			v, err = s.ChooseReward(0)
			require.NoError(t, err)
		case v.Helm:
			if next, playErr := s.PlayModule(); playErr == nil {
				v = next
			}
			if v.Helm {
				v, err = s.EndTurn()
				require.NoError(t, err)
			}
		default:
			t.Fatalf("run stuck in stage %s phase %s", v.Stage, v.Phase)
		}
	}

	require.True(t, v.GameOver)
	assert.Contains(t, []string{"victory", "defeat"}, v.Outcome)
	assert.Positive(t, v.Rounds)
}

type toolReply struct {
	Result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func callTool(t *testing.T, srv *server.MCPServer, name string, args map[string]any) (bool, string) {
	t.Helper()
	req, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params":  map[string]any{"name": name, "arguments": args},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(srv.HandleMessage(context.Background(), req))
	require.NoError(t, err)

	var reply toolReply
	require.NoError(t, json.Unmarshal(raw, &reply))
	require.Nil(t, reply.Error, string(raw))
	require.NotEmpty(t, reply.Result.Content)
	return reply.Result.IsError, reply.Result.Content[0].Text
}

func TestToolResults(t *testing.T) {
	srv := reactormcp.NewServer(newSession(t), "test")

	isErr, text := callTool(t, srv, "get_state", nil)
	assert.True(t, isErr)
	assert.Contains(t, text, "new_run")

	isErr, text = callTool(t, srv, "new_run", map[string]any{"seed": 11, "difficulty": "fixed"})
	require.False(t, isErr, text)
	var v reactormcp.StateView
	require.NoError(t, json.Unmarshal([]byte(text), &v))
	assert.True(t, v.Helm)
	assert.NotEmpty(t, v.EnemyScript)

	isErr, _ = callTool(t, srv, "move_selection", map[string]any{})
	assert.True(t, isErr, "step is required")

	isErr, text = callTool(t, srv, "move_selection", map[string]any{"step": 1})
	require.False(t, isErr, text)

	isErr, _ = callTool(t, srv, "choose_reward", map[string]any{"index": 0})
	assert.True(t, isErr)

	isErr, _ = callTool(t, srv, "new_run", map[string]any{"start_level": -1})
	assert.True(t, isErr)
}
