package mcptools

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/taskagents/internal/agent"
)

// echoCompleter answers every prompt with a fixed reply and records prompts.
type echoCompleter struct {
	mu      sync.Mutex
	reply   string
	prompts []string
}

func (e *echoCompleter) Complete(_ context.Context, prompt string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prompts = append(e.prompts, prompt)
	return e.reply, nil
}

func newTestService(reply string) (*AgentService, *agent.Registry, *echoCompleter) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ec := &echoCompleter{reply: reply}
	reg := agent.NewRegistry(agent.NewFactory(ec, logger), logger)
	return NewAgentService(reg, logger), reg, ec
}

// setupServerClient wires an MCP server and client together using in-memory
// transports.
func setupServerClient(t *testing.T) (*mcp.ClientSession, *agent.Registry) {
	t.Helper()

	svc, reg, _ := newTestService("done")
	server := NewAgentMCPServer(svc)

	st, ct := mcp.NewInMemoryTransports()
	ctx := context.Background()

	_, err := server.Connect(ctx, st, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
	})

	return session, reg
}

// decodeStructured converts a tool result's structured content into out.
func decodeStructured(t *testing.T, result *mcp.CallToolResult, out any) {
	t.Helper()
	require.NotNil(t, result.StructuredContent, "expected structured content")
	raw, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestMCPListTools(t *testing.T) {
	session, _ := setupServerClient(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, len(result.Tools))
	for i, tool := range result.Tools {
		names[i] = tool.Name
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"create_agent",
		"execute_task",
		"get_status",
		"list_agents",
		"list_kinds",
		"remove_agent",
		"run_chain",
	}, names)
}

func TestMCPCreateExecuteStatus(t *testing.T) {
	session, reg := setupServerClient(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "create_agent",
		Arguments: CreateAgentInput{
			Kind:       "research",
			Parameters: map[string]any{"topic": "AI"},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "create_agent should succeed")

	var created CreateAgentOutput
	decodeStructured(t, result, &created)
	assert.Equal(t, "research_0", created.ID)
	assert.Equal(t, "research", created.Kind)

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "execute_task",
		Arguments: ExecuteTaskInput{ID: created.ID},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var executed ExecuteTaskOutput
	decodeStructured(t, result, &executed)
	assert.Equal(t, "done", executed.Output)

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_status",
		Arguments: AgentIDInput{ID: created.ID},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var status GetStatusOutput
	decodeStructured(t, result, &status)
	assert.Contains(t, status.Status, "Results: done")
	assert.Equal(t, 1, reg.Len())
}

func TestMCPCreateAgent_InvalidKind(t *testing.T) {
	session, reg := setupServerClient(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "create_agent",
		Arguments: CreateAgentInput{Kind: "poetry"},
	})
	if err == nil {
		assert.True(t, result.IsError, "unknown kind should be a tool error")
	}
	assert.Equal(t, 0, reg.Len())
}

func TestMCPRunChain(t *testing.T) {
	session, reg := setupServerClient(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "run_chain",
		Arguments: RunChainInput{Topic: "AI"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out RunChainOutput
	decodeStructured(t, result, &out)
	require.Len(t, out.Steps, 3)
	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, []string{"research_0", "writing_1", "analysis_2"}, reg.List())
}
