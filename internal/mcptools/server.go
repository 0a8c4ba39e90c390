package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewAgentMCPServer creates an MCP server with the agent registry tools
// registered.
func NewAgentMCPServer(svc *AgentService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "taskagents",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_agent",
		Description: "Create a research, writing or analysis agent with the given parameters. Returns the new agent id.",
	}, svc.CreateAgent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_agents",
		Description: "List the ids of all live agents in creation order.",
	}, svc.ListAgents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_agent",
		Description: "Remove an agent. Unknown ids are ignored.",
	}, svc.RemoveAgent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "execute_task",
		Description: "Run one task on an agent with optional input and return the completion text.",
	}, svc.ExecuteTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_status",
		Description: "Get an agent's task type, parameters and latest result.",
	}, svc.GetStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_kinds",
		Description: "List the agent kinds that can be created.",
	}, svc.ListKinds)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_chain",
		Description: "Run agents in sequence, feeding each one the previous output. Defaults to research, writing, analysis on a topic.",
	}, svc.RunChain)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
