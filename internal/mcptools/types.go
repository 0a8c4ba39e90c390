package mcptools

import "github.com/dusk-indust/taskagents/internal/orchestrator"

// --- MCP Tool Types for the serve-mcp command ---
// These tools expose the agent registry to MCP clients.

// CreateAgentInput is the input for the create_agent MCP tool.
type CreateAgentInput struct {
	Kind       string         `json:"kind" jsonschema:"agent kind: research, writing or analysis"`
	Parameters map[string]any `json:"parameters,omitempty" jsonschema:"agent parameters, e.g. topic for research or style for writing"`
}

// CreateAgentOutput is the result of the create_agent MCP tool.
type CreateAgentOutput struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

// ListAgentsInput is the input for the list_agents MCP tool.
type ListAgentsInput struct{}

// ListAgentsOutput is the result of the list_agents MCP tool.
type ListAgentsOutput struct {
	IDs []string `json:"ids"`
}

// AgentIDInput identifies one agent. Used by remove_agent and get_status.
type AgentIDInput struct {
	ID string `json:"id" jsonschema:"agent identifier returned by create_agent"`
}

// RemoveAgentOutput is the result of the remove_agent MCP tool.
type RemoveAgentOutput struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// ExecuteTaskInput is the input for the execute_task MCP tool.
type ExecuteTaskInput struct {
	ID    string `json:"id" jsonschema:"agent identifier returned by create_agent"`
	Input string `json:"input,omitempty" jsonschema:"optional input handed to the agent"`
}

// ExecuteTaskOutput is the result of the execute_task MCP tool.
type ExecuteTaskOutput struct {
	ID     string `json:"id"`
	Output string `json:"output"`
}

// GetStatusOutput is the result of the get_status MCP tool.
type GetStatusOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ListKindsInput is the input for the list_kinds MCP tool.
type ListKindsInput struct{}

// ListKindsOutput is the result of the list_kinds MCP tool.
type ListKindsOutput struct {
	Kinds []string `json:"kinds"`
}

// RunChainInput is the input for the run_chain MCP tool. When Steps is
// empty the research, writing, analysis demo chain for Topic is run.
type RunChainInput struct {
	Topic string              `json:"topic,omitempty" jsonschema:"research topic for the default chain"`
	Steps []orchestrator.Step `json:"steps,omitempty" jsonschema:"explicit steps; overrides topic"`
	Input string              `json:"input,omitempty" jsonschema:"input handed to the first step"`
}

// RunChainOutput is the result of the run_chain MCP tool.
type RunChainOutput = orchestrator.RunResult
