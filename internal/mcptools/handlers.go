package mcptools

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dusk-indust/taskagents/internal/agent"
	"github.com/dusk-indust/taskagents/internal/orchestrator"
)

// AgentService handles MCP tool calls by delegating to an agent Registry.
type AgentService struct {
	reg    *agent.Registry
	logger *slog.Logger
}

// NewAgentService creates an AgentService backed by reg.
func NewAgentService(reg *agent.Registry, logger *slog.Logger) *AgentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgentService{reg: reg, logger: logger}
}

// CreateAgent creates and registers an agent.
func (s *AgentService) CreateAgent(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CreateAgentInput,
) (*mcp.CallToolResult, CreateAgentOutput, error) {
	id, ag, err := s.reg.Create(input.Kind, input.Parameters)
	if err != nil {
		return nil, CreateAgentOutput{}, err
	}
	return nil, CreateAgentOutput{ID: id, Kind: string(ag.Kind())}, nil
}

// ListAgents returns the ids of all live agents in creation order.
func (s *AgentService) ListAgents(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListAgentsInput,
) (*mcp.CallToolResult, ListAgentsOutput, error) {
	ids := s.reg.List()
	if ids == nil {
		ids = []string{}
	}
	return nil, ListAgentsOutput{IDs: ids}, nil
}

// RemoveAgent removes an agent. Removing an unknown id succeeds with
// Removed set to false.
func (s *AgentService) RemoveAgent(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AgentIDInput,
) (*mcp.CallToolResult, RemoveAgentOutput, error) {
	_, existed := s.reg.Get(input.ID)
	s.reg.Remove(input.ID)
	return nil, RemoveAgentOutput{ID: input.ID, Removed: existed}, nil
}

// ExecuteTask runs a task on an agent.
func (s *AgentService) ExecuteTask(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExecuteTaskInput,
) (*mcp.CallToolResult, ExecuteTaskOutput, error) {
	out, err := s.reg.Execute(ctx, input.ID, input.Input)
	if err != nil {
		return nil, ExecuteTaskOutput{}, err
	}
	return nil, ExecuteTaskOutput{ID: input.ID, Output: out}, nil
}

// GetStatus reports an agent's task context summary.
func (s *AgentService) GetStatus(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AgentIDInput,
) (*mcp.CallToolResult, GetStatusOutput, error) {
	status, err := s.reg.Status(input.ID)
	if err != nil {
		return nil, GetStatusOutput{}, err
	}
	return nil, GetStatusOutput{ID: input.ID, Status: status}, nil
}

// ListKinds returns the agent kinds that can be created.
func (s *AgentService) ListKinds(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListKindsInput,
) (*mcp.CallToolResult, ListKindsOutput, error) {
	var kinds []string
	for _, k := range s.reg.Kinds() {
		kinds = append(kinds, string(k))
	}
	return nil, ListKindsOutput{Kinds: kinds}, nil
}

// RunChain runs a chain of agents, each fed the previous agent's output.
func (s *AgentService) RunChain(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunChainInput,
) (*mcp.CallToolResult, RunChainOutput, error) {
	steps := input.Steps
	if len(steps) == 0 {
		topic := input.Topic
		if topic == "" {
			topic = "general topic"
		}
		steps = orchestrator.DemoSteps(topic)
	}

	chain := orchestrator.NewChain(s.reg, s.logger)
	defer chain.Close()

	res, err := chain.Run(ctx, steps, input.Input)
	if err != nil {
		return nil, RunChainOutput{}, err
	}
	return nil, *res, nil
}
