package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/taskagents/internal/mcptools"
)

func runServeMCP(ctx context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("serving MCP on stdio", "model", a.cfg.Model)
	server := mcptools.NewAgentMCPServer(mcptools.NewAgentService(a.reg, a.logger))
	return mcptools.RunStdio(ctx, server)
}
