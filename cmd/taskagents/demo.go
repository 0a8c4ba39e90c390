package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dusk-indust/taskagents/internal/agent"
	"github.com/dusk-indust/taskagents/internal/orchestrator"
)

var resultHeadings = map[agent.Kind]string{
	agent.KindResearch: "Research Results",
	agent.KindWriting:  "Blog Post",
	agent.KindAnalysis: "Content Analysis",
}

// runDemo runs the research, writing, analysis chain, prints each result
// and then the status of every live agent.
func runDemo(ctx context.Context, a *app, flags cliFlags, stdout, stderr io.Writer) error {
	chain := orchestrator.NewChain(a.reg, a.logger)
	res, err := chain.Run(ctx, orchestrator.DemoSteps(flags.Topic), "")
	chain.Close()

	// The reporter is buffered, so the closed channel still holds this run's events.
	for ev := range chain.Progress() {
		if flags.Verbose {
			fmt.Fprintln(stderr, orchestrator.FormatProgress(ev))
		}
	}

	for _, step := range res.Steps {
		fmt.Fprintf(stdout, "\n%s:\n%s\n", resultHeadings[step.Kind], step.Output)
	}
	if err != nil {
		return fmt.Errorf("run demo: %w", err)
	}

	fmt.Fprintln(stdout, "\nActive Agents:")
	for _, id := range a.reg.List() {
		status, err := a.reg.Status(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Agent ID: %s\n%s\n\n", id, status)
	}
	return nil
}
