package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AgentAssignmentJob retries agent assignment for the order backlog. Orders
// stay unassigned when checkout finds no registered agent; this job drains
// them once coverage appears.
type AgentAssignmentJob struct {
	handler commands.AssignPendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAgentAssignmentJob creates a job that assigns pending orders every 30
// seconds.
func NewAgentAssignmentJob(handler commands.AssignPendingOrdersCommandHandler, logger *slog.Logger) *AgentAssignmentJob {
	return &AgentAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "agent_assignment_job"),
	}
}

// Start begins the agent assignment job.
func (j *AgentAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog or an empty agent pool is a normal outcome.
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, commands.ErrNoAgentsRegistered) {
				j.logger.ErrorContext(ctx, "Agent assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agent assignment job started (running every 30 seconds)")
	return nil
}

// Stop stops the agent assignment job.
func (j *AgentAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Agent assignment job stopped")
}
