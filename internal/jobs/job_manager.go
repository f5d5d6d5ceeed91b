package jobs

import (
	"fmt"
	"log/slog"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	agentAssignmentJob *AgentAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignPendingOrdersHandler commands.AssignPendingOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		agentAssignmentJob: NewAgentAssignmentJob(assignPendingOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.agentAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start agent assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.agentAssignmentJob.Stop()
}
