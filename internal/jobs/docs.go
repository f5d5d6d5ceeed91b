// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. AgentAssignmentJob - Runs every 30 seconds to assign unassigned orders
// to the least-loaded matching delivery agent. Checkout leaves an order
// unassigned when no agent is registered at all; this job picks those
// orders up as soon as coverage exists.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignPendingOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment job ignores expected business errors (empty backlog, no
// registered agents) and logs everything else.
package jobs
