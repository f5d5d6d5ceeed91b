// Package agent contains the delivery-agent aggregate.
//
// Agents are registered by an admin with a service area (city) and an
// optional set of service pincodes. The assignment engine uses this coverage
// to match agents to order destinations; the agent's workload is derived
// from the order store, never stored here.
package agent
