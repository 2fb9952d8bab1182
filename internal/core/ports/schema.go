package ports

import (
	"context"
	"time"
)

// ProvisionStatus is the overall outcome of a provisioning run.
type ProvisionStatus string

const (
	ProvisionSuccess ProvisionStatus = "success"
	ProvisionFailure ProvisionStatus = "failure"
)

// ProvisionResult reports what a provisioning run did.
type ProvisionResult struct {
	Status ProvisionStatus
	// Created lists the tables this run created, in creation order.
	Created []string
	// Existing lists the tables that were already present.
	Existing  []string
	Timestamp time.Time
	// Error describes the failure when Status is ProvisionFailure.
	Error string
}

// AllExisted reports whether a successful run found every table in place.
func (r *ProvisionResult) AllExisted() bool {
	return r.Status == ProvisionSuccess && len(r.Created) == 0
}

// SchemaProvisioner ensures every entity table exists. Only a missing database
// handle is returned as an error; all other failures are reported in the result.
type SchemaProvisioner interface {
	EnsureSchema(ctx context.Context) (*ProvisionResult, error)
}
