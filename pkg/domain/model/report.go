package model

import (
	"time"

	"github.com/m-mizutani/repoward/pkg/domain/types"
)

// ResourceID names one node of the provisioning graph, e.g. "actions-secret/TOKEN".
type ResourceID string

const (
	ResourceRepository          ResourceID = "repository"
	ResourceBranchDefault       ResourceID = "branch-default"
	ResourceTopics              ResourceID = "topics"
	ResourceVulnerabilityAlerts ResourceID = "vulnerability-alerts"
)

const ProductionEnvironment = "production"

func ResourceBranch(branch types.BranchName) ResourceID {
	return ResourceID("branch/" + string(branch))
}

func ResourceBranchProtection(pattern string) ResourceID {
	return ResourceID("branch-protection/" + pattern)
}

func ResourceActionSecret(name types.SecretName) ResourceID {
	return ResourceID("actions-secret/" + string(name))
}

func ResourceEnvironment(name string) ResourceID {
	return ResourceID("environment/" + name)
}

func ResourceCollaborator(login string) ResourceID {
	return ResourceID("collaborator/" + login)
}

type ResourceStatus string

const (
	ResourceCreated   ResourceStatus = "created"
	ResourceSatisfied ResourceStatus = "satisfied"
	ResourceFailed    ResourceStatus = "failed"
	ResourceSkipped   ResourceStatus = "skipped"
)

// ResourceResult is an outcome of one graph node. Error holds a message only.
type ResourceResult struct {
	Resource ResourceID     `json:"resource" firestore:"resource"`
	Status   ResourceStatus `json:"status" firestore:"status"`
	Error    string         `json:"error,omitempty" firestore:"error,omitempty"`
}

// ProvisionReport describes what one provisioning run did to one repository.
type ProvisionReport struct {
	RunID      types.RunID      `json:"run_id" firestore:"run_id"`
	Owner      string           `json:"owner" firestore:"owner"`
	Repository string           `json:"repository" firestore:"repository"`
	NodeID     string           `json:"node_id,omitempty" firestore:"node_id,omitempty"`
	Fatal      string           `json:"fatal,omitempty" firestore:"fatal,omitempty"`
	StartedAt  time.Time        `json:"started_at" firestore:"started_at"`
	FinishedAt time.Time        `json:"finished_at" firestore:"finished_at"`
	Resources  []ResourceResult `json:"resources" firestore:"resources"`

	Handle *RepositoryHandle `json:"-" firestore:"-"`
}

// Failed returns resources which failed or were skipped due to a failed dependency.
func (x *ProvisionReport) Failed() []ResourceResult {
	var failed []ResourceResult
	for _, r := range x.Resources {
		if r.Status == ResourceFailed || r.Status == ResourceSkipped {
			failed = append(failed, r)
		}
	}
	return failed
}

// Succeeded reports whether repository was created and every sub-resource converged.
func (x *ProvisionReport) Succeeded() bool {
	return x.Fatal == "" && len(x.Failed()) == 0
}

// Result finds result of the resource. ok is false if the resource was not planned.
func (x *ProvisionReport) Result(id ResourceID) (ResourceResult, bool) {
	for _, r := range x.Resources {
		if r.Resource == id {
			return r, true
		}
	}
	return ResourceResult{}, false
}
