package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
)

type Option func(*reportRepository)

// WithDatabaseID selects a named database. The default database is used if not set.
func WithDatabaseID(databaseID string) Option {
	return func(r *reportRepository) {
		r.databaseID = databaseID
	}
}

// WithCollectionPrefix prepends prefix to the root collection so that environments or test runs can share one database.
func WithCollectionPrefix(prefix string) Option {
	return func(r *reportRepository) {
		r.prefix = prefix
	}
}

// New creates a Firestore-based provisioning report repository
func New(ctx context.Context, projectID string, options ...Option) (interfaces.ReportRepository, error) {
	r := &reportRepository{}
	for _, opt := range options {
		opt(r)
	}

	var (
		client *firestore.Client
		err    error
	)
	if r.databaseID != "" && r.databaseID != firestore.DefaultDatabaseID {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, r.databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", r.databaseID),
		)
	}

	r.client = client
	return r, nil
}
