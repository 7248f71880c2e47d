package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
	"github.com/m-mizutani/repoward/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

// Firestore configures storage of provisioning reports. Reports are not stored when project ID is empty.
type Firestore struct {
	projectID        string
	databaseID       string
	collectionPrefix string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID to store provisioning reports (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("REPOWARD_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("REPOWARD_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of root collection name",
			Category:    "Firestore",
			Sources:     cli.EnvVars("REPOWARD_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &x.collectionPrefix,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("projectID", x.projectID),
		slog.String("databaseID", x.databaseID),
		slog.String("collectionPrefix", x.collectionPrefix),
	)
}

// NewRepository returns nil without error when Firestore is not configured.
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.ReportRepository, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return firestore.New(ctx, x.projectID,
		firestore.WithDatabaseID(x.databaseID),
		firestore.WithCollectionPrefix(x.collectionPrefix),
	)
}
