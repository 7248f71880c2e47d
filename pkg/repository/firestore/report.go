package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionRepo   = "repo"
	collectionReport = "report"
	defaultListLimit = 20
)

type reportRepository struct {
	client     *firestore.Client
	databaseID string
	prefix     string
}

// ToFirestoreID converts owner and repo to a Firestore-safe document ID
// Uses colon (:) as separator since GitHub owner names cannot contain colons
func ToFirestoreID(owner, repo string) (string, error) {
	if owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return owner + ":" + repo, nil
}

// reports are stored as repo/{owner:repo}/report/{runID}
func (r *reportRepository) reports(owner, repo string) (*firestore.CollectionRef, error) {
	firestoreID, err := ToFirestoreID(owner, repo)
	if err != nil {
		return nil, err
	}
	return r.client.Collection(r.prefix + collectionRepo).Doc(firestoreID).Collection(collectionReport), nil
}

func (r *reportRepository) PutReport(ctx context.Context, report *model.ProvisionReport) error {
	if report.RunID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "run ID is empty")
	}

	col, err := r.reports(report.Owner, report.Repository)
	if err != nil {
		return err
	}

	if _, err := col.Doc(report.RunID.String()).Set(ctx, report); err != nil {
		return goerr.Wrap(err, "failed to put report",
			goerr.V("runID", report.RunID),
			goerr.V("owner", report.Owner),
			goerr.V("repository", report.Repository),
		)
	}

	return nil
}

func (r *reportRepository) GetReport(ctx context.Context, owner, repo string, runID types.RunID) (*model.ProvisionReport, error) {
	col, err := r.reports(owner, repo)
	if err != nil {
		return nil, err
	}

	snap, err := col.Doc(runID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "report not found",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("runID", runID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get report",
			goerr.V("runID", runID),
		)
	}

	var report model.ProvisionReport
	if err := snap.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report",
			goerr.V("runID", runID),
		)
	}

	return &report, nil
}

func (r *reportRepository) ListReports(ctx context.Context, owner, repo string, limit int) ([]*model.ProvisionReport, error) {
	col, err := r.reports(owner, repo)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	iter := col.OrderBy("started_at", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var reports []*model.ProvisionReport
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reports",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
			)
		}

		var report model.ProvisionReport
		if err := doc.DataTo(&report); err != nil {
			return nil, goerr.Wrap(err, "failed to decode report",
				goerr.V("docID", doc.Ref.ID),
			)
		}
		reports = append(reports, &report)
	}

	return reports, nil
}
