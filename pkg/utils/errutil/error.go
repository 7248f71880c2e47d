package errutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
)

// HandleError logs err and reports it to Sentry. goerr values become Sentry extras and the run ID
// of ctx becomes a tag, so one repository's run can be traced across logs and Sentry.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("message", msg)
		if runID, ok := logging.LookupRunID(ctx); ok {
			scope.SetTag("run_id", runID.String())
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), fmt.Sprintf("%v", v))
			}
		}
	})
	evID := hub.CaptureException(err)

	attrs := []any{slog.Any("error", err)}
	if evID != nil {
		attrs = append(attrs, slog.String("sentry.EventID", string(*evID)))
	}
	logging.From(ctx).Error(msg, attrs...)
}
