package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

// readSecrets takes action secret values from environment variables of the same name.
func readSecrets(names []string) (map[types.SecretName]types.SecretValue, error) {
	secrets := make(map[types.SecretName]types.SecretValue, len(names))
	for _, name := range names {
		sn := types.SecretName(name)
		if err := sn.Validate(); err != nil {
			return nil, err
		}

		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			return nil, goerr.Wrap(types.ErrMissingBootstrapCredential, "secret is not set in environment", goerr.V("name", name))
		}
		secrets[sn] = types.SecretValue(value)
	}
	return secrets, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}

var statusColor = map[model.ResourceStatus]*color.Color{
	model.ResourceCreated:   color.New(color.FgGreen),
	model.ResourceSatisfied: color.New(color.FgCyan),
	model.ResourceFailed:    color.New(color.FgRed, color.Bold),
	model.ResourceSkipped:   color.New(color.FgYellow),
}

func printReport(w io.Writer, report *model.ProvisionReport) {
	header := color.New(color.Bold)
	_, _ = header.Fprintf(w, "%s/%s (run %s)\n", report.Owner, report.Repository, report.RunID)
	if report.Fatal != "" {
		_, _ = statusColor[model.ResourceFailed].Fprintf(w, "  fatal: %s\n", report.Fatal)
	}

	for _, r := range report.Resources {
		c, ok := statusColor[r.Status]
		if !ok {
			c = color.New()
		}
		_, _ = fmt.Fprintf(w, "  %-10s %s", c.Sprint(r.Status), r.Resource)
		if r.Error != "" {
			_, _ = fmt.Fprintf(w, ": %s", r.Error)
		}
		_, _ = fmt.Fprintln(w)
	}
}

func printReports(w io.Writer, reports []*model.ProvisionReport, asJSON bool) error {
	if asJSON {
		return printJSON(w, reports)
	}
	for _, report := range reports {
		printReport(w, report)
	}
	return nil
}
