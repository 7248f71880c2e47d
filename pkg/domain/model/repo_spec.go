package model

import (
	"regexp"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

// RepoSpec is a declarative intent for one repository and its governance policy. Optional fields are pointers: nil means "use DefaultRepoSettings".
type RepoSpec struct {
	Name        string            `yaml:"name" json:"name"`
	Description *string           `yaml:"description,omitempty" json:"description,omitempty"`
	Visibility  *types.Visibility `yaml:"visibility,omitempty" json:"visibility,omitempty"`

	HasIssues    *bool `yaml:"has_issues,omitempty" json:"has_issues,omitempty"`
	HasProjects  *bool `yaml:"has_projects,omitempty" json:"has_projects,omitempty"`
	HasWiki      *bool `yaml:"has_wiki,omitempty" json:"has_wiki,omitempty"`
	HasDownloads *bool `yaml:"has_downloads,omitempty" json:"has_downloads,omitempty"`
	IsTemplate   *bool `yaml:"is_template,omitempty" json:"is_template,omitempty"`

	AllowMergeCommit    *bool `yaml:"allow_merge_commit,omitempty" json:"allow_merge_commit,omitempty"`
	AllowRebaseMerge    *bool `yaml:"allow_rebase_merge,omitempty" json:"allow_rebase_merge,omitempty"`
	AllowSquashMerge    *bool `yaml:"allow_squash_merge,omitempty" json:"allow_squash_merge,omitempty"`
	AllowAutoMerge      *bool `yaml:"allow_auto_merge,omitempty" json:"allow_auto_merge,omitempty"`
	AutoInit            *bool `yaml:"auto_init,omitempty" json:"auto_init,omitempty"`
	DeleteBranchOnMerge *bool `yaml:"delete_branch_on_merge,omitempty" json:"delete_branch_on_merge,omitempty"`

	GitignoreTemplate *string           `yaml:"gitignore_template,omitempty" json:"gitignore_template,omitempty"`
	LicenseTemplate   *string           `yaml:"license_template,omitempty" json:"license_template,omitempty"`
	HomepageURL       *string           `yaml:"homepage_url,omitempty" json:"homepage_url,omitempty"`
	Topics            []string          `yaml:"topics,omitempty" json:"topics,omitempty"`
	DefaultBranch     *types.BranchName `yaml:"default_branch,omitempty" json:"default_branch,omitempty"`

	VulnerabilityAlerts  *bool `yaml:"vulnerability_alerts,omitempty" json:"vulnerability_alerts,omitempty"`
	ProtectDefaultBranch *bool `yaml:"protect_default_branch,omitempty" json:"protect_default_branch,omitempty"`
	InjectCredentials    *bool `yaml:"inject_credentials,omitempty" json:"inject_credentials,omitempty"`

	Collaborators map[string]types.Permission `yaml:"collaborators,omitempty" json:"collaborators,omitempty"`

	// ActionSecrets never comes from a spec file.
	ActionSecrets map[types.SecretName]types.SecretValue `yaml:"-" json:"-"`
}

// RepoSettings is RepoSpec with every default applied. Provisioning reads only this.
type RepoSettings struct {
	Name                 string
	Description          string
	Visibility           types.Visibility
	HasIssues            bool
	HasProjects          bool
	HasWiki              bool
	HasDownloads         bool
	IsTemplate           bool
	AllowMergeCommit     bool
	AllowRebaseMerge     bool
	AllowSquashMerge     bool
	AllowAutoMerge       bool
	AutoInit             bool
	DeleteBranchOnMerge  bool
	GitignoreTemplate    string
	LicenseTemplate      string
	HomepageURL          string
	Topics               []string
	DefaultBranch        types.BranchName
	VulnerabilityAlerts  bool
	ProtectDefaultBranch bool
	InjectCredentials    bool
	Collaborators        map[string]types.Permission
	ActionSecrets        map[types.SecretName]types.SecretValue
}

// DefaultRepoSettings is the default table for every optional RepoSpec field.
var DefaultRepoSettings = RepoSettings{
	Description:          "",
	Visibility:           types.VisibilityPublic,
	HasIssues:            true,
	HasProjects:          true,
	HasWiki:              true,
	HasDownloads:         true,
	IsTemplate:           false,
	AllowMergeCommit:     false,
	AllowRebaseMerge:     false,
	AllowSquashMerge:     true,
	AllowAutoMerge:       false,
	AutoInit:             true,
	DeleteBranchOnMerge:  true,
	GitignoreTemplate:    "Node",
	LicenseTemplate:      "mit",
	HomepageURL:          "https://github.com",
	DefaultBranch:        "main",
	VulnerabilityAlerts:  true,
	ProtectDefaultBranch: false,
	InjectCredentials:    true,
}

func or[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

func orPtr[T any](v, def *T) *T {
	if v != nil {
		return v
	}
	return def
}

// Resolve applies DefaultRepoSettings to unset fields. Resolve does not validate; call Validate first.
func (x *RepoSpec) Resolve() *RepoSettings {
	d := DefaultRepoSettings

	s := &RepoSettings{
		Name:                 x.Name,
		Description:          or(x.Description, d.Description),
		Visibility:           or(x.Visibility, d.Visibility),
		HasIssues:            or(x.HasIssues, d.HasIssues),
		HasProjects:          or(x.HasProjects, d.HasProjects),
		HasWiki:              or(x.HasWiki, d.HasWiki),
		HasDownloads:         or(x.HasDownloads, d.HasDownloads),
		IsTemplate:           or(x.IsTemplate, d.IsTemplate),
		AllowMergeCommit:     or(x.AllowMergeCommit, d.AllowMergeCommit),
		AllowRebaseMerge:     or(x.AllowRebaseMerge, d.AllowRebaseMerge),
		AllowSquashMerge:     or(x.AllowSquashMerge, d.AllowSquashMerge),
		AllowAutoMerge:       or(x.AllowAutoMerge, d.AllowAutoMerge),
		AutoInit:             or(x.AutoInit, d.AutoInit),
		DeleteBranchOnMerge:  or(x.DeleteBranchOnMerge, d.DeleteBranchOnMerge),
		GitignoreTemplate:    or(x.GitignoreTemplate, d.GitignoreTemplate),
		LicenseTemplate:      or(x.LicenseTemplate, d.LicenseTemplate),
		HomepageURL:          or(x.HomepageURL, d.HomepageURL),
		Topics:               normalizeTopics(x.Topics),
		DefaultBranch:        or(x.DefaultBranch, d.DefaultBranch),
		VulnerabilityAlerts:  or(x.VulnerabilityAlerts, d.VulnerabilityAlerts),
		ProtectDefaultBranch: or(x.ProtectDefaultBranch, d.ProtectDefaultBranch),
		InjectCredentials:    or(x.InjectCredentials, d.InjectCredentials),
		Collaborators:        make(map[string]types.Permission, len(x.Collaborators)),
		ActionSecrets:        make(map[types.SecretName]types.SecretValue, len(x.ActionSecrets)),
	}

	for login, perm := range x.Collaborators {
		s.Collaborators[login] = perm
	}
	for name, value := range x.ActionSecrets {
		s.ActionSecrets[name] = value
	}

	return s
}

// WithDefaults returns a copy of x whose unset fields are taken from base. Maps are merged and x wins on conflict.
func (x RepoSpec) WithDefaults(base RepoSpec) RepoSpec {
	merged := x
	merged.Description = orPtr(x.Description, base.Description)
	merged.Visibility = orPtr(x.Visibility, base.Visibility)
	merged.HasIssues = orPtr(x.HasIssues, base.HasIssues)
	merged.HasProjects = orPtr(x.HasProjects, base.HasProjects)
	merged.HasWiki = orPtr(x.HasWiki, base.HasWiki)
	merged.HasDownloads = orPtr(x.HasDownloads, base.HasDownloads)
	merged.IsTemplate = orPtr(x.IsTemplate, base.IsTemplate)
	merged.AllowMergeCommit = orPtr(x.AllowMergeCommit, base.AllowMergeCommit)
	merged.AllowRebaseMerge = orPtr(x.AllowRebaseMerge, base.AllowRebaseMerge)
	merged.AllowSquashMerge = orPtr(x.AllowSquashMerge, base.AllowSquashMerge)
	merged.AllowAutoMerge = orPtr(x.AllowAutoMerge, base.AllowAutoMerge)
	merged.AutoInit = orPtr(x.AutoInit, base.AutoInit)
	merged.DeleteBranchOnMerge = orPtr(x.DeleteBranchOnMerge, base.DeleteBranchOnMerge)
	merged.GitignoreTemplate = orPtr(x.GitignoreTemplate, base.GitignoreTemplate)
	merged.LicenseTemplate = orPtr(x.LicenseTemplate, base.LicenseTemplate)
	merged.HomepageURL = orPtr(x.HomepageURL, base.HomepageURL)
	merged.DefaultBranch = orPtr(x.DefaultBranch, base.DefaultBranch)
	merged.VulnerabilityAlerts = orPtr(x.VulnerabilityAlerts, base.VulnerabilityAlerts)
	merged.ProtectDefaultBranch = orPtr(x.ProtectDefaultBranch, base.ProtectDefaultBranch)
	merged.InjectCredentials = orPtr(x.InjectCredentials, base.InjectCredentials)

	if x.Topics == nil {
		merged.Topics = append([]string(nil), base.Topics...)
	}

	merged.Collaborators = make(map[string]types.Permission, len(base.Collaborators)+len(x.Collaborators))
	for login, perm := range base.Collaborators {
		merged.Collaborators[login] = perm
	}
	for login, perm := range x.Collaborators {
		merged.Collaborators[login] = perm
	}

	merged.ActionSecrets = make(map[types.SecretName]types.SecretValue, len(base.ActionSecrets)+len(x.ActionSecrets))
	for name, value := range base.ActionSecrets {
		merged.ActionSecrets[name] = value
	}
	for name, value := range x.ActionSecrets {
		merged.ActionSecrets[name] = value
	}

	return merged
}

var (
	ptnRepoName   = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)
	ptnLogin      = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,38})(?:\[bot\])?$`)
	ptnBranchName = regexp.MustCompile(`^[^\s~^:?*\[\\]+$`)
)

// Validate checks RepoSpec before provisioning. Error values carry names and logins only, never secret values.
func (x *RepoSpec) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is required")
	}
	if !ptnRepoName.MatchString(x.Name) || x.Name == "." || x.Name == ".." {
		return goerr.Wrap(types.ErrValidationFailed, "invalid repository name", goerr.V("name", x.Name))
	}

	if x.Visibility != nil && !x.Visibility.Valid() {
		return goerr.Wrap(types.ErrValidationFailed, "invalid visibility",
			goerr.V("name", x.Name),
			goerr.V("visibility", *x.Visibility),
		)
	}

	if x.DefaultBranch != nil {
		b := string(*x.DefaultBranch)
		if !ptnBranchName.MatchString(b) || strings.HasPrefix(b, "/") || strings.HasSuffix(b, "/") || strings.Contains(b, "..") {
			return goerr.Wrap(types.ErrValidationFailed, "invalid default branch name",
				goerr.V("name", x.Name),
				goerr.V("branch", b),
			)
		}
	}

	secretKeys := make(map[string]types.SecretName, len(x.ActionSecrets))
	for name := range x.ActionSecrets {
		if err := name.Validate(); err != nil {
			return goerr.Wrap(err, "invalid action secret", goerr.V("name", x.Name))
		}
		if prev, ok := secretKeys[name.Key()]; ok {
			return goerr.Wrap(types.ErrValidationFailed, "duplicated action secret name",
				goerr.V("name", x.Name),
				goerr.V("secret", name),
				goerr.V("conflict", prev),
			)
		}
		secretKeys[name.Key()] = name
	}

	logins := make(map[string]string, len(x.Collaborators))
	for login, perm := range x.Collaborators {
		if !ptnLogin.MatchString(login) {
			return goerr.Wrap(types.ErrValidationFailed, "invalid collaborator login",
				goerr.V("name", x.Name),
				goerr.V("login", login),
			)
		}
		if !perm.Valid() {
			return goerr.Wrap(types.ErrValidationFailed, "invalid collaborator permission",
				goerr.V("name", x.Name),
				goerr.V("login", login),
				goerr.V("permission", perm),
			)
		}
		key := strings.ToLower(login)
		if prev, ok := logins[key]; ok {
			return goerr.Wrap(types.ErrValidationFailed, "duplicated collaborator login",
				goerr.V("name", x.Name),
				goerr.V("login", login),
				goerr.V("conflict", prev),
			)
		}
		logins[key] = login
	}

	return nil
}

// normalizeTopics lower-cases, trims and deduplicates topics. Result is sorted.
func normalizeTopics(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SortedCollaborators returns collaborator logins in stable order.
func (x *RepoSettings) SortedCollaborators() []string {
	logins := make([]string, 0, len(x.Collaborators))
	for login := range x.Collaborators {
		logins = append(logins, login)
	}
	sort.Strings(logins)
	return logins
}

// SortedSecretNames returns action secret names in stable order.
func (x *RepoSettings) SortedSecretNames() []types.SecretName {
	names := make([]types.SecretName, 0, len(x.ActionSecrets))
	for name := range x.ActionSecrets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
