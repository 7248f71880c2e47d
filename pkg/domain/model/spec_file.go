package model

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// SpecFile is the on-disk declaration of repositories to provision for one owner.
type SpecFile struct {
	Owner        string     `yaml:"owner"`
	Defaults     RepoSpec   `yaml:"defaults"`
	Repositories []RepoSpec `yaml:"repositories"`
}

// ParseSpecFile decodes YAML. Unknown fields are rejected.
func ParseSpecFile(r io.Reader) (*SpecFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file SpecFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, goerr.Wrap(types.ErrValidationFailed, "spec file is empty")
		}
		return nil, goerr.Wrap(err, "failed to decode spec file")
	}

	return &file, nil
}

func LoadSpecFile(path string) (*SpecFile, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read spec file", goerr.V("path", path))
	}

	file, err := ParseSpecFile(bytes.NewReader(raw))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse spec file", goerr.V("path", path))
	}
	return file, nil
}

// Specs returns repositories with defaults applied.
func (x *SpecFile) Specs() []RepoSpec {
	specs := make([]RepoSpec, 0, len(x.Repositories))
	for _, repo := range x.Repositories {
		specs = append(specs, repo.WithDefaults(x.Defaults))
	}
	return specs
}

// Select returns specs of the named repositories in the given order. Names are case-insensitive.
// Empty only selects every repository.
func (x *SpecFile) Select(only []string) ([]RepoSpec, error) {
	specs := x.Specs()
	if len(only) == 0 {
		return specs, nil
	}

	byName := make(map[string]RepoSpec, len(specs))
	for _, spec := range specs {
		byName[strings.ToLower(spec.Name)] = spec
	}

	selected := make([]RepoSpec, 0, len(only))
	for _, name := range only {
		spec, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, goerr.Wrap(types.ErrValidationFailed, "repository is not declared in spec file", goerr.V("name", name))
		}
		selected = append(selected, spec)
	}
	return selected, nil
}

func (x *SpecFile) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is required in spec file")
	}
	if x.Defaults.Name != "" {
		return goerr.Wrap(types.ErrValidationFailed, "defaults must not have name", goerr.V("name", x.Defaults.Name))
	}

	names := make(map[string]struct{}, len(x.Repositories))
	for _, spec := range x.Specs() {
		if err := spec.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(spec.Name)
		if _, ok := names[key]; ok {
			return goerr.Wrap(types.ErrValidationFailed, "duplicated repository name", goerr.V("name", spec.Name))
		}
		names[key] = struct{}{}
	}
	return nil
}
