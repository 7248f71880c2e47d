package usecase

import (
	"github.com/m-mizutani/repoward/pkg/domain/model"
)

// Plan returns provisioning graph of spec in execution order without calling any backend.
func (x *UseCase) Plan(spec *model.RepoSpec) ([]model.PlannedResource, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	g := x.newGraph()
	if err := buildGraph(g, resources(spec.Resolve()), nil); err != nil {
		return nil, err
	}

	var planned []model.PlannedResource
	for _, node := range g.Nodes() {
		deps := make([]model.ResourceID, 0, len(node.DependsOn))
		for _, dep := range node.DependsOn {
			deps = append(deps, model.ResourceID(dep))
		}
		planned = append(planned, model.PlannedResource{
			Resource:  model.ResourceID(node.ID),
			DependsOn: deps,
			Fatal:     node.Fatal,
		})
	}
	return planned, nil
}
