package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/infra"
	"github.com/m-mizutani/repoward/pkg/usecase"
)

func TestNew(t *testing.T) {
	var _ interfaces.UseCase = usecase.New(infra.New())

	t.Run("concurrency of one runs resources sequentially", func(t *testing.T) {
		log := &callLog{}
		uc := usecase.New(
			infra.New(infra.WithHostingProvider(newHostingMock(log, "main"))),
			usecase.WithConcurrency(1),
			usecase.WithTaskTimeout(time.Second),
		)

		report, err := uc.Provision(context.Background(), &model.ProvisionInput{
			Owner: "arpanrec",
			Spec:  model.RepoSpec{Name: "dotfiles"},
		})
		gt.NoError(t, err)
		gt.True(t, report.Succeeded())
		gt.V(t, log.index("CreateRepository:arpanrec/dotfiles")).Equal(0)
	})
}
