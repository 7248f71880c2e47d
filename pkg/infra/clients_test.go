package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/domain/mock"
	"github.com/m-mizutani/repoward/pkg/infra"
	"github.com/m-mizutani/repoward/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HostingProvider()).Equal(nil)
		gt.V(t, clients.SecretBackend()).Equal(nil)
		gt.V(t, clients.ReportRepository()).Equal(nil)
	})

	t.Run("WithHostingProvider option sets hosting provider", func(t *testing.T) {
		hosting := &mock.HostingProviderMock{}
		clients := infra.New(infra.WithHostingProvider(hosting))
		gt.V(t, clients.HostingProvider()).Equal(hosting)
	})

	t.Run("WithSecretBackend option sets secret backend", func(t *testing.T) {
		backend := &mock.SecretBackendMock{}
		clients := infra.New(infra.WithSecretBackend(backend))
		gt.V(t, clients.SecretBackend()).Equal(backend)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		hosting := &mock.HostingProviderMock{}
		backend := &mock.SecretBackendMock{}
		repo := memory.New()

		clients := infra.New(
			infra.WithHostingProvider(hosting),
			infra.WithSecretBackend(backend),
			infra.WithReportRepository(repo),
		)

		gt.V(t, clients.HostingProvider()).Equal(hosting)
		gt.V(t, clients.SecretBackend()).Equal(backend)
		gt.V(t, clients.ReportRepository()).Equal(repo)
	})
}
