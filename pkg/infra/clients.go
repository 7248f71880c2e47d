package infra

import (
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
)

type Clients struct {
	hosting          interfaces.HostingProvider
	secretBackend    interfaces.SecretBackend
	reportRepository interfaces.ReportRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) HostingProvider() interfaces.HostingProvider {
	return x.hosting
}
func (x *Clients) SecretBackend() interfaces.SecretBackend {
	return x.secretBackend
}
func (x *Clients) ReportRepository() interfaces.ReportRepository {
	return x.reportRepository
}

func WithHostingProvider(client interfaces.HostingProvider) Option {
	return func(x *Clients) {
		x.hosting = client
	}
}

func WithSecretBackend(client interfaces.SecretBackend) Option {
	return func(x *Clients) {
		x.secretBackend = client
	}
}

func WithReportRepository(repo interfaces.ReportRepository) Option {
	return func(x *Clients) {
		x.reportRepository = repo
	}
}
