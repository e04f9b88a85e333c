package reporting

import (
	"context"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter_mock.go -package=mocks

// Reporter define os relatórios do catálogo do Google Ads
type Reporter interface {
	// GetCampaigns lista as campanhas da conta (id, nome, status e tipo de canal)
	GetCampaigns(ctx context.Context, customerID string) (*domain.ReportTable, error)
	// GetAdGroups lista os grupos de anúncios, opcionalmente filtrados por campanha
	GetAdGroups(ctx context.Context, customerID string, filter *domain.Filter) (*domain.ReportTable, error)
	// GetAds lista os anúncios, opcionalmente filtrados por campanha
	GetAds(ctx context.Context, customerID string, filter *domain.Filter) (*domain.ReportTable, error)

	GetCampaignReport(ctx context.Context, customerID, date string) (*domain.ReportTable, error)
	GetAdGroupReport(ctx context.Context, customerID, date string) (*domain.ReportTable, error)
	GetAdsReport(ctx context.Context, customerID, date string) (*domain.ReportTable, error)
}

// DailyReporter combina o catálogo com os snapshots diários armazenados
type DailyReporter interface {
	Reporter

	// GetDailyReport devolve o snapshot armazenado ou busca o relatório na API e o armazena
	GetDailyReport(ctx context.Context, customerID string, reportType domain.ReportType, date string) (*domain.ReportTable, error)
	// ListDailyReports lista os snapshots armazenados no intervalo de datas
	ListDailyReports(ctx context.Context, customerID string, reportType domain.ReportType, start, end string) ([]*domain.ReportSnapshot, error)
	// RefreshDailyReport sempre busca o relatório na API e atualiza o snapshot
	RefreshDailyReport(ctx context.Context, customerID string, reportType domain.ReportType, date string) (*domain.ReportSnapshot, error)
}
