package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const dateColumn = "date"

// Service implementa Reporter e DailyReporter sobre o searchStream do Google Ads
type Service struct {
	client             adsclient.Client
	catalog            catalog
	requestTimeout     time.Duration
	snapshotRepository repository.ReportSnapshotRepository
	useCache           bool
}

// NewService cria o serviço de relatórios resolvendo os enums usados pelo catálogo
func NewService(cfg *config.Config, client adsclient.Client, enums *adsdomain.EnumRegistry) (*Service, error) {
	campaignStatus, err := enums.GetType(adsdomain.CampaignStatusEnum)
	if err != nil {
		return nil, err
	}

	channelType, err := enums.GetType(adsdomain.AdvertisingChannelTypeEnum)
	if err != nil {
		return nil, err
	}

	return &Service{
		client:         client,
		catalog:        newCatalog(campaignStatus.Decode, channelType.Decode),
		requestTimeout: cfg.GoogleAds.RequestTimeout,
		useCache:       false,
	}, nil
}

// WithCache habilita o armazenamento dos relatórios diários
func (s *Service) WithCache(snapshotRepo repository.ReportSnapshotRepository) *Service {
	s.snapshotRepository = snapshotRepo
	s.useCache = snapshotRepo != nil
	return s
}

func (s *Service) GetCampaigns(ctx context.Context, customerID string) (*domain.ReportTable, error) {
	return s.run(ctx, s.catalog.campaigns, customerID, nil, "")
}

func (s *Service) GetAdGroups(ctx context.Context, customerID string, filter *domain.Filter) (*domain.ReportTable, error) {
	return s.run(ctx, s.catalog.adGroups, customerID, filter, "")
}

func (s *Service) GetAds(ctx context.Context, customerID string, filter *domain.Filter) (*domain.ReportTable, error) {
	return s.run(ctx, s.catalog.ads, customerID, filter, "")
}

func (s *Service) GetCampaignReport(ctx context.Context, customerID, date string) (*domain.ReportTable, error) {
	return s.run(ctx, s.catalog.campaignReport, customerID, nil, date)
}

func (s *Service) GetAdGroupReport(ctx context.Context, customerID, date string) (*domain.ReportTable, error) {
	return s.run(ctx, s.catalog.adGroupReport, customerID, nil, date)
}

func (s *Service) GetAdsReport(ctx context.Context, customerID, date string) (*domain.ReportTable, error) {
	return s.run(ctx, s.catalog.adsReport, customerID, nil, date)
}

// GetDailyReport usa o snapshot armazenado quando existir
func (s *Service) GetDailyReport(ctx context.Context, customerID string, reportType domain.ReportType, date string) (*domain.ReportTable, error) {
	plan, err := s.dailyPlan(reportType)
	if err != nil {
		return nil, err
	}

	if !s.useCache {
		return s.run(ctx, plan, customerID, nil, date)
	}

	normalizedID, err := NormalizeCustomerID(customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}
	day, err := ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}

	snapshot, err := s.snapshotRepository.GetByCustomerTypeDate(ctx, normalizedID, reportType, day)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": normalizedID,
			"report_type": reportType,
			"date":        date,
			"error":       err.Error(),
		}).Warn("Erro ao buscar snapshot do relatório, consultando a API")
	} else if snapshot != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": normalizedID,
			"report_type": reportType,
			"date":        date,
			"rows":        snapshot.Table.Len(),
		}).Debug("Relatório obtido do banco de dados")
		return snapshot.Table, nil
	}

	table, err := s.run(ctx, plan, normalizedID, nil, date)
	if err != nil {
		return nil, err
	}

	// Falha ao armazenar não invalida o relatório obtido
	if _, err := s.store(ctx, normalizedID, reportType, day, table); err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": normalizedID,
			"report_type": reportType,
			"date":        date,
			"error":       err.Error(),
		}).Error("Erro ao salvar snapshot do relatório")
	}

	return table, nil
}

// RefreshDailyReport busca o relatório na API e substitui o snapshot do dia
func (s *Service) RefreshDailyReport(ctx context.Context, customerID string, reportType domain.ReportType, date string) (*domain.ReportSnapshot, error) {
	plan, err := s.dailyPlan(reportType)
	if err != nil {
		return nil, err
	}

	if !s.useCache {
		return nil, fmt.Errorf("%s: armazenamento de relatórios não configurado", plan.name)
	}

	normalizedID, err := NormalizeCustomerID(customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}
	day, err := ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}

	table, err := s.run(ctx, plan, normalizedID, nil, date)
	if err != nil {
		return nil, err
	}

	return s.store(ctx, normalizedID, reportType, day, table)
}

// ListDailyReports devolve os snapshots armazenados entre start e end, inclusive
func (s *Service) ListDailyReports(ctx context.Context, customerID string, reportType domain.ReportType, start, end string) ([]*domain.ReportSnapshot, error) {
	plan, err := s.dailyPlan(reportType)
	if err != nil {
		return nil, err
	}

	normalizedID, err := NormalizeCustomerID(customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}
	startDate, err := ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%s: %w", plan.name, queryError(fmt.Errorf("intervalo inválido: %s é anterior a %s", end, start)))
	}

	if !s.useCache {
		return nil, fmt.Errorf("%s: armazenamento de relatórios não configurado", plan.name)
	}

	snapshots, err := s.snapshotRepository.ListByCustomer(ctx, normalizedID, reportType, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": normalizedID,
		"report_type": reportType,
		"start":       start,
		"end":         end,
		"snapshots":   len(snapshots),
	}).Debug("Snapshots de relatório listados")

	return snapshots, nil
}

func (s *Service) store(ctx context.Context, customerID string, reportType domain.ReportType, day time.Time, table *domain.ReportTable) (*domain.ReportSnapshot, error) {
	snapshot := &domain.ReportSnapshot{
		CustomerID: customerID,
		ReportType: reportType,
		Date:       day,
		RowCount:   table.Len(),
		Table:      table,
	}

	if err := s.snapshotRepository.SaveOrUpdate(ctx, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *Service) dailyPlan(reportType domain.ReportType) (reportPlan, error) {
	switch reportType {
	case domain.ReportTypeCampaigns:
		return s.catalog.campaignReport, nil
	case domain.ReportTypeAdGroups:
		return s.catalog.adGroupReport, nil
	case domain.ReportTypeAds:
		return s.catalog.adsReport, nil
	default:
		return reportPlan{}, queryError(fmt.Errorf("tipo de relatório inválido: %q", reportType))
	}
}

// run valida a entrada, executa a consulta e extrai a tabela.
// A validação acontece antes de qualquer chamada à API.
func (s *Service) run(ctx context.Context, plan reportPlan, customerID string, filter *domain.Filter, date string) (*domain.ReportTable, error) {
	normalizedID, err := NormalizeCustomerID(customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}

	query, err := plan.query(filter, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}

	var constants []domain.ConstantColumn
	if plan.daily {
		constants = append(constants, domain.ConstantColumn{Column: dateColumn, Value: date})
	}

	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	logger := logrus.WithFields(logrus.Fields{
		"report":      plan.name,
		"customer_id": normalizedID,
	})
	logger.WithField("query", query).Debug("Executando consulta GAQL")

	startTime := time.Now()

	stream, err := s.client.SearchStream(ctx, normalizedID, query)
	if err != nil {
		logger.WithError(err).Error("Erro ao consultar a API do Google Ads")
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}
	defer stream.Close()

	table, err := Extract(stream, plan.specs(), constants...)
	if err != nil {
		logger.WithError(err).Error("Erro ao extrair o relatório")
		return nil, fmt.Errorf("%s: %w", plan.name, err)
	}

	logger.WithFields(logrus.Fields{
		"rows":     table.Len(),
		"duration": time.Since(startTime).String(),
	}).Info("Relatório extraído com sucesso")

	return table, nil
}

// query monta a consulta GAQL do relatório com o filtro e a data informados
func (p reportPlan) query(filter *domain.Filter, date string) (string, error) {
	builder := Select(p.selectFields()...).From(p.resource)

	if !filter.IsEmpty() {
		field, ok := p.filterField(filter)
		if !ok {
			return "", queryError(fmt.Errorf("filtro não suportado: %q", filter.Field))
		}
		id, err := ParseID(filter.Value)
		if err != nil {
			return "", err
		}
		builder = builder.WhereEq(field, id)
	}

	if p.daily {
		if _, err := ParseDate(date); err != nil {
			return "", err
		}
		builder = builder.
			WhereDateBetween(Date(date), Date(date)).
			WhereGt("metrics.impressions", 0)
	}

	if len(p.orderBy) > 0 {
		builder = builder.OrderBy(p.orderBy...)
	}

	return builder.ToGAQL()
}
