package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
)

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
	CustomerIDs         []string
}

// ReportSyncService gerencia o agendamento e execução da sincronização dos relatórios diários
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	reporter            reporting.DailyReporter
	snapshotRepo        repository.ReportSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    int
	now                 func() time.Time
	sleep               func(time.Duration)
}

// NewReportSyncService cria uma nova instância do serviço de sincronização de relatórios
func NewReportSyncService(
	reporter reporting.DailyReporter,
	snapshotRepo repository.ReportSnapshotRepository,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule:        appConfig.ReportSync.CronSchedule,
		LookbackDays:        appConfig.ReportSync.LookbackDays,
		RequestDelaySeconds: appConfig.ReportSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.ReportSync.MaxConcurrentJobs,
		RetentionDays:       appConfig.ReportSync.RetentionDays,
		SyncEnabled:         appConfig.ReportSync.Enabled,
		CustomerIDs:         appConfig.ReportSync.CustomerIDs,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
		"customers":             len(syncConfig.CustomerIDs),
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllReports sincroniza os relatórios diários de todas as contas configuradas
func (s *ReportSyncService) syncAllReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if len(s.config.CustomerIDs) == 0 {
		logrus.Info("Nenhuma conta configurada para sincronização de relatórios")
		return
	}

	dates := s.getDatesToProcess()
	if len(dates) == 0 {
		logrus.Info("Nenhuma data para sincronizar relatórios")
		return
	}

	logrus.WithFields(logrus.Fields{
		"days":       len(dates),
		"start_date": dates[0],
		"end_date":   dates[len(dates)-1],
	}).Info("Período para sincronização de relatórios")

	failures := s.processCustomers(ctx, dates)

	s.cleanupOldSnapshots(ctx)

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"customers": len(s.config.CustomerIDs),
		"days":      len(dates),
		"failures":  failures,
	}).Info("Sincronização de relatórios concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncFailures = failures
	s.syncMutex.Unlock()
}

// getDatesToProcess retorna as datas da janela, da mais antiga até ontem
func (s *ReportSyncService) getDatesToProcess() []string {
	dates := make([]string, 0, s.config.LookbackDays)
	for i := s.config.LookbackDays; i >= 1; i-- {
		dates = append(dates, s.now().AddDate(0, 0, -i).Format(time.DateOnly))
	}
	return dates
}

// processCustomers processa as contas com concorrência limitada e retorna o total de falhas
func (s *ReportSyncService) processCustomers(ctx context.Context, dates []string) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for _, customerID := range s.config.CustomerIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(customerID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			n := s.processCustomerForAllDates(ctx, customerID, dates)

			mu.Lock()
			failures += n
			mu.Unlock()
		}(customerID)
	}

	wg.Wait()
	return failures
}

// processCustomerForAllDates sincroniza os três relatórios diários de uma conta em cada data
func (s *ReportSyncService) processCustomerForAllDates(ctx context.Context, customerID string, dates []string) int {
	failures := 0

	for _, date := range dates {
		for _, reportType := range domain.DailyReportTypes {
			if ctx.Err() != nil {
				logrus.WithField("customer_id", customerID).Warn("Sincronização de relatórios cancelada")
				return failures
			}

			if !s.processReport(ctx, customerID, reportType, date) {
				failures++
			}

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	return failures
}

func (s *ReportSyncService) processReport(ctx context.Context, customerID string, reportType domain.ReportType, date string) bool {
	fields := logrus.Fields{
		"customer_id": customerID,
		"report_type": reportType,
		"date":        date,
	}

	snapshot, err := s.reporter.RefreshDailyReport(ctx, customerID, reportType, date)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro ao sincronizar relatório")
		return false
	}

	logrus.WithFields(fields).WithField("rows", snapshot.RowCount).Info("Relatório sincronizado com sucesso")
	return true
}

// cleanupOldSnapshots remove os snapshots fora do período de retenção
func (s *ReportSyncService) cleanupOldSnapshots(ctx context.Context) {
	if s.config.RetentionDays <= 0 || s.snapshotRepo == nil {
		return
	}

	deleted, err := s.snapshotRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots antigos")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots antigos removidos")
	}
}

// TriggerManualSync inicia manualmente uma sincronização e indica se ela foi iniciada
func (s *ReportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de relatórios já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de relatórios")
	go s.syncAllReports(context.Background())
	return true
}

// IsRunning indica se há uma sincronização em andamento
func (s *ReportSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_customers":         len(s.config.CustomerIDs),
		"sync_running":           s.syncRunning,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
