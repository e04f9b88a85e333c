package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	reportingmocks "github.com/vfg2006/ads-report-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestReportSyncService(t *testing.T, cfg config.ReportSync) (*ReportSyncService, *reportingmocks.MockDailyReporter, *mocks.MockReportSnapshotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockDailyReporter(ctrl)
	repo := mocks.NewMockReportSnapshotRepository(ctrl)

	service := NewReportSyncService(reporter, repo, &config.Config{ReportSync: cfg})
	service.now = func() time.Time { return time.Date(2024, 1, 16, 3, 0, 0, 0, time.UTC) }
	service.sleep = func(time.Duration) {}

	return service, reporter, repo
}

func TestReportSyncService_getDatesToProcess(t *testing.T) {
	service, _, _ := newTestReportSyncService(t, config.ReportSync{LookbackDays: 3})

	assert.Equal(t, []string{"2024-01-13", "2024-01-14", "2024-01-15"}, service.getDatesToProcess())
}

func TestReportSyncService_syncAllReports(t *testing.T) {
	service, reporter, repo := newTestReportSyncService(t, config.ReportSync{
		LookbackDays:      2,
		MaxConcurrentJobs: 2,
		RetentionDays:     400,
		CustomerIDs:       []string{"1111111111", "2222222222"},
	})

	var mu sync.Mutex
	calls := make(map[string]int)

	reporter.EXPECT().
		RefreshDailyReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(12). // 2 contas x 2 dias x 3 relatórios
		DoAndReturn(func(_ context.Context, customerID string, reportType domain.ReportType, date string) (*domain.ReportSnapshot, error) {
			mu.Lock()
			calls[customerID]++
			mu.Unlock()

			if customerID == "2222222222" && reportType == domain.ReportTypeAds && date == "2024-01-15" {
				return nil, domain.NewReportError(domain.ErrStream, "searchStream", errors.New("conexão encerrada"))
			}
			return &domain.ReportSnapshot{CustomerID: customerID, ReportType: reportType, RowCount: 1}, nil
		})

	repo.EXPECT().DeleteOlderThan(gomock.Any(), 400).Return(int64(5), nil)

	service.syncAllReports(context.Background())

	assert.Equal(t, 6, calls["1111111111"])
	assert.Equal(t, 6, calls["2222222222"])

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_sync_failures"])
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, service.IsRunning())
}

func TestReportSyncService_syncAllReports_NoCustomers(t *testing.T) {
	// Sem contas nenhuma chamada é feita
	service, _, _ := newTestReportSyncService(t, config.ReportSync{LookbackDays: 3, RetentionDays: 400})

	service.syncAllReports(context.Background())

	assert.True(t, service.GetStatus()["last_sync_completed_at"].(time.Time).IsZero())
}

func TestReportSyncService_syncAllReports_Canceled(t *testing.T) {
	service, _, repo := newTestReportSyncService(t, config.ReportSync{
		LookbackDays:      3,
		MaxConcurrentJobs: 1,
		CustomerIDs:       []string{"1111111111"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Sem retenção configurada a limpeza não é executada
	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Times(0)

	service.syncAllReports(ctx)

	assert.Equal(t, 0, service.GetStatus()["last_sync_failures"])
}

func TestReportSyncService_TriggerManualSync_AlreadyRunning(t *testing.T) {
	service, _, _ := newTestReportSyncService(t, config.ReportSync{})
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync())
}

func TestReportSyncService_TriggerManualSync(t *testing.T) {
	service, reporter, _ := newTestReportSyncService(t, config.ReportSync{
		LookbackDays:      1,
		MaxConcurrentJobs: 1,
		CustomerIDs:       []string{"1111111111"},
	})

	done := make(chan struct{}, 3)
	reporter.EXPECT().
		RefreshDailyReport(gomock.Any(), "1111111111", gomock.Any(), "2024-01-15").
		Times(3).
		DoAndReturn(func(context.Context, string, domain.ReportType, string) (*domain.ReportSnapshot, error) {
			done <- struct{}{}
			return &domain.ReportSnapshot{}, nil
		})

	require.True(t, service.TriggerManualSync())

	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("sincronização manual não executou os relatórios")
		}
	}

	assert.Eventually(t, func() bool { return !service.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestReportSyncService_Start_Disabled(t *testing.T) {
	service, _, _ := newTestReportSyncService(t, config.ReportSync{Enabled: false})

	assert.NoError(t, service.Start(context.Background()))
}

func TestReportSyncService_Start_InvalidCron(t *testing.T) {
	service, _, _ := newTestReportSyncService(t, config.ReportSync{Enabled: true, CronSchedule: "isso não é cron"})

	assert.Error(t, service.Start(context.Background()))
}
