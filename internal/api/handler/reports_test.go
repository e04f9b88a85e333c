package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTable(t *testing.T) *domain.ReportTable {
	t.Helper()
	table, err := domain.NewReportTable("date", "id", "impressions")
	require.NoError(t, err)
	require.NoError(t, table.AppendRow([]any{"2020-09-01", int64(10), int64(100)}))
	return table
}

func serve(t *testing.T, handler http.Handler, method, target, role string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if role != "" {
		claims := &middleware.Claims{Role: role}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetDailyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDailyReporter(ctrl)
	rt := router.New(router.WithRoutes(Reports(service)...))

	service.EXPECT().
		GetDailyReport(gomock.Any(), "123-456-7890", domain.ReportTypeCampaigns, "2020-09-01").
		Return(newTable(t), nil)

	rec := serve(t, rt, http.MethodGet, "/v1/customers/123-456-7890/reports/campaigns?date=2020-09-01", middleware.RoleAnalyst)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "campaigns", body["report"])
	assert.Equal(t, "2020-09-01", body["date"])
	assert.EqualValues(t, 1, body["rows"])
	assert.Equal(t, []any{"date", "id", "impressions"}, body["columns"])
	assert.Contains(t, rec.Body.String(), `"data":{"date":["2020-09-01"],"id":[10],"impressions":[100]}`)
}

func TestGetDailyReport_InvalidRequests(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "Tipo inválido", target: "/v1/customers/1/reports/keywords?date=2020-09-01", wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidRequest},
		{name: "Sem data", target: "/v1/customers/1/reports/ads", wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nenhuma chamada ao serviço
			service := mocks.NewMockDailyReporter(gomock.NewController(t))
			rt := router.New(router.WithRoutes(Reports(service)...))

			rec := serve(t, rt, http.MethodGet, tt.target, middleware.RoleAdmin)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestGetReportSnapshots(t *testing.T) {
	t.Run("Lista os snapshots do intervalo", func(t *testing.T) {
		service := mocks.NewMockDailyReporter(gomock.NewController(t))
		rt := router.New(router.WithRoutes(Reports(service)...))

		updatedAt := time.Date(2020, 9, 2, 3, 0, 0, 0, time.UTC)
		service.EXPECT().
			ListDailyReports(gomock.Any(), "1234567890", domain.ReportTypeCampaigns, "2020-09-01", "2020-09-02").
			Return([]*domain.ReportSnapshot{
				{Date: time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC), RowCount: 1, UpdatedAt: updatedAt, Table: newTable(t)},
			}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/customers/1234567890/reports/campaigns/snapshots?start=2020-09-01&end=2020-09-02", middleware.RoleAnalyst)

		require.Equal(t, http.StatusOK, rec.Code)

		var body SnapshotHistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "campaigns", body.Report)
		assert.Equal(t, 1, body.Count)
		require.Len(t, body.Snapshots, 1)
		assert.Equal(t, "2020-09-01", body.Snapshots[0].Date)
		assert.True(t, updatedAt.Equal(body.Snapshots[0].UpdatedAt))
		assert.Equal(t, []string{"date", "id", "impressions"}, body.Snapshots[0].Data.Columns())
	})

	t.Run("Sem intervalo", func(t *testing.T) {
		service := mocks.NewMockDailyReporter(gomock.NewController(t))
		rt := router.New(router.WithRoutes(Reports(service)...))

		rec := serve(t, rt, http.MethodGet, "/v1/customers/1/reports/ads/snapshots?start=2020-09-01", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Intervalo inválido", func(t *testing.T) {
		service := mocks.NewMockDailyReporter(gomock.NewController(t))
		rt := router.New(router.WithRoutes(Reports(service)...))

		service.EXPECT().
			ListDailyReports(gomock.Any(), "1", domain.ReportTypeAds, "2020-09-03", "2020-09-01").
			Return(nil, domain.NewReportError(domain.ErrQuery, "buildQuery", errors.New("intervalo inválido")))

		rec := serve(t, rt, http.MethodGet, "/v1/customers/1/reports/ads/snapshots?start=2020-09-03&end=2020-09-01", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apiErrors.ErrReportQuery, body.Code)
	})
}

func TestReports_ErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "Consulta inválida", err: domain.NewReportError(domain.ErrQuery, "buildQuery", errors.New("ID inválido")), wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrReportQuery},
		{name: "Autenticação", err: domain.NewReportError(domain.ErrAuthentication, "searchStream", errors.New("401")), wantStatus: http.StatusBadGateway, wantCode: apiErrors.ErrReportAuthentication},
		{name: "Campo ausente", err: domain.NewReportError(domain.ErrFieldNotFound, "extract", errors.New("campaign.id")), wantStatus: http.StatusBadGateway, wantCode: apiErrors.ErrReportSchema},
		{name: "Stream", err: domain.NewReportError(domain.ErrStream, "searchStream", errors.New("EOF")), wantStatus: http.StatusBadGateway, wantCode: apiErrors.ErrReportStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockDailyReporter(gomock.NewController(t))
			rt := router.New(router.WithRoutes(Reports(service)...))

			service.EXPECT().GetCampaigns(gomock.Any(), "1234567890").Return(nil, tt.err)

			rec := serve(t, rt, http.MethodGet, "/v1/customers/1234567890/campaigns", middleware.RoleAnalyst)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestGetAdGroups_Filter(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantFilter *domain.Filter
	}{
		{name: "Sem filtro", target: "/v1/customers/1/ad-groups", wantFilter: &domain.Filter{Field: "campaign.id"}},
		{name: "Com campanha", target: "/v1/customers/1/ad-groups?campaign_id=11", wantFilter: &domain.Filter{Field: "campaign.id", Value: "11"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockDailyReporter(gomock.NewController(t))
			rt := router.New(router.WithRoutes(Reports(service)...))

			service.EXPECT().GetAdGroups(gomock.Any(), "1", tt.wantFilter).Return(newTable(t), nil)

			rec := serve(t, rt, http.MethodGet, tt.target, middleware.RoleAnalyst)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetAds_Filter(t *testing.T) {
	t.Run("Filtro por grupo de anúncios", func(t *testing.T) {
		service := mocks.NewMockDailyReporter(gomock.NewController(t))
		rt := router.New(router.WithRoutes(Reports(service)...))

		service.EXPECT().GetAds(gomock.Any(), "1", &domain.Filter{Field: "ad_group.id", Value: "21"}).Return(newTable(t), nil)

		rec := serve(t, rt, http.MethodGet, "/v1/customers/1/ads?ad_group_id=21", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Dois filtros ao mesmo tempo", func(t *testing.T) {
		service := mocks.NewMockDailyReporter(gomock.NewController(t))
		rt := router.New(router.WithRoutes(Reports(service)...))

		rec := serve(t, rt, http.MethodGet, "/v1/customers/1/ads?ad_group_id=21&campaign_id=11", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReports_RequiresRole(t *testing.T) {
	service := mocks.NewMockDailyReporter(gomock.NewController(t))
	rt := router.New(router.WithRoutes(Reports(service)...))

	rec := serve(t, rt, http.MethodGet, "/v1/customers/1/campaigns", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type fakeReportSync struct {
	started bool
	calls   int
}

func (f *fakeReportSync) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeReportSync) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	t.Run("Execução manual", func(t *testing.T) {
		sync := &fakeReportSync{started: true}
		rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportSyncService: sync})...))

		rec := serve(t, rt, http.MethodPost, "/v1/cron/report-sync/run", middleware.RoleAdmin)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, sync.calls)
	})

	t.Run("Já em execução", func(t *testing.T) {
		sync := &fakeReportSync{started: false}
		rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportSyncService: sync})...))

		rec := serve(t, rt, http.MethodPost, "/v1/cron/report-sync/run", middleware.RoleAdmin)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Analista não executa cron", func(t *testing.T) {
		sync := &fakeReportSync{started: true}
		rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportSyncService: sync})...))

		rec := serve(t, rt, http.MethodPost, "/v1/cron/report-sync/run", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 0, sync.calls)
	})

	t.Run("Status", func(t *testing.T) {
		rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportSyncService: &fakeReportSync{}})...))

		rec := serve(t, rt, http.MethodGet, "/v1/cron/status", middleware.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"report-sync":{"sync_enabled":true}`)
	})
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, HealthcheckHandler(fakePinger{}), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, HealthcheckHandler(fakePinger{err: errors.New("connection refused")}), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestRouter_NotFound(t *testing.T) {
	rt := router.New()

	rec := serve(t, rt, http.MethodGet, "/v1/inexistente", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
