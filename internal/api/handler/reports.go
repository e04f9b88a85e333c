package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportResponse é o envelope das respostas de relatório
type ReportResponse struct {
	CustomerID string              `json:"customer_id"`
	Report     string              `json:"report"`
	Date       string              `json:"date,omitempty"`
	Rows       int                 `json:"rows"`
	Columns    []string            `json:"columns"`
	Data       *domain.ReportTable `json:"data"`
}

func GetCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		table, err := service.GetCampaigns(r.Context(), customerID)
		writeReport(w, r, "campaigns", customerID, "", table, err)
	})
}

func GetAdGroups(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		filter := &domain.Filter{Field: "campaign.id", Value: r.URL.Query().Get("campaign_id")}

		table, err := service.GetAdGroups(r.Context(), customerID, filter)
		writeReport(w, r, "ad-groups", customerID, "", table, err)
	})
}

// GetAds aceita campaign_id ou ad_group_id como filtro, nunca os dois
func GetAds(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		campaignID := r.URL.Query().Get("campaign_id")
		adGroupID := r.URL.Query().Get("ad_group_id")

		if campaignID != "" && adGroupID != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Informe apenas um filtro: campaign_id ou ad_group_id", nil)
			return
		}

		filter := &domain.Filter{Field: "campaign.id", Value: campaignID}
		if adGroupID != "" {
			filter = &domain.Filter{Field: "ad_group.id", Value: adGroupID}
		}

		table, err := service.GetAds(r.Context(), customerID, filter)
		writeReport(w, r, "ads", customerID, "", table, err)
	})
}

// GetDailyReport devolve um relatório diário de desempenho (campaigns, ad-groups ou ads)
func GetDailyReport(service reporting.DailyReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		reportType, err := domain.ParseReportType(params.ByName("type"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro date é obrigatório (YYYY-MM-DD)", nil)
			return
		}

		table, err := service.GetDailyReport(r.Context(), customerID, reportType, date)
		writeReport(w, r, string(reportType), customerID, date, table, err)
	})
}

// SnapshotEntry é um relatório diário armazenado
type SnapshotEntry struct {
	Date      string              `json:"date"`
	Rows      int                 `json:"rows"`
	UpdatedAt time.Time           `json:"updated_at"`
	Data      *domain.ReportTable `json:"data"`
}

// SnapshotHistoryResponse é o envelope da listagem de relatórios armazenados
type SnapshotHistoryResponse struct {
	CustomerID string          `json:"customer_id"`
	Report     string          `json:"report"`
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Count      int             `json:"count"`
	Snapshots  []SnapshotEntry `json:"snapshots"`
}

// GetReportSnapshots lista os relatórios diários já sincronizados entre start e end
func GetReportSnapshots(service reporting.DailyReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		reportType, err := domain.ParseReportType(params.ByName("type"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		start := r.URL.Query().Get("start")
		end := r.URL.Query().Get("end")
		if start == "" || end == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start e end são obrigatórios (YYYY-MM-DD)", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"customer_id": customerID,
			"report_type": string(reportType),
		})

		snapshots, err := service.ListDailyReports(r.Context(), customerID, reportType, start, end)
		if err != nil {
			logger.WithError(err).Error("reports: failed to list snapshots")
			apiErrors.WriteReportError(w, err)
			return
		}

		response := SnapshotHistoryResponse{
			CustomerID: customerID,
			Report:     string(reportType),
			Start:      start,
			End:        end,
			Count:      len(snapshots),
			Snapshots:  make([]SnapshotEntry, 0, len(snapshots)),
		}
		for _, snapshot := range snapshots {
			response.Snapshots = append(response.Snapshots, SnapshotEntry{
				Date:      snapshot.Date.Format(time.DateOnly),
				Rows:      snapshot.RowCount,
				UpdatedAt: snapshot.UpdatedAt,
				Data:      snapshot.Table,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(errors.Wrap(err, "encode snapshots response")).Error("reports: failed to encode response")
		}
	})
}

func writeReport(w http.ResponseWriter, r *http.Request, report, customerID, date string, table *domain.ReportTable, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"customer_id": customerID,
		"report_type": report,
		"date":        date,
	})

	if err != nil {
		logger.WithError(err).Error("reports: failed to build report")
		apiErrors.WriteReportError(w, err)
		return
	}

	logger.Info("reports: report built")

	response := ReportResponse{
		CustomerID: customerID,
		Report:     report,
		Date:       date,
		Rows:       table.Len(),
		Columns:    table.Columns(),
		Data:       table,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(errors.Wrap(err, "encode report response")).Error("reports: failed to encode response")
	}
}
