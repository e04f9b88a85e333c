package domain

import (
	"fmt"
	"time"
)

// ReportType identifica os relatórios diários de desempenho
type ReportType string

const (
	ReportTypeCampaigns ReportType = "campaigns"
	ReportTypeAdGroups  ReportType = "ad-groups"
	ReportTypeAds       ReportType = "ads"
)

// DailyReportTypes lista os relatórios sincronizados diariamente
var DailyReportTypes = []ReportType{ReportTypeCampaigns, ReportTypeAdGroups, ReportTypeAds}

// ParseReportType valida o tipo de relatório recebido na URL
func ParseReportType(value string) (ReportType, error) {
	for _, reportType := range DailyReportTypes {
		if string(reportType) == value {
			return reportType, nil
		}
	}
	return "", fmt.Errorf("tipo de relatório inválido: %s", value)
}

// ReportSnapshot representa um relatório diário armazenado no banco
type ReportSnapshot struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customer_id"`
	ReportType ReportType   `json:"report_type"`
	Date       time.Time    `json:"date"`
	RowCount   int          `json:"row_count"`
	Table      *ReportTable `json:"table"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
