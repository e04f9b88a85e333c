package reporting

import (
	"strings"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// reportField liga uma coluna da tabela a um campo GAQL
type reportField struct {
	column  string
	field   string // nome GAQL, ex.: metrics.cost_micros
	decoder domain.Decoder
	metric  bool
}

// spec converte o campo GAQL no caminho JSON da resposta REST (lowerCamelCase).
// Métricas zeradas são omitidas pela API, por isso recebem zero como padrão.
func (f reportField) spec() domain.FieldSpec {
	spec := domain.FieldSpec{Column: f.column, Path: jsonPath(f.field), Decoder: f.decoder}
	if f.metric {
		spec = spec.WithDefault(int64(0))
	}
	return spec
}

// reportPlan descreve uma consulta do catálogo e a projeção das linhas
type reportPlan struct {
	name         string
	resource     string
	fields       []reportField
	filterFields []string // campos aceitos no filtro, o primeiro é o padrão
	daily        bool
	orderBy      []string
}

func (p reportPlan) selectFields() []string {
	fields := make([]string, 0, len(p.fields))
	for _, f := range p.fields {
		fields = append(fields, f.field)
	}
	return fields
}

func (p reportPlan) specs() []domain.FieldSpec {
	specs := make([]domain.FieldSpec, 0, len(p.fields))
	for _, f := range p.fields {
		specs = append(specs, f.spec())
	}
	return specs
}

// filterField resolve o campo do filtro, aplicando o padrão do relatório
func (p reportPlan) filterField(filter *domain.Filter) (string, bool) {
	if len(p.filterFields) == 0 {
		return "", false
	}
	if filter.Field == "" {
		return p.filterFields[0], true
	}
	for _, allowed := range p.filterFields {
		if filter.Field == allowed {
			return allowed, true
		}
	}
	return "", false
}

func metricFields() []reportField {
	return []reportField{
		{column: "impressions", field: "metrics.impressions", decoder: Int64, metric: true},
		{column: "clicks", field: "metrics.clicks", decoder: Int64, metric: true},
		{column: "cost_micros", field: "metrics.cost_micros", decoder: Int64, metric: true},
		{column: "engagements", field: "metrics.engagements", decoder: Int64, metric: true},
		{column: "interactions", field: "metrics.interactions", decoder: Int64, metric: true},
	}
}

type catalog struct {
	campaigns      reportPlan
	adGroups       reportPlan
	ads            reportPlan
	campaignReport reportPlan
	adGroupReport  reportPlan
	adsReport      reportPlan
}

func newCatalog(campaignStatus, channelType domain.Decoder) catalog {
	return catalog{
		campaigns: reportPlan{
			name:     "GetCampaigns",
			resource: "campaign",
			fields: []reportField{
				{column: "id", field: "campaign.id", decoder: Int64},
				{column: "name", field: "campaign.name", decoder: Text},
				{column: "status", field: "campaign.status", decoder: campaignStatus},
				{column: "type", field: "campaign.advertising_channel_type", decoder: channelType},
			},
			orderBy: []string{"campaign.id"},
		},
		adGroups: reportPlan{
			name:     "GetAdGroups",
			resource: "ad_group",
			fields: []reportField{
				{column: "campaign_id", field: "campaign.id", decoder: Int64},
				{column: "id", field: "ad_group.id", decoder: Int64},
				{column: "name", field: "ad_group.name", decoder: Text},
			},
			filterFields: []string{"campaign.id"},
		},
		ads: reportPlan{
			name:     "GetAds",
			resource: "ad_group_ad",
			fields: []reportField{
				{column: "campaign_id", field: "campaign.id", decoder: Int64},
				{column: "ad_group_id", field: "ad_group.id", decoder: Int64},
				{column: "id", field: "ad_group_ad.ad.id", decoder: Int64},
			},
			filterFields: []string{"campaign.id", "ad_group.id"},
		},
		campaignReport: reportPlan{
			name:     "GetCampaignReport",
			resource: "campaign",
			fields: append([]reportField{
				{column: "id", field: "campaign.id", decoder: Int64},
			}, metricFields()...),
			daily:   true,
			orderBy: []string{"campaign.id"},
		},
		adGroupReport: reportPlan{
			name:     "GetAdGroupReport",
			resource: "ad_group",
			fields: append([]reportField{
				{column: "id", field: "ad_group.id", decoder: Int64},
				{column: "campaign_id", field: "campaign.id", decoder: Int64},
			}, metricFields()...),
			daily:   true,
			orderBy: []string{"ad_group.id"},
		},
		adsReport: reportPlan{
			name:     "GetAdsReport",
			resource: "ad_group_ad",
			fields: append([]reportField{
				{column: "adgroup_id", field: "ad_group.id", decoder: Int64},
				{column: "campaign_id", field: "campaign.id", decoder: Int64},
				{column: "id", field: "ad_group_ad.ad.id", decoder: Int64},
			}, metricFields()...),
			daily:   true,
			orderBy: []string{"ad_group_ad.ad.id"},
		},
	}
}

// jsonPath converte "ad_group_ad.ad.id" em ["adGroupAd", "ad", "id"]
func jsonPath(field string) []string {
	segments := strings.Split(field, ".")
	for i, segment := range segments {
		segments[i] = lowerCamel(segment)
	}
	return segments
}

func lowerCamel(segment string) string {
	parts := strings.Split(segment, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
