package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func TestQueryBuilder_ToGAQL(t *testing.T) {
	tests := []struct {
		name    string
		builder QueryBuilder
		want    string
	}{
		{
			name:    "Select simples com ordenação",
			builder: Select("campaign.id", "campaign.name").From("campaign").OrderBy("campaign.id"),
			want:    "SELECT campaign.id, campaign.name FROM campaign ORDER BY campaign.id",
		},
		{
			name:    "Filtro por campanha",
			builder: Select("campaign.id", "ad_group.id").From("ad_group").WhereEq("campaign.id", int64(123)),
			want:    "SELECT campaign.id, ad_group.id FROM ad_group WHERE campaign.id = 123",
		},
		{
			name: "Relatório diário",
			builder: Select("campaign.id", "metrics.impressions").
				From("campaign").
				WhereDateBetween("2020-09-01", "2020-09-01").
				WhereGt("metrics.impressions", 0).
				OrderBy("campaign.id"),
			want: "SELECT campaign.id, metrics.impressions FROM campaign " +
				"WHERE segments.date BETWEEN '2020-09-01' AND '2020-09-01' AND metrics.impressions > 0 " +
				"ORDER BY campaign.id",
		},
		{
			name:    "Texto é escapado",
			builder: Select("campaign.id").From("campaign").WhereEq("campaign.name", "O'Brien"),
			want:    `SELECT campaign.id FROM campaign WHERE campaign.name = 'O\'Brien'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.builder.ToGAQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryBuilder_ToGAQL_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder QueryBuilder
	}{
		{name: "Data inválida", builder: Select("campaign.id").From("campaign").WhereDateBetween("2020-13-01", "2020-13-01")},
		{name: "Data com injeção", builder: Select("campaign.id").From("campaign").WhereDateBetween("2020-09-01' OR '1'='1", "2020-09-01")},
		{name: "Campo inválido", builder: Select("campaign.id; DROP").From("campaign")},
		{name: "Recurso vazio", builder: Select("campaign.id")},
		{name: "Campo do filtro inválido", builder: Select("campaign.id").From("campaign").WhereEq("campaign.id OR 1", int64(1))},
		{name: "Tipo de parâmetro não suportado", builder: Select("campaign.id").From("campaign").WhereEq("campaign.id", 1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.builder.ToGAQL()
			assert.Empty(t, got)
			assert.ErrorIs(t, err, domain.ErrQuery)
		})
	}
}

func TestNormalizeCustomerID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Com traços", input: "123-456-7890", want: "1234567890"},
		{name: "Somente dígitos", input: "1234567890", want: "1234567890"},
		{name: "Com espaços", input: " 1234567890 ", want: "1234567890"},
		{name: "Vazio", input: "", wantErr: true},
		{name: "Com letras", input: "12a4", wantErr: true},
		{name: "Com barra", input: "123/../456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCustomerID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("6543210")
	require.NoError(t, err)
	assert.Equal(t, int64(6543210), id)

	for _, invalid := range []string{"", "-1", "1 OR 1=1", "99999999999999999999"} {
		_, err := ParseID(invalid)
		assert.ErrorIs(t, err, domain.ErrQuery, invalid)
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2020-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2020-09-01", date.Format("2006-01-02"))

	for _, invalid := range []string{"", "01/09/2020", "2020-9-1", "2020-02-30"} {
		_, err := ParseDate(invalid)
		assert.ErrorIs(t, err, domain.ErrQuery, invalid)
	}
}
