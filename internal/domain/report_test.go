package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportTable(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		wantErr bool
	}{
		{name: "Colunas válidas", columns: []string{"date", "id"}},
		{name: "Sem colunas", columns: nil, wantErr: true},
		{name: "Coluna vazia", columns: []string{"id", ""}, wantErr: true},
		{name: "Coluna duplicada", columns: []string{"id", "id"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewReportTable(tt.columns...)
			if tt.wantErr {
				assert.Nil(t, table)
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.columns, table.Columns())
			assert.Equal(t, 0, table.Len())
		})
	}
}

func TestReportTable_AppendRow(t *testing.T) {
	table, err := NewReportTable("id", "name")
	require.NoError(t, err)

	require.NoError(t, table.AppendRow([]any{int64(1), "a"}))
	assert.Error(t, table.AppendRow([]any{int64(2)}))

	assert.Equal(t, 1, table.Len())
	ids, ok := table.Column("id")
	assert.True(t, ok)
	assert.Equal(t, []any{int64(1)}, ids)

	// A cópia devolvida não altera a tabela
	ids[0] = int64(99)
	again, _ := table.Column("id")
	assert.Equal(t, []any{int64(1)}, again)

	_, ok = table.Column("inexistente")
	assert.False(t, ok)
}

func TestReportTable_JSON(t *testing.T) {
	table, err := NewReportTable("date", "id", "status")
	require.NoError(t, err)
	require.NoError(t, table.AppendRow([]any{"2020-09-01", int64(9007199254740993), "ENABLED"}))
	require.NoError(t, table.AppendRow([]any{"2020-09-01", int64(2), "PAUSED"}))

	data, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":["2020-09-01","2020-09-01"],"id":[9007199254740993,2],"status":["ENABLED","PAUSED"]}`, string(data))
	assert.Regexp(t, `^\{"date":.*"id":.*"status":`, string(data))

	decoded := &ReportTable{}
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, table.Columns(), decoded.Columns())
	assert.Equal(t, 2, decoded.Len())
	assert.Equal(t, []any{"2020-09-01", int64(9007199254740993), "ENABLED"}, decoded.Row(0))
}

func TestReportTable_UnmarshalJSON_Invalid(t *testing.T) {
	decoded := &ReportTable{}
	assert.Error(t, json.Unmarshal([]byte(`{"id":[1,2],"name":["a"]}`), decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"id":`), decoded))
}

func TestReportTable_EmptyJSON(t *testing.T) {
	table, err := NewReportTable("date", "id")
	require.NoError(t, err)

	data, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":[],"id":[]}`, string(data))
}

func TestReportError(t *testing.T) {
	base := errors.New("status 401")
	err := NewReportError(ErrAuthentication, "searchStream", base).WithCustomer("1234567890")

	assert.ErrorIs(t, err, ErrAuthentication)
	assert.ErrorIs(t, err, base)
	assert.NotErrorIs(t, err, ErrQuery)
	assert.Equal(t, "searchStream: customer 1234567890: authentication error: status 401", err.Error())

	wrapped := fmt.Errorf("GetCampaigns: %w", err)
	assert.Equal(t, ErrAuthentication, ReportKind(wrapped))
	assert.Nil(t, ReportKind(errors.New("outro")))
}

func TestFieldErrors(t *testing.T) {
	notFound := &FieldNotFoundError{Column: "id", Path: "campaign.id", Segment: "campaign"}
	assert.ErrorIs(t, notFound, ErrFieldNotFound)

	typeErr := &FieldTypeError{Column: "id", Path: "campaign.id", Value: "abc", Want: "inteiro"}
	assert.ErrorIs(t, typeErr, ErrFieldNotFound)
	assert.Contains(t, typeErr.Error(), "campaign.id")
}

func TestParseReportType(t *testing.T) {
	reportType, err := ParseReportType("ad-groups")
	require.NoError(t, err)
	assert.Equal(t, ReportTypeAdGroups, reportType)

	_, err = ParseReportType("keywords")
	assert.Error(t, err)
}
