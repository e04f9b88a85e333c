package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestPrintTable(t *testing.T) {
	table, err := domain.NewReportTable("id", "name", "status")
	require.NoError(t, err)
	require.NoError(t, table.AppendRow([]any{int64(1), "Marca", "ENABLED"}))
	require.NoError(t, table.AppendRow([]any{int64(22), "Remarketing", "PAUSED"}))

	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, table))

	expected := "id  name         status\n" +
		"1   Marca        ENABLED\n" +
		"22  Remarketing  PAUSED\n"
	assert.Equal(t, expected, buf.String())
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	campaigns, err := domain.NewReportTable("id", "name")
	require.NoError(t, err)
	require.NoError(t, campaigns.AppendRow([]any{int64(1), "Marca"}))

	daily, err := domain.NewReportTable("date", "ad_group_id", "impressions")
	require.NoError(t, err)
	require.NoError(t, daily.AppendRow([]any{"2020-09-01", int64(7), int64(100)}))

	t.Run("Relatório de grupos de anúncios", func(t *testing.T) {
		service := mocks.NewMockReporter(gomock.NewController(t))
		service.EXPECT().GetCampaigns(ctx, "1234567890").Return(campaigns, nil)
		service.EXPECT().GetAdGroupReport(ctx, "1234567890", "2020-09-01").Return(daily, nil)

		var buf bytes.Buffer
		err := run(ctx, &buf, service, "1234567890", domain.ReportTypeAdGroups, "2020-09-01")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Campanhas (1)")
		assert.Contains(t, buf.String(), "Relatório ad-groups em 2020-09-01 (1)")
		assert.Contains(t, buf.String(), "2020-09-01  7            100")
	})

	t.Run("Erro nas campanhas interrompe", func(t *testing.T) {
		service := mocks.NewMockReporter(gomock.NewController(t))
		service.EXPECT().GetCampaigns(ctx, "1").Return(nil, errors.New("401"))

		var buf bytes.Buffer
		err := run(ctx, &buf, service, "1", domain.ReportTypeCampaigns, "2020-09-01")

		assert.Error(t, err)
		assert.Empty(t, buf.String())
	})
}
