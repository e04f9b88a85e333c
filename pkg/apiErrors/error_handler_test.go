package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func TestReportErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "Consulta", err: domain.NewReportError(domain.ErrQuery, "buildQuery", errors.New("data inválida")), code: ErrReportQuery},
		{name: "Autenticação", err: domain.NewReportError(domain.ErrAuthentication, "searchStream", nil), code: ErrReportAuthentication},
		{name: "Campo ausente", err: &domain.FieldNotFoundError{Column: "id", Path: "campaign.id"}, code: ErrReportSchema},
		{name: "Enum", err: domain.NewReportError(domain.ErrUnknownEnumValue, "extract", nil), code: ErrReportEnum},
		{name: "Stream encapsulado", err: fmt.Errorf("GetCampaigns: %w", domain.NewReportError(domain.ErrStream, "searchStream", nil)), code: ErrReportStream},
		{name: "Erro qualquer", err: errors.New("db"), code: ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ReportErrorCode(tt.err))
		})
	}
}

func TestWriteReportError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteReportError(rec, domain.NewReportError(domain.ErrQuery, "buildQuery", errors.New("ID de conta inválido")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrReportQuery, body.Code)
	assert.Contains(t, body.Message, "ID de conta inválido")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, StatusFor(ErrReportStream))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("DESCONHECIDO"))
}
