package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Rota não encontrada
	ErrMethodNotAllowed    = "VAL_005" // Método não permitido

	// Erros dos relatórios do Google Ads
	ErrReportQuery          = "REP_001" // Consulta rejeitada
	ErrReportAuthentication = "REP_002" // Credenciais do Google Ads inválidas
	ErrReportSchema         = "REP_003" // Linha sem o campo esperado
	ErrReportEnum           = "REP_004" // Enum desconhecido
	ErrReportStream         = "REP_005" // Falha na leitura do stream

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrReportQuery:           http.StatusBadRequest,
	ErrReportAuthentication:  http.StatusBadGateway,
	ErrReportSchema:          http.StatusBadGateway,
	ErrReportEnum:            http.StatusBadGateway,
	ErrReportStream:          http.StatusBadGateway,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// ReportErrorCode converte o tipo do erro de relatório no código da API
func ReportErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrQuery):
		return ErrReportQuery
	case errors.Is(err, domain.ErrAuthentication):
		return ErrReportAuthentication
	case errors.Is(err, domain.ErrUnknownEnumValue):
		return ErrReportEnum
	case errors.Is(err, domain.ErrFieldNotFound):
		return ErrReportSchema
	case errors.Is(err, domain.ErrStream):
		return ErrReportStream
	default:
		return ErrInternalServer
	}
}

// WriteReportError escreve um erro de relatório com o código correspondente ao seu tipo
func WriteReportError(w http.ResponseWriter, err error) {
	WriteError(w, ReportErrorCode(err), err.Error(), nil)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
