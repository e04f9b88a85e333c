package adsdomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Google Ads
type ErrorDetails struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Type      string          `json:"@type"`
	Errors    []GoogleAdsFail `json:"errors,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

type GoogleAdsFail struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
}

// IsTokenExpired verifica se o erro indica token de acesso inválido ou expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}

// IsPermissionDenied verifica se o erro é de autorização (developer token, conta sem acesso)
func (e *ErrorResponse) IsPermissionDenied() bool {
	return e.Error.Code == 403 || e.Error.Status == "PERMISSION_DENIED"
}

// Summary monta uma mensagem curta com o primeiro erro detalhado, quando houver
func (e *ErrorResponse) Summary() string {
	for _, detail := range e.Error.Details {
		for _, failure := range detail.Errors {
			if failure.Message != "" {
				return fmt.Sprintf("%s: %s", e.Error.Status, failure.Message)
			}
		}
	}
	return fmt.Sprintf("%s: %s", e.Error.Status, e.Error.Message)
}
