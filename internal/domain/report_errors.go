package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Tipos de erro dos relatórios
var (
	// Credenciais ou configuração inválidas
	ErrAuthentication = errors.New("authentication error")
	// Consulta malformada ou rejeitada pela API
	ErrQuery = errors.New("query error")
	// Linha sem um campo esperado
	ErrFieldNotFound = errors.New("field not found")
	// Código de enum ausente no registro
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// Falha de transporte durante a leitura do stream
	ErrStream = errors.New("stream error")
)

// ReportError é um erro com contexto da operação de relatório
type ReportError struct {
	Kind       error  // Um dos erros acima
	Op         string // Operação que falhou (ex.: GetCampaignReport)
	CustomerID string // Conta envolvida (quando aplicável)
	Err        error  // Erro base
}

// NewReportError cria um novo ReportError
func NewReportError(kind error, op string, err error) *ReportError {
	return &ReportError{Kind: kind, Op: op, Err: err}
}

// WithCustomer retorna o erro com o ID da conta preenchido
func (e *ReportError) WithCustomer(customerID string) *ReportError {
	e.CustomerID = customerID
	return e
}

func (e *ReportError) Error() string {
	parts := make([]string, 0, 3)
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.CustomerID != "" {
		parts = append(parts, "customer "+e.CustomerID)
	}
	parts = append(parts, e.Kind.Error())

	if e.Err != nil {
		return fmt.Sprintf("%s: %s", strings.Join(parts, ": "), e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap expõe o tipo e o erro base para errors.Is/errors.As
func (e *ReportError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// FieldNotFoundError indica que um segmento do caminho não existe na linha
type FieldNotFoundError struct {
	Column  string
	Path    string
	Segment string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("campo %s não encontrado (coluna %s, segmento %q)", e.Path, e.Column, e.Segment)
}

func (e *FieldNotFoundError) Is(target error) bool {
	return target == ErrFieldNotFound
}

// FieldTypeError indica um valor com tipo diferente do esperado para a coluna.
// É tratado como o mesmo tipo de erro de um campo ausente: a linha não segue o esquema.
type FieldTypeError struct {
	Column string
	Path   string
	Value  any
	Want   string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("campo %s (coluna %s) com valor %v, esperado %s", e.Path, e.Column, e.Value, e.Want)
}

func (e *FieldTypeError) Is(target error) bool {
	return target == ErrFieldNotFound
}

// ReportKind retorna o tipo do erro de relatório, ou nil
func ReportKind(err error) error {
	for _, kind := range []error{ErrAuthentication, ErrQuery, ErrFieldNotFound, ErrUnknownEnumValue, ErrStream} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
