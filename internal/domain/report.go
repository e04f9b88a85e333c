package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Row é um registro retornado pela API, com campos aninhados
// (ex.: {"campaign": {"id": "10"}, "metrics": {"impressions": "100"}})
type Row map[string]any

// RowBatch é uma página de resultados de um searchStream
type RowBatch struct {
	Results   []Row  `json:"results"`
	FieldMask string `json:"fieldMask,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// RowStream é uma sequência de páginas lida uma única vez, do início ao fim.
// Next retorna io.EOF quando não há mais páginas.
type RowStream interface {
	Next() (*RowBatch, error)
	Close() error
}

// Decoder transforma um valor bruto (ex.: código de enum) em um valor de exibição
type Decoder func(raw any) (any, error)

// FieldSpec descreve como projetar um campo da linha em uma coluna da tabela
type FieldSpec struct {
	Column  string
	Path    []string
	Decoder Decoder
	// Default é usado quando apenas o último segmento do caminho está ausente.
	// A API omite campos com valor zero (ex.: metrics.clicks = 0).
	Default    any
	HasDefault bool
}

// Field cria um FieldSpec a partir de um caminho no formato "campaign.id"
func Field(column, path string) FieldSpec {
	return FieldSpec{Column: column, Path: strings.Split(path, ".")}
}

// WithDecoder retorna uma cópia do FieldSpec com o decoder informado
func (f FieldSpec) WithDecoder(decoder Decoder) FieldSpec {
	f.Decoder = decoder
	return f
}

// WithDefault retorna uma cópia do FieldSpec com valor padrão para o campo ausente
func (f FieldSpec) WithDefault(value any) FieldSpec {
	f.Default = value
	f.HasDefault = true
	return f
}

// PathString retorna o caminho no formato da API (campaign.id)
func (f FieldSpec) PathString() string {
	return strings.Join(f.Path, ".")
}

// ConstantColumn é uma coluna preenchida com o mesmo valor em todas as linhas
type ConstantColumn struct {
	Column string
	Value  any
}

// Filter é um predicado de igualdade opcional aplicado no servidor.
// O valor zero significa "sem filtro".
type Filter struct {
	Field string
	Value string
}

// IsEmpty indica se o filtro deve ser ignorado
func (f *Filter) IsEmpty() bool {
	return f == nil || f.Value == ""
}

// ReportTable é uma tabela colunar: todas as colunas têm o mesmo tamanho
// e a linha i de todas as colunas corresponde à mesma linha de origem.
type ReportTable struct {
	columns []string
	values  map[string][]any
	rows    int
}

// NewReportTable cria uma tabela vazia com as colunas declaradas
func NewReportTable(columns ...string) (*ReportTable, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("a tabela precisa de ao menos uma coluna")
	}

	values := make(map[string][]any, len(columns))
	for _, column := range columns {
		if column == "" {
			return nil, fmt.Errorf("nome de coluna vazio")
		}
		if _, exists := values[column]; exists {
			return nil, fmt.Errorf("coluna duplicada: %s", column)
		}
		values[column] = make([]any, 0)
	}

	return &ReportTable{
		columns: append([]string(nil), columns...),
		values:  values,
	}, nil
}

// AppendRow adiciona uma linha completa, na ordem das colunas declaradas
func (t *ReportTable) AppendRow(row []any) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("linha com %d valores para %d colunas", len(row), len(t.columns))
	}

	for i, column := range t.columns {
		t.values[column] = append(t.values[column], row[i])
	}
	t.rows++

	return nil
}

// Columns retorna os nomes das colunas na ordem de declaração
func (t *ReportTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Column retorna uma cópia dos valores da coluna
func (t *ReportTable) Column(name string) ([]any, bool) {
	values, ok := t.values[name]
	if !ok {
		return nil, false
	}
	return append([]any(nil), values...), true
}

// Len retorna o número de linhas
func (t *ReportTable) Len() int {
	return t.rows
}

// Row retorna a linha i na ordem das colunas
func (t *ReportTable) Row(i int) []any {
	row := make([]any, len(t.columns))
	for j, column := range t.columns {
		row[j] = t.values[column][i]
	}
	return row
}

// MarshalJSON serializa a tabela como objeto preservando a ordem das colunas
func (t *ReportTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	stream := jsoniter.NewStream(jsoniter.ConfigCompatibleWithStandardLibrary, &buf, 512)

	stream.WriteObjectStart()
	for i, column := range t.columns {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(column)
		stream.WriteVal(t.values[column])
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	if err := stream.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// tableAPI preserva inteiros (IDs e métricas) ao ler tabelas armazenadas
var tableAPI = jsoniter.Config{
	EscapeHTML: true,
	UseNumber:  true,
}.Froze()

// UnmarshalJSON reconstrói a tabela preservando a ordem das colunas do documento
func (t *ReportTable) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ParseBytes(tableAPI, data)

	columns := make([]string, 0)
	values := make(map[string][]any)
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, column string) bool {
		var columnValues []any
		iter.ReadVal(&columnValues)
		if columnValues == nil {
			columnValues = make([]any, 0)
		}
		for i, value := range columnValues {
			columnValues[i] = normalizeNumber(value)
		}
		columns = append(columns, column)
		values[column] = columnValues
		return true
	})
	if iter.Error != nil {
		return fmt.Errorf("erro ao decodificar tabela: %w", iter.Error)
	}

	rows := -1
	for _, column := range columns {
		if rows >= 0 && len(values[column]) != rows {
			return fmt.Errorf("coluna %s com %d valores, esperado %d", column, len(values[column]), rows)
		}
		rows = len(values[column])
	}
	if rows < 0 {
		rows = 0
	}

	t.columns = columns
	t.values = values
	t.rows = rows
	return nil
}

// normalizeNumber converte json.Number em int64 quando possível, senão em float64
func normalizeNumber(value any) any {
	number, ok := value.(json.Number)
	if !ok {
		return value
	}
	if n, err := number.Int64(); err == nil {
		return n
	}
	if f, err := number.Float64(); err == nil {
		return f
	}
	return number.String()
}
