package reporting

import (
	"errors"
	"fmt"
	"io"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

const opExtract = "extract"

// Extract percorre o stream uma única vez e monta a tabela colunar.
// As colunas constantes vêm primeiro, seguidas dos campos na ordem declarada.
// Qualquer falha aborta a extração e nenhuma tabela é devolvida.
func Extract(stream domain.RowStream, fields []domain.FieldSpec, constants ...domain.ConstantColumn) (*domain.ReportTable, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("extract: é necessário informar ao menos um campo")
	}

	columns := make([]string, 0, len(constants)+len(fields))
	for _, constant := range constants {
		columns = append(columns, constant.Column)
	}
	for _, field := range fields {
		if len(field.Path) == 0 {
			return nil, fmt.Errorf("extract: coluna %s sem caminho", field.Column)
		}
		columns = append(columns, field.Column)
	}

	table, err := domain.NewReportTable(columns...)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	for {
		batch, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		for _, row := range batch.Results {
			// A linha inteira é resolvida antes de ser adicionada à tabela
			values := make([]any, 0, len(columns))
			for _, constant := range constants {
				values = append(values, constant.Value)
			}

			for _, field := range fields {
				value, err := resolveField(row, field)
				if err != nil {
					return nil, err
				}
				values = append(values, value)
			}

			if err := table.AppendRow(values); err != nil {
				return nil, fmt.Errorf("extract: %w", err)
			}
		}
	}

	return table, nil
}

// resolveField percorre o caminho do campo na linha e aplica o decoder
func resolveField(row domain.Row, field domain.FieldSpec) (any, error) {
	var current any = map[string]any(row)

	for i, segment := range field.Path {
		node, ok := asObject(current)
		if !ok {
			return nil, fieldNotFound(field, segment)
		}

		value, exists := node[segment]
		if !exists {
			if i == len(field.Path)-1 && field.HasDefault {
				return field.Default, nil
			}
			return nil, fieldNotFound(field, segment)
		}
		current = value
	}

	if field.Decoder == nil {
		return current, nil
	}

	decoded, err := field.Decoder(current)
	if err != nil {
		return nil, decodeError(field, current, err)
	}

	return decoded, nil
}

func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case domain.Row:
		return v, true
	default:
		return nil, false
	}
}

func fieldNotFound(field domain.FieldSpec, segment string) error {
	return domain.NewReportError(domain.ErrFieldNotFound, opExtract, &domain.FieldNotFoundError{
		Column:  field.Column,
		Path:    field.PathString(),
		Segment: segment,
	})
}

func decodeError(field domain.FieldSpec, raw any, err error) error {
	var fieldTypeErr *domain.FieldTypeError
	if errors.As(err, &fieldTypeErr) {
		fieldTypeErr.Column = field.Column
		fieldTypeErr.Path = field.PathString()
		return domain.NewReportError(domain.ErrFieldNotFound, opExtract, fieldTypeErr)
	}

	if errors.Is(err, domain.ErrUnknownEnumValue) {
		return domain.NewReportError(domain.ErrUnknownEnumValue, opExtract, fmt.Errorf("coluna %s: %w", field.Column, err))
	}

	return domain.NewReportError(domain.ErrFieldNotFound, opExtract, &domain.FieldTypeError{
		Column: field.Column,
		Path:   field.PathString(),
		Value:  raw,
		Want:   err.Error(),
	})
}
