package reporting

import (
	"encoding/json"
	"strconv"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Int64 converte os inteiros da API (int64 chega como string no JSON) para int64
func Int64(raw any) (any, error) {
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case json.Number:
		return parseInt64(string(v), raw)
	case string:
		return parseInt64(v, raw)
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
	}
	return nil, &domain.FieldTypeError{Value: raw, Want: "inteiro"}
}

func parseInt64(s string, raw any) (any, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &domain.FieldTypeError{Value: raw, Want: "inteiro"}
	}
	return n, nil
}

// Text garante que o campo é uma string
func Text(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, &domain.FieldTypeError{Value: raw, Want: "texto"}
	}
	return s, nil
}
