package adsdomain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Nomes dos tipos de enum usados nos relatórios
const (
	CampaignStatusEnum         = "CampaignStatusEnum"
	AdvertisingChannelTypeEnum = "AdvertisingChannelTypeEnum"
)

// UnknownEnumValueError indica um código ausente no registro de enums
type UnknownEnumValueError struct {
	EnumType string
	Value    any
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("valor desconhecido para o enum %s: %v", e.EnumType, e.Value)
}

func (e *UnknownEnumValueError) Is(target error) bool {
	return target == domain.ErrUnknownEnumValue
}

// Enum é a tabela código -> nome de um tipo de enum da API
type Enum struct {
	name   string
	names  map[int32]string
	values map[string]int32
}

// NewEnum cria um enum a partir do mapeamento código -> nome
func NewEnum(name string, names map[int32]string) *Enum {
	values := make(map[string]int32, len(names))
	for code, label := range names {
		values[label] = code
	}
	return &Enum{name: name, names: names, values: values}
}

// Name retorna o nome de exibição do código
func (e *Enum) Name(code int32) (string, error) {
	label, ok := e.names[code]
	if !ok {
		return "", &UnknownEnumValueError{EnumType: e.name, Value: code}
	}
	return label, nil
}

// Decode aceita tanto o código numérico quanto o nome já resolvido
// (a API REST devolve os enums pelo nome).
func (e *Enum) Decode(raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return e.decodeInt64(int64(v), raw)
	case int32:
		return e.Name(v)
	case int64:
		return e.decodeInt64(v, raw)
	case float64:
		// Códigos fracionários nunca existem no registro
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, &UnknownEnumValueError{EnumType: e.name, Value: raw}
		}
		return e.Name(int32(v))
	case json.Number:
		code, err := strconv.ParseInt(string(v), 10, 32)
		if err != nil {
			return nil, &UnknownEnumValueError{EnumType: e.name, Value: raw}
		}
		return e.Name(int32(code))
	case string:
		if code, err := strconv.ParseInt(v, 10, 32); err == nil {
			return e.Name(int32(code))
		}
		if _, ok := e.values[strings.ToUpper(v)]; ok {
			return strings.ToUpper(v), nil
		}
	}

	return nil, &UnknownEnumValueError{EnumType: e.name, Value: raw}
}

// decodeInt64 rejeita códigos fora do intervalo de int32 antes da conversão
func (e *Enum) decodeInt64(code int64, raw any) (any, error) {
	if code < math.MinInt32 || code > math.MaxInt32 {
		return nil, &UnknownEnumValueError{EnumType: e.name, Value: raw}
	}
	return e.Name(int32(code))
}

// EnumRegistry agrupa os enums disponíveis por nome do tipo
type EnumRegistry struct {
	enums map[string]*Enum
}

// NewEnumRegistry cria um registro com os enums informados
func NewEnumRegistry(enums ...*Enum) *EnumRegistry {
	registry := &EnumRegistry{enums: make(map[string]*Enum, len(enums))}
	for _, enum := range enums {
		registry.enums[enum.name] = enum
	}
	return registry
}

// GetType retorna o enum registrado com o nome informado
func (r *EnumRegistry) GetType(name string) (*Enum, error) {
	enum, ok := r.enums[name]
	if !ok {
		return nil, fmt.Errorf("tipo de enum não registrado: %s", name)
	}
	return enum, nil
}

// DefaultEnumRegistry retorna os enums usados pelos relatórios
func DefaultEnumRegistry() *EnumRegistry {
	return NewEnumRegistry(
		NewEnum(CampaignStatusEnum, map[int32]string{
			0: "UNSPECIFIED",
			1: "UNKNOWN",
			2: "ENABLED",
			3: "PAUSED",
			4: "REMOVED",
		}),
		NewEnum(AdvertisingChannelTypeEnum, map[int32]string{
			0:  "UNSPECIFIED",
			1:  "UNKNOWN",
			2:  "SEARCH",
			3:  "DISPLAY",
			4:  "SHOPPING",
			5:  "HOTEL",
			6:  "VIDEO",
			7:  "MULTI_CHANNEL",
			8:  "LOCAL",
			9:  "SMART",
			10: "PERFORMANCE_MAX",
			11: "LOCAL_SERVICES",
			12: "DISCOVERY",
			13: "TRAVEL",
			14: "DEMAND_GEN",
		}),
	)
}
