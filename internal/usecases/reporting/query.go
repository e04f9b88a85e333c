package reporting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const opBuildQuery = "buildQuery"

var (
	identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)
	digitsPattern     = regexp.MustCompile(`^[0-9]+$`)
)

// Date é uma data literal GAQL no formato YYYY-MM-DD
type Date string

// QueryBuilder monta consultas GAQL (Google Ads Query Language).
// Os valores são passados como parâmetros e só viram texto depois de validados.
type QueryBuilder struct {
	fields   []string
	resource string
	builder  squirrel.SelectBuilder
}

// Select inicia uma consulta com os campos informados
func Select(fields ...string) QueryBuilder {
	return QueryBuilder{
		fields:  fields,
		builder: squirrel.Select(fields...).PlaceholderFormat(squirrel.Question),
	}
}

func (q QueryBuilder) From(resource string) QueryBuilder {
	q.resource = resource
	q.builder = q.builder.From(resource)
	return q
}

// WhereEq adiciona um predicado de igualdade
func (q QueryBuilder) WhereEq(field string, value any) QueryBuilder {
	q.fields = append(q.fields[:len(q.fields):len(q.fields)], field)
	q.builder = q.builder.Where(squirrel.Eq{field: value})
	return q
}

// WhereGt adiciona um predicado "maior que"
func (q QueryBuilder) WhereGt(field string, value any) QueryBuilder {
	q.fields = append(q.fields[:len(q.fields):len(q.fields)], field)
	q.builder = q.builder.Where(squirrel.Gt{field: value})
	return q
}

// WhereDateBetween restringe segments.date ao intervalo informado
func (q QueryBuilder) WhereDateBetween(start, end Date) QueryBuilder {
	q.builder = q.builder.Where(squirrel.Expr("segments.date BETWEEN ? AND ?", start, end))
	return q
}

func (q QueryBuilder) OrderBy(fields ...string) QueryBuilder {
	q.fields = append(q.fields[:len(q.fields):len(q.fields)], fields...)
	q.builder = q.builder.OrderBy(fields...)
	return q
}

// ToGAQL valida os identificadores e substitui os parâmetros pelos literais
func (q QueryBuilder) ToGAQL() (string, error) {
	if !identifierPattern.MatchString(q.resource) {
		return "", queryError(fmt.Errorf("recurso inválido: %q", q.resource))
	}
	for _, field := range q.fields {
		if !identifierPattern.MatchString(field) {
			return "", queryError(fmt.Errorf("campo inválido: %q", field))
		}
	}

	sql, args, err := q.builder.ToSql()
	if err != nil {
		return "", queryError(fmt.Errorf("erro ao construir a query: %w", err))
	}

	return bindLiterals(sql, args)
}

// bindLiterals substitui cada "?" pelo literal GAQL do argumento correspondente
func bindLiterals(sql string, args []any) (string, error) {
	var out strings.Builder
	next := 0

	for _, r := range sql {
		if r != '?' {
			out.WriteRune(r)
			continue
		}
		if next >= len(args) {
			return "", queryError(fmt.Errorf("parâmetros insuficientes para a query"))
		}

		literal, err := renderLiteral(args[next])
		if err != nil {
			return "", queryError(err)
		}
		out.WriteString(literal)
		next++
	}

	if next != len(args) {
		return "", queryError(fmt.Errorf("parâmetros sobrando na query: %d", len(args)-next))
	}

	return out.String(), nil
}

func renderLiteral(value any) (string, error) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case Date:
		if _, err := time.Parse(time.DateOnly, string(v)); err != nil {
			return "", fmt.Errorf("data inválida: %q", string(v))
		}
		return "'" + string(v) + "'", nil
	case string:
		return quote(v), nil
	default:
		return "", fmt.Errorf("tipo de parâmetro não suportado: %T", value)
	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

func queryError(err error) error {
	return domain.NewReportError(domain.ErrQuery, opBuildQuery, err)
}

// NormalizeCustomerID aceita "123-456-7890" ou "1234567890" e devolve apenas os dígitos
func NormalizeCustomerID(customerID string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(customerID), "-", "")
	if !digitsPattern.MatchString(normalized) {
		return "", queryError(fmt.Errorf("ID de conta inválido: %q", customerID))
	}
	return normalized, nil
}

// ParseID valida um identificador numérico (campanha, grupo de anúncios)
func ParseID(value string) (int64, error) {
	if !digitsPattern.MatchString(value) {
		return 0, queryError(fmt.Errorf("ID inválido: %q", value))
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, queryError(fmt.Errorf("ID inválido: %q", value))
	}
	return id, nil
}

// ParseDate valida uma data no formato YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, queryError(fmt.Errorf("data inválida: %q", value))
	}
	return date, nil
}
