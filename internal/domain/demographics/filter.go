package demographics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type attributeKind int

const (
	kindNumeric attributeKind = iota
	kindCategorical
)

// Atributos reconhecidos do Population Store. Chaves fora dessa lista são
// ignoradas para manter compatibilidade com especificações futuras.
var attributeKinds = map[string]attributeKind{
	"age":            kindNumeric,
	"income":         kindNumeric,
	"sex":            kindCategorical,
	"education":      kindCategorical,
	"region":         kindCategorical,
	"employment":     kindCategorical,
	"marital_status": kindCategorical,
}

// Predicate é um predicado independente sobre um registro populacional.
// Match avalia o registro em memória; Condition/Args expressam o mesmo
// predicado como fragmento SQL sobre a coluna JSONB demographics.
type Predicate struct {
	Attribute string
	Match     func(demographics map[string]any) bool
	Condition string
	Args      []any
}

// CompiledFilter é o resultado da compilação de uma especificação demográfica.
// Predicates fica ordenado por atributo; lista vazia casa com tudo.
type CompiledFilter struct {
	Predicates []Predicate
	Warnings   []string
}

// MatchAll avalia a conjunção de todos os predicados sobre um registro.
func (f CompiledFilter) MatchAll(demographics map[string]any) bool {
	for _, p := range f.Predicates {
		if !p.Match(demographics) {
			return false
		}
	}
	return true
}

// Compile traduz a especificação demográfica do chamador em predicados
// executáveis. Restrições malformadas degradam para "sem restrição" e são
// registradas em Warnings em vez de falhar a requisição inteira.
func Compile(spec map[string]any) CompiledFilter {
	var f CompiledFilter

	keys := make([]string, 0, len(spec))
	for key := range spec {
		if _, ok := attributeKinds[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, attr := range keys {
		value := spec[attr]
		switch attributeKinds[attr] {
		case kindNumeric:
			pred, warn := compileRange(attr, value)
			if warn != "" {
				f.Warnings = append(f.Warnings, warn)
				continue
			}
			f.Predicates = append(f.Predicates, pred)
		case kindCategorical:
			pred, warn := compileEquality(attr, value)
			if warn != "" {
				f.Warnings = append(f.Warnings, warn)
				continue
			}
			f.Predicates = append(f.Predicates, pred)
		}
	}
	return f
}

// compileRange interpreta uma faixa inclusiva "lo-hi" para um atributo numérico.
func compileRange(attr string, value any) (Predicate, string) {
	raw, ok := value.(string)
	if !ok {
		return Predicate{}, fmt.Sprintf("%s: intervalo deve ser string \"lo-hi\", restrição ignorada", attr)
	}
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return Predicate{}, fmt.Sprintf("%s: intervalo %q malformado, restrição ignorada", attr, raw)
	}
	lo, errLo := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, errHi := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errLo != nil || errHi != nil {
		return Predicate{}, fmt.Sprintf("%s: intervalo %q não numérico, restrição ignorada", attr, raw)
	}
	if lo > hi {
		return Predicate{}, fmt.Sprintf("%s: intervalo %q invertido, restrição ignorada", attr, raw)
	}

	return Predicate{
		Attribute: attr,
		Match: func(demographics map[string]any) bool {
			n, ok := numericValue(demographics[attr])
			return ok && n >= float64(lo) && n <= float64(hi)
		},
		Condition: fmt.Sprintf("(demographics ->> '%s')::numeric BETWEEN ? AND ?", attr),
		Args:      []any{lo, hi},
	}, ""
}

// compileEquality interpreta igualdade escalar para um atributo categórico.
func compileEquality(attr string, value any) (Predicate, string) {
	want, ok := stringValue(value)
	if !ok {
		return Predicate{}, fmt.Sprintf("%s: valor de igualdade deve ser escalar, restrição ignorada", attr)
	}

	return Predicate{
		Attribute: attr,
		Match: func(demographics map[string]any) bool {
			got, ok := stringValue(demographics[attr])
			return ok && got == want
		},
		Condition: fmt.Sprintf("demographics ->> '%s' = ?", attr),
		Args:      []any{want},
	}, ""
}

// numericValue normaliza valores vindos de JSON decodificado para float64.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// stringValue normaliza escalares para comparação textual, espelhando o
// comportamento do operador ->> do Postgres sobre números JSON.
func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}
