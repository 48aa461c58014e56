package state

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Form valores crudos de un formulario (tal como llegan del cliente). Los campos
// numéricos ausentes o no numéricos valen 0.
type Form map[string]any

// Has indica si el formulario trae la clave.
func (f Form) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Int coerciona a entero.
func (f Form) Int(key string) int {
	return int(f.Int64(key))
}

// Int64 coerciona a entero de 64 bits. El texto se lee siempre en base 10 ("010" = 10).
func (f Form) Int64(key string) int64 {
	n, err := toInt64(f[key])
	if err != nil {
		return 0
	}
	return n
}

func toInt64(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return cast.ToInt64E(v)
	}
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	// "10.0" vale 10; "10.5" no es entero
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%q no es un entero", s)
	}
	return d.IntPart(), nil
}

// OptionalID devuelve nil si la clave falta o no es un id positivo.
func (f Form) OptionalID(key string) *int64 {
	if n := f.Int64(key); n > 0 {
		return &n
	}
	return nil
}

// Money coerciona a decimal: texto con coma o punto decimal, o cualquier número.
func (f Form) Money(key string) decimal.Decimal {
	switch v := f[key].(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v), ",", "."))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		x, err := cast.ToFloat64E(v)
		if err != nil {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	}
}

// String devuelve el texto recortado ("" si falta).
func (f Form) String(key string) string {
	return strings.TrimSpace(cast.ToString(f[key]))
}

// Strings acepta una lista o un texto separado por comas.
func (f Form) Strings(key string) []string {
	var raw []string
	if s, ok := f[key].(string); ok {
		raw = strings.Split(s, ",")
	} else {
		raw = cast.ToStringSlice(f[key])
	}
	out := []string{}
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Time coerciona una fecha; nil si falta o no se puede interpretar.
func (f Form) Time(key string) *time.Time {
	if !f.Has(key) || f[key] == nil || f.String(key) == "" {
		return nil
	}
	t, err := cast.ToTimeE(f[key])
	if err != nil {
		return nil
	}
	return &t
}

// Forms lista de subformularios (líneas de pedido).
func (f Form) Forms(key string) []Form {
	var out []Form
	switch v := f[key].(type) {
	case []Form:
		return v
	case []map[string]any:
		for _, m := range v {
			out = append(out, Form(m))
		}
	case []any:
		for _, it := range v {
			m, err := cast.ToStringMapE(it)
			if err == nil {
				out = append(out, Form(m))
			}
		}
	}
	return out
}
