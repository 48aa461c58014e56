package result

// Mutation forma de respuesta de borrados y cambios de estado.
// Success y Error son excluyentes: Error solo tiene contenido si Success es false.
type Mutation struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Row forma de respuesta de altas y modificaciones: Data nil implica Error definido.
type Row[T any] struct {
	Data  *T     `json:"data"`
	Error string `json:"error,omitempty"`
}

// ToMutation proyecta cualquier resultado a {success, error}.
func ToMutation[T any](r Result[T]) Mutation {
	if r.IsOk() {
		return Mutation{Success: true}
	}
	return Mutation{Success: false, Error: reasonOrDefault(r.Reason())}
}

// ToRow proyecta un resultado de fila a {data, error}. Un Ok sin fila se reporta
// como error para no devolver {data: null} sin explicación.
func ToRow[T any](r Result[*T]) Row[T] {
	if !r.IsOk() {
		return Row[T]{Error: reasonOrDefault(r.Reason())}
	}
	if r.Value() == nil {
		return Row[T]{Error: "sin datos"}
	}
	return Row[T]{Data: r.Value()}
}

// ToList proyecta un resultado de lectura a una secuencia, vacía ante error o nil.
func ToList[T any](r Result[[]T]) []T {
	if !r.IsOk() || r.Value() == nil {
		return []T{}
	}
	return r.Value()
}

func reasonOrDefault(s string) string {
	if s == "" {
		return "error desconocido"
	}
	return s
}
