package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env   string // development -> consola legible; resto -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger envoltorio de zerolog que se inyecta en servicios, stores y handlers.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger de la aplicación y lo instala como logger global de zerolog.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}
	l := build(w, cfg.Level)
	log.Logger = l.zl
	return l
}

// NewWriter crea un logger JSON sobre w sin tocar el global (tests, CLI).
func NewWriter(w io.Writer, level string) *Logger {
	return build(w, level)
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func build(w io.Writer, level string) *Logger {
	return &Logger{zl: zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()}
}

// ParseLevel interpreta el nivel; vacío o desconocido = info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Named fija el campo component (logistics, leads, meetings, state...).
func (l *Logger) Named(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

// Failure evento de error de backend con la operación y el motivo.
// Las funciones de servicio lo usan antes de devolver result.Err.
func (l *Logger) Failure(op string, err error) *zerolog.Event {
	return l.zl.Error().Err(err).Str("op", op)
}

// Rejected evento de entrada rechazada antes de llegar al backend.
func (l *Logger) Rejected(op string, err error) *zerolog.Event {
	return l.zl.Warn().Err(err).Str("op", op)
}

// Zerolog devuelve el logger interno.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
