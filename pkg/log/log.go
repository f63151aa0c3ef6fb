package log

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger encapsula logrus para que handlers e middlewares carreguem o ID de correlação
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

const (
	// CorrelationIDKey guarda o ID de correlação da requisição
	CorrelationIDKey contextKey = "correlation_id"
	// OperatorKey guarda o ID do operador autenticado
	OperatorKey contextKey = "operator_id"

	correlationIDField = "correlation_id"
	operatorField      = "user_id"
)

var development atomic.Bool

func init() {
	development.Store(true)
}

// SetEnvironment define se os logs usam o formato enxuto de desenvolvimento
func SetEnvironment(env string) {
	switch strings.ToLower(env) {
	case "", "development", "dev", "local":
		development.Store(true)
	default:
		development.Store(false)
	}
}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	return development.Load()
}

type logger struct {
	entry *logrus.Entry
}

// L é a instância global usada pelos middlewares
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// relevantInDevelopment filtra os campos de rastreabilidade que poluem o console local
func relevantInDevelopment(key string) bool {
	switch key {
	case correlationIDField, "method", "path", "status_code", "duration_ms", "error", "country":
		return true
	}
	return strings.HasPrefix(key, "user_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !relevantInDevelopment(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	relevant := make(logrus.Fields)
	for k, v := range fields {
		if relevantInDevelopment(k) {
			relevant[k] = v
		}
	}
	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext anexa o ID de correlação e o operador, quando presentes
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	var out Logger = l
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		out = out.WithField(correlationIDField, correlationID)
	}
	if operatorID, ok := ctx.Value(OperatorKey).(string); ok {
		out = out.WithField(operatorField, operatorID)
	}
	return out
}

func (l *logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithOperator registra no contexto quem disparou a requisição
func WithOperator(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, OperatorKey, userID)
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
