package audit

import (
	"go.uber.org/zap"
)

// Logger writes audit events as structured log lines on a dedicated
// "audit" logger, separate from request logs.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) error {
	fields := []zap.Field{
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
	}
	if ev.EntityID != nil {
		fields = append(fields, zap.Int64("entity_id", *ev.EntityID))
	}
	if ev.ActorType != "" {
		fields = append(fields, zap.String("actor_type", ev.ActorType))
	}
	if ev.ActorID != nil {
		fields = append(fields, zap.Int64("actor_id", *ev.ActorID))
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	l.log.Info("audit event", fields...)
	return nil
}
