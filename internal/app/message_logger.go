package app

import (
	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
)

// messageLogger returns the sink handed to resolvers. Loggers that do not speak
// importance levels are adapted: low importance becomes Debug, everything else Info.
func messageLogger(log ports.Logger) ports.MessageLogger {
	if ml, ok := log.(ports.MessageLogger); ok {
		return ml
	}
	return loggerSink{log: log}
}

type loggerSink struct {
	log ports.Logger
}

func (s loggerSink) LogMessage(msg string, importance domain.MessageImportance) {
	if importance == domain.ImportanceLow {
		s.log.Debug(msg)
		return
	}
	s.log.Info(msg)
}

func (s loggerSink) LogWarning(msg string) {
	s.log.Warn(msg)
}
