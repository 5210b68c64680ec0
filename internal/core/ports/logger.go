package ports

import "go.trai.ch/sdkres/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// MessageLogger is the logging sink handed to resolvers through the ResolverContext.
type MessageLogger interface {
	LogMessage(msg string, importance domain.MessageImportance)
	LogWarning(msg string)
}
