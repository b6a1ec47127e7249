package core

import (
	"context"
	"log/slog"
)

type OptionKey string

const (
	LoggerOptionKey   OptionKey = "logger_options"
	ObserverOptionKey OptionKey = "observer_options"
)

type LoggerOptions struct {
	Logger *slog.Logger
}

type ObserverOptions struct {
	Observer *Observer
}

var discard = slog.New(slog.DiscardHandler)

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithObserver(ctx context.Context, observer *Observer) context.Context {
	return context.WithValue(ctx, ObserverOptionKey, ObserverOptions{Observer: observer})
}

// GetLogger returns the logger carried by ctx, defaultLogger when there is
// none, and a discarding logger when both are nil.
func GetLogger(ctx context.Context, defaultLogger *slog.Logger) *slog.Logger {
	if ctx != nil {
		options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
		if ok && options.Logger != nil {
			return options.Logger
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return discard
}

// GetObserver returns the observer carried by ctx or nil.
func GetObserver(ctx context.Context) *Observer {
	if ctx == nil {
		return nil
	}
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	if ok {
		return options.Observer
	}
	return nil
}
