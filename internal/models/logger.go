package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold promotes a query from debug to warn level.
const slowQueryThreshold = 200 * time.Millisecond

// dbLogger routes gorm log output through zerolog so database logs carry the
// same format as the rest of the backend.
type dbLogger struct {
	log zerolog.Logger
}

// LogMode is a no-op, levels are controlled through zerolog's global level.
func (l dbLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l dbLogger) Info(_ context.Context, format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l dbLogger) Warn(_ context.Context, format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l dbLogger) Error(_ context.Context, format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Trace logs every executed statement. Failed queries log as errors, except
// for the expected not-found case.
func (l dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	event := l.log.Debug()
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event = l.log.Error().Err(err)
	case elapsed > slowQueryThreshold:
		event = l.log.Warn()
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("database query")
}
