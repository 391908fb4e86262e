package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithUser tags log lines with the acting user's email
func (l *Logger) WithUser(email string) *Logger {
	if email == "" {
		email = "unknown"
	}
	return l.WithField("user", email)
}

// WithTenant tags log lines with the acting tenant's slug
func (l *Logger) WithTenant(slug string) *Logger {
	return l.WithField("tenant", slug)
}
