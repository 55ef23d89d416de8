package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with request context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// FromGinContext creates a logger carrying the request's identity fields.
// The auth middleware sets email and user_id on authenticated requests; the
// request ID middleware sets request_id. Unauthenticated requests log with
// user "anonymous".
func FromGinContext(c *gin.Context) *Logger {
	log := New()

	user := "anonymous"
	if email := c.GetString("email"); email != "" {
		user = email
	} else if id, ok := c.Get("user_id"); ok {
		if userID, ok := id.(uuid.UUID); ok {
			user = userID.String()
		}
	}
	log.Entry = log.Entry.WithField("user", user)

	if requestID := c.GetString("request_id"); requestID != "" {
		log.Entry = log.Entry.WithField("request_id", requestID)
	}

	return log
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
