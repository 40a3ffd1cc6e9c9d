package health

import (
	"context"
	"time"
)

// Pinger проверка соединения с БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
