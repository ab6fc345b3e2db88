package directory

import "context"

// NamesRepository интерфейс справочника имен
type NamesRepository interface {
	ListNames(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
