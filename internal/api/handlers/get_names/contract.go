package get_names

import "context"

type DirectoryService interface {
	ListNames(ctx context.Context) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
