package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned by Init when Log.AppName, the app field of every entry, is unset.
	ErrAppNameIsEmpty = errors.New("log: AppName is required")

	// ErrServiceNameIsEmpty is returned by Init when Log.ServiceName, the service label of log_statements_total, is unset.
	ErrServiceNameIsEmpty = errors.New("log: ServiceName is required")
)

// ErrorHandler reports entries zerolog failed to write on stderr.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "stixsettings: dropped log entry: %v\n", err)
}
