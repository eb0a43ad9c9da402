package logging

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.RWMutex
	logger = logrus.StandardLogger()
)

// SetLogger replaces the logger used by every package of the toolkit.
// Pass nil to reset to logrus.StandardLogger().
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the logger currently used by the toolkit.
func Logger() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// LoggerHelper carries the structured fields of one operation. The With
// methods return a new helper and leave the receiver untouched, so a base
// helper can be shared across the branches of a function.
type LoggerHelper struct {
	function string
	pkg      string
	fields   logrus.Fields
}

// NewLogger creates a logger helper tagged with the package and function name.
func NewLogger(pkg, function string) *LoggerHelper {
	return &LoggerHelper{
		function: function,
		pkg:      pkg,
		fields:   logrus.Fields{"package": pkg, "function": function},
	}
}

func (l *LoggerHelper) with(extra logrus.Fields) *LoggerHelper {
	fields := make(logrus.Fields, len(l.fields)+len(extra))
	for k, v := range l.fields {
		fields[k] = v
	}
	for k, v := range extra {
		fields[k] = v
	}
	return &LoggerHelper{function: l.function, pkg: l.pkg, fields: fields}
}

// WithCaller records the file, line and function of the code calling WithCaller.
func (l *LoggerHelper) WithCaller() *LoggerHelper {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return l
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
	}
	return l.with(logrus.Fields{
		"caller":      filepath.Base(file) + ":" + strconv.Itoa(line),
		"caller_func": name,
	})
}

// WithField returns a helper with one more field.
func (l *LoggerHelper) WithField(key string, value interface{}) *LoggerHelper {
	return l.with(logrus.Fields{key: value})
}

// WithFields returns a helper with the given fields added.
func (l *LoggerHelper) WithFields(fields logrus.Fields) *LoggerHelper {
	return l.with(fields)
}

// WithError returns a helper describing a failure: the error text, its kind
// and the step that failed.
func (l *LoggerHelper) WithError(err error, errorType, operation string) *LoggerHelper {
	msg := "<nil>"
	if err != nil {
		msg = err.Error()
	}
	return l.with(logrus.Fields{
		"error":      msg,
		"error_type": errorType,
		"operation":  operation,
	})
}

func (l *LoggerHelper) entry() *logrus.Entry {
	return Logger().WithFields(l.fields)
}

// Entry logs the start of an operation at debug level.
func (l *LoggerHelper) Entry(message string) {
	l.entry().Debug("enter " + l.function + ": " + message)
}

// Exit logs the end of an operation at debug level.
func (l *LoggerHelper) Exit() {
	l.entry().Debug("exit " + l.function)
}

func (l *LoggerHelper) Debug(message string) { l.entry().Debug(message) }

func (l *LoggerHelper) Info(message string) { l.entry().Info(message) }

func (l *LoggerHelper) Warn(message string) { l.entry().Warn(message) }

// SizeFields describes a sensitive buffer by its length only.
// Contents of keys, passwords and plaintexts never reach the log.
func SizeFields(name string, size int) logrus.Fields {
	return logrus.Fields{name + "_size": size}
}

// OperationFields builds the operation/status pair, merged with any extra fields.
func OperationFields(operation, status string, additional ...logrus.Fields) logrus.Fields {
	fields := logrus.Fields{"operation": operation, "status": status}
	for _, extra := range additional {
		for k, v := range extra {
			fields[k] = v
		}
	}
	return fields
}
