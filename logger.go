package inix

import "github.com/tliron/commonlog"

// Logger receives diagnostic messages while a document is parsed.
type Logger interface {
	Log(message string)
}

// NopLogger discards every message.
type NopLogger struct{}

// Log implements Logger.
func (NopLogger) Log(string) {}

// CommonLogger forwards messages to a commonlog logger at debug level.
// Output depends on the commonlog backend configured by the program.
type CommonLogger struct {
	log commonlog.Logger
}

// NewCommonLogger returns a Logger backed by the commonlog logger called name.
func NewCommonLogger(name string) *CommonLogger {
	return &CommonLogger{log: commonlog.GetLogger(name)}
}

// Log implements Logger.
func (c *CommonLogger) Log(message string) {
	c.log.Debug(message)
}
