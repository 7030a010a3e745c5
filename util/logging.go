package util

import (
	"fmt"
	"log"

	"devt.de/krotik/common/datautil"
)

/*
Logger is the destination the interpreter writes Print/Debug output to.
Grammars never write to stdout directly; they go through a Logger so
embedding applications can capture, filter or discard trace output.
*/
type Logger interface {
	LogError(v ...interface{})
	LogInfo(v ...interface{})
	LogDebug(v ...interface{})
}

/*
LogLevel is the verbosity threshold a LevelLogger filters against.
*/
type LogLevel int

/*
Log levels, from least to most verbose.
*/
const (
	LogLevelError LogLevel = iota
	LogLevelInfo
	LogLevelDebug
)

/*
LevelLogger wraps a Logger and drops messages below the configured
verbosity threshold before they reach it.
*/
type LevelLogger struct {
	logger Logger
	level  LogLevel
}

/*
NewLevelLogger wraps logger with level-based filtering.
*/
func NewLevelLogger(logger Logger, level LogLevel) *LevelLogger {
	return &LevelLogger{logger: logger, level: level}
}

/*
Level returns the current filtering threshold.
*/
func (ll *LevelLogger) Level() LogLevel { return ll.level }

/*
LogError adds a new error log message; errors are never filtered.
*/
func (ll *LevelLogger) LogError(v ...interface{}) { ll.logger.LogError(v...) }

/*
LogInfo adds a new info log message, if the threshold allows it.
*/
func (ll *LevelLogger) LogInfo(v ...interface{}) {
	if ll.level >= LogLevelInfo {
		ll.logger.LogInfo(v...)
	}
}

/*
LogDebug adds a new debug log message, if the threshold allows it.
*/
func (ll *LevelLogger) LogDebug(v ...interface{}) {
	if ll.level >= LogLevelDebug {
		ll.logger.LogDebug(v...)
	}
}

/*
ConsoleLogger writes log messages via the standard log package (stderr
unless its output has been redirected).
*/
type ConsoleLogger struct {
	stdlog func(v ...interface{})
}

/*
NewConsoleLogger returns a console logger instance.
*/
func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{stdlog: log.Print}
}

func (cl *ConsoleLogger) LogError(v ...interface{}) { cl.stdlog(fmt.Sprintf("error: %v", fmt.Sprint(v...))) }
func (cl *ConsoleLogger) LogInfo(v ...interface{})  { cl.stdlog(fmt.Sprint(v...)) }
func (cl *ConsoleLogger) LogDebug(v ...interface{}) { cl.stdlog(fmt.Sprintf("debug: %v", fmt.Sprint(v...))) }

/*
NullLogger discards every log message. Useful for tests that care about
parse results, not trace output.
*/
type NullLogger struct{}

/*
NewNullLogger returns a null logger instance.
*/
func NewNullLogger() *NullLogger { return &NullLogger{} }

func (nl *NullLogger) LogError(v ...interface{}) {}
func (nl *NullLogger) LogInfo(v ...interface{})  {}
func (nl *NullLogger) LogDebug(v ...interface{}) {}

/*
MemoryLogger collects log messages into a bounded in-memory ring buffer,
letting a caller inspect the most recent N trace entries a parse
produced without needing to wire up a real sink first.
*/
type MemoryLogger struct {
	buf *datautil.RingBuffer
}

/*
NewMemoryLogger returns a memory logger retaining at most size entries.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{buf: datautil.NewRingBuffer(size)}
}

func (ml *MemoryLogger) LogError(v ...interface{}) {
	ml.buf.Add(fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (ml *MemoryLogger) LogInfo(v ...interface{}) {
	ml.buf.Add(fmt.Sprint(v...))
}

func (ml *MemoryLogger) LogDebug(v ...interface{}) {
	ml.buf.Add(fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}

/*
Entries returns every retained trace entry, oldest first.
*/
func (ml *MemoryLogger) Entries() []string {
	sl := ml.buf.Slice()
	ret := make([]string, len(sl))
	for i, e := range sl {
		ret[i] = e.(string)
	}
	return ret
}

/*
Reset clears the retained trace entries.
*/
func (ml *MemoryLogger) Reset() { ml.buf.Reset() }
