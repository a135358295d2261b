package logger

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// normalLogSize is a typical log message size, used to preallocate the
// message buffer.
const normalLogSize = 512

// Loggers per subsystem. A single backend logger is created and all subsystem
// loggers created from it will write to the backend. When adding new
// subsystems, declare a package-level `log` variable initialized with
// RegisterSubSystem.
//
// Loggers can not be used before the backend has been started with InitLog
// or InitLogStdout. This must be performed early during application startup.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = NewBackend()

	// subsystemLoggers maps each subsystem identifier to its associated logger.
	subsystemLoggers      = make(map[string]*Logger)
	subsystemLoggersMutex sync.Mutex
)

// RegisterSubSystem registers a new subsystem logger. It should be called in
// a package-level variable initialization. If the subsystem is already
// registered, the existing logger is returned.
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	logger, ok := subsystemLoggers[subsystem]
	if !ok {
		logger = backendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

// SupportedSubsystems returns a sorted slice of the registered subsystems.
func SupportedSubsystems() []string {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsystem := range subsystemLoggers {
		subsystems = append(subsystems, subsystem)
	}
	sort.Strings(subsystems)
	return subsystems
}

// InitLog attaches log file and error log file to the backend log, attaches
// stdout to the backend log on the info level, and starts the backend.
func InitLog(logFile, errLogFile string) {
	err := backendLog.AddLogWriter(os.Stdout, LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stdout to the logger: %s", err)
		os.Exit(1)
	}
	err = backendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s", logFile, LevelTrace, err)
		os.Exit(1)
	}
	err = backendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s", errLogFile, LevelWarn, err)
		os.Exit(1)
	}
	err = backendLog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the logger: %s ", err)
		os.Exit(1)
	}
}

// SetLogLevel sets the logging level for the provided subsystem. Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, level Level) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all registered subsystem loggers to the
// passed level.
func SetLogLevels(level Level) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

// ParseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly. An appropriate error is returned if anything is
// invalid.
//
// The debug level can be a global level (e.g. "debug") or a comma-separated
// list of subsystem=level pairs (e.g. "FKCH=trace,MINE=debug").
func ParseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		level, ok := LevelFromString(debugLevel)
		if !ok {
			str := "The specified debug level [%s] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		SetLogLevels(level)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "The specified debug level contains an invalid subsystem/level pair [%s]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsystemID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsystemID]; !exists {
			str := "The specified subsystem [%s] is invalid -- supported subsystems %s"
			return fmt.Errorf(str, subsystemID, SupportedSubsystems())
		}

		// Validate log level.
		level, ok := LevelFromString(logLevel)
		if !ok {
			str := "The specified debug level [%s] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		SetLogLevel(subsystemID, level)
	}

	return nil
}

// Logger is a subsystem logger for a Backend.
type Logger struct {
	lvl       Level // lvl is the log level. It must only be accessed atomically.
	tag       string
	b         *Backend
	writeChan chan<- logEntry
}

type logEntry struct {
	log   []byte
	level Level
}

// Trace formats a message using the default formats for its operands, prepends
// the prefix as necessary, and writes to the log with LevelTrace.
func (l *Logger) Trace(args ...interface{}) {
	l.Write(LevelTrace, args...)
}

// Tracef formats a message according to a format specifier, prepends the
// prefix as necessary, and writes to the log with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Writef(LevelTrace, format, args...)
}

// Debug formats a message using the default formats for its operands, prepends
// the prefix as necessary, and writes to the log with LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	l.Write(LevelDebug, args...)
}

// Debugf formats a message according to a format specifier, prepends the
// prefix as necessary, and writes to the log with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Writef(LevelDebug, format, args...)
}

// Info formats a message using the default formats for its operands, prepends
// the prefix as necessary, and writes to the log with LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	l.Write(LevelInfo, args...)
}

// Infof formats a message according to a format specifier, prepends the
// prefix as necessary, and writes to the log with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Writef(LevelInfo, format, args...)
}

// Warn formats a message using the default formats for its operands, prepends
// the prefix as necessary, and writes to the log with LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	l.Write(LevelWarn, args...)
}

// Warnf formats a message according to a format specifier, prepends the
// prefix as necessary, and writes to the log with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Writef(LevelWarn, format, args...)
}

// Error formats a message using the default formats for its operands, prepends
// the prefix as necessary, and writes to the log with LevelError.
func (l *Logger) Error(args ...interface{}) {
	l.Write(LevelError, args...)
}

// Errorf formats a message according to a format specifier, prepends the
// prefix as necessary, and writes to the log with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Writef(LevelError, format, args...)
}

// Critical formats a message using the default formats for its operands,
// prepends the prefix as necessary, and writes to the log with LevelCritical.
func (l *Logger) Critical(args ...interface{}) {
	l.Write(LevelCritical, args...)
}

// Criticalf formats a message according to a format specifier, prepends the
// prefix as necessary, and writes to the log with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Writef(LevelCritical, format, args...)
}

// Write formats a message using the default formats for its operands and
// writes it to the log with the given level.
func (l *Logger) Write(logLevel Level, args ...interface{}) {
	if l.Level() <= logLevel {
		l.print(logLevel, args...)
	}
}

// Writef formats a message according to a format specifier and writes it to
// the log with the given level.
func (l *Logger) Writef(logLevel Level, format string, args ...interface{}) {
	if l.Level() <= logLevel {
		l.printf(logLevel, format, args...)
	}
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(logLevel))
}

// Backend returns the backend of the logger.
func (l *Logger) Backend() *Backend {
	return l.b
}

// printf outputs a log message to the backend's writers. It formats the
// message according to the format specifier.
func (l *Logger) printf(lvl Level, format string, args ...interface{}) {
	t := time.Now() // get as early as possible

	var file string
	var line int
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line = callsite(l.b.flag)
	}

	buf := make([]byte, 0, normalLogSize)
	bytesBuf := bytes.NewBuffer(buf)
	formatHeader(bytesBuf, t, lvl.String(), l.tag, file, line)
	fmt.Fprintf(bytesBuf, format, args...)
	bytesBuf.WriteString("\n")

	l.writeChan <- logEntry{bytesBuf.Bytes(), lvl}
}

// print outputs a log message to the backend's writers. It formats the
// message using the default formats for its operands.
func (l *Logger) print(lvl Level, args ...interface{}) {
	t := time.Now() // get as early as possible

	var file string
	var line int
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line = callsite(l.b.flag)
	}

	buf := make([]byte, 0, normalLogSize)
	bytesBuf := bytes.NewBuffer(buf)
	formatHeader(bytesBuf, t, lvl.String(), l.tag, file, line)
	fmt.Fprintln(bytesBuf, args...)

	l.writeChan <- logEntry{bytesBuf.Bytes(), lvl}
}

// defaultCallsiteSkipDepth skips runtime.Caller, callsite, print/printf and
// Write/Writef to land on the logging call site.
const defaultCallsiteSkipDepth = 4

// callsite returns the file name and line number of the call site to the
// subsystem logger.
func callsite(flag uint32) (string, int) {
	_, file, line, ok := runtime.Caller(defaultCallsiteSkipDepth)
	if !ok {
		return "<unknown>", 0
	}
	if flag&LogFlagShortFile != 0 {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if os.IsPathSeparator(file[i]) {
				short = file[i+1:]
				break
			}
		}
		file = short
	}
	return file, line
}

// formatHeader writes a log header to the passed buffer in the following
// format:
//     2009-01-23 01:23:01.123 [LVL] TAG: log message
// If the callsite is included it is appended after the tag:
//     2009-01-23 01:23:01.123 [LVL] TAG main.go:123: log message
func formatHeader(buf *bytes.Buffer, t time.Time, lvl, tag, file string, line int) {
	buf.WriteString(t.Format("2006-01-02 15:04:05.000"))
	buf.WriteString(" [")
	buf.WriteString(lvl)
	buf.WriteString("] ")
	buf.WriteString(tag)
	if file != "" {
		buf.WriteString(" ")
		buf.WriteString(file)
		buf.WriteString(":")
		fmt.Fprintf(buf, "%d", line)
	}
	buf.WriteString(": ")
}
