// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pmax-drivers/powermax/config"
)

const (
	TextFormat             = "text"
	JSONFormat             = "json"
	defaultTimestampFormat = time.RFC3339

	LogRoot              = "/var/log/" + config.OrchestratorName
	LogRotationThreshold = 10 // MB
	LogRotationBackups   = 5
	MaxLogEntryLength    = 64000
)

// InitLogOutput sets the writer logrus uses when no hooks are installed.
func InitLogOutput(output io.Writer) {
	log.SetOutput(output)
}

// InitLogging configures logging for the driver process.  Logs are written both to a log file as well as
// stdout/stderr.  Since logrus doesn't support multiple writers, each log stream is implemented as a hook.
func InitLogging(logName, logFormat, logDir string) error {
	// No output except for the hooks
	log.SetOutput(io.Discard)

	logConsoleHook, err := NewConsoleHook(logFormat)
	if err != nil {
		return fmt.Errorf("could not initialize logging to console: %v", err)
	}
	log.AddHook(logConsoleHook)

	if logName == "" {
		return nil
	}

	if logDir == "" {
		logDir = LogRoot
	}
	logFileHook, err := NewFileHook(logDir, logName, logFormat)
	if err != nil {
		return fmt.Errorf("could not initialize logging to file: %v", err)
	}
	log.AddHook(logFileHook)

	// Remind users where the log file lives
	log.WithFields(log.Fields{
		"logLevel":        log.GetLevel().String(),
		"logFileLocation": logFileHook.GetLocation(),
		"buildTime":       config.BuildTime,
	}).Info("Initialized logging.")

	return nil
}

// InitLogLevel configures the logging level.  The debug flag takes precedence if set,
// otherwise the logLevel flag (trace, debug, info, warn, error, fatal) is used.
func InitLogLevel(debug bool, logLevel string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
		return nil
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

// InitLogFormat configures the log format, allowing a choice of text or JSON.
func InitLogFormat(logFormat string) error {
	switch logFormat {
	case TextFormat:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case JSONFormat:
		log.SetFormatter(&JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", logFormat)
	}
	return nil
}

func newFormatter(logFormat string, plain bool) (log.Formatter, error) {
	switch logFormat {
	case TextFormat:
		if plain {
			return &PlainTextFormatter{}, nil
		}
		return &log.TextFormatter{FullTimestamp: true}, nil
	case JSONFormat:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}
}

// ConsoleHook sends log entries to stdout/stderr.
type ConsoleHook struct {
	formatter log.Formatter
	stdout    io.Writer
	stderr    io.Writer
}

// NewConsoleHook creates a new log hook for writing to stdout/stderr.
func NewConsoleHook(logFormat string) (*ConsoleHook, error) {
	formatter, err := newFormatter(logFormat, false)
	if err != nil {
		return nil, err
	}
	return &ConsoleHook{formatter: formatter, stdout: os.Stdout, stderr: os.Stderr}, nil
}

func (hook *ConsoleHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *ConsoleHook) Fire(entry *log.Entry) error {
	// Determine output stream
	var logWriter io.Writer
	switch entry.Level {
	case log.TraceLevel, log.DebugLevel, log.InfoLevel, log.WarnLevel:
		logWriter = hook.stdout
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		logWriter = hook.stderr
	default:
		return fmt.Errorf("unknown log level: %v", entry.Level)
	}

	lineBytes, err := hook.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read entry, %v", err)
		return err
	}
	return writeTruncated(logWriter, lineBytes)
}

func writeTruncated(w io.Writer, lineBytes []byte) error {
	if len(lineBytes) > MaxLogEntryLength {
		if _, err := w.Write(lineBytes[:MaxLogEntryLength]); err != nil {
			return err
		}
		_, err := w.Write([]byte("<truncated>\n"))
		return err
	}
	_, err := w.Write(lineBytes)
	return err
}

// FileHook sends log entries to a size-rotated file.
type FileHook struct {
	logFileLocation string
	formatter       log.Formatter
	writer          io.WriteCloser
	mutex           *sync.Mutex
}

// NewFileHook creates a new log hook for writing to a file under logDir.
func NewFileHook(logDir, logName, logFormat string) (*FileHook, error) {
	formatter, err := newFormatter(logFormat, true)
	if err != nil {
		return nil, err
	}

	// If the log directory doesn't exist, make it
	dir, err := os.Lstat(logDir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create log directory %v; %v", logDir, err)
		}
	}
	// If the log directory isn't a directory, return an error
	if dir != nil && !dir.IsDir() {
		return nil, fmt.Errorf("log path %v exists and is not a directory, please remove it", logDir)
	}

	logFileLocation := filepath.Join(logDir, logName+".log")

	return &FileHook{
		logFileLocation: logFileLocation,
		formatter:       formatter,
		writer: &lumberjack.Logger{
			Filename:   logFileLocation,
			MaxSize:    LogRotationThreshold,
			MaxBackups: LogRotationBackups,
			Compress:   true,
		},
		mutex: &sync.Mutex{},
	}, nil
}

func (hook *FileHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *FileHook) Fire(entry *log.Entry) error {
	lineBytes, err := hook.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read log entry. %v", err)
		return err
	}

	hook.mutex.Lock()
	defer hook.mutex.Unlock()
	return writeTruncated(hook.writer, lineBytes)
}

func (hook *FileHook) GetLocation() string {
	return hook.logFileLocation
}

// PlainTextFormatter is a formatter that does no coloring *and* does not insist on writing logs as key/value pairs.
type PlainTextFormatter struct {
	// TimestampFormat to use for display when a full timestamp is printed
	TimestampFormat string

	// The fields are sorted by default for a consistent output.
	DisableSorting bool
}

func (f *PlainTextFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b *bytes.Buffer
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}

	if !f.DisableSorting {
		sort.Strings(keys)
	}
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	prefixFieldClashes(entry.Data)

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	levelText := strings.ToUpper(entry.Level.String())[0:4]
	fmt.Fprintf(b, "%s[%s] %-44s ", levelText, entry.Time.Format(timestampFormat), entry.Message)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=", k)
		appendValue(b, entry.Data[k])
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func prefixFieldClashes(data log.Fields) {
	if t, ok := data["time"]; ok {
		data["fields.time"] = t
	}
	if m, ok := data["msg"]; ok {
		data["fields.msg"] = m
	}
	if l, ok := data["level"]; ok {
		data["fields.level"] = l
	}
}

func needsQuoting(text string) bool {
	for _, ch := range text {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.') {
			return true
		}
	}
	return false
}

func appendValue(b *bytes.Buffer, value interface{}) {
	switch value := value.(type) {
	case string:
		if !needsQuoting(value) {
			b.WriteString(value)
		} else {
			fmt.Fprintf(b, "%q", value)
		}
	case error:
		errmsg := value.Error()
		if !needsQuoting(errmsg) {
			b.WriteString(errmsg)
		} else {
			fmt.Fprintf(b, "%q", errmsg)
		}
	default:
		fmt.Fprint(b, value)
	}
}

type JSONFormatter struct {
	// TimestampFormat sets the format used for marshaling timestamps.
	TimestampFormat string
	// DisableTimestamp allows disabling automatic timestamps in output
	DisableTimestamp bool
	// PrettyPrint will indent all json logs
	PrettyPrint bool
}

func (f *JSONFormatter) Format(entry *log.Entry) ([]byte, error) {
	data := make(map[string]string, len(entry.Data)+4)
	for k, v := range entry.Data {
		switch v := v.(type) {
		case error:
			// Otherwise errors are ignored by `encoding/json`
			data[k] = v.Error()
		default:
			data[k] = fmt.Sprintf("%+v", v)
		}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	if !f.DisableTimestamp {
		data["@timestamp"] = entry.Time.Format(timestampFormat)
	}
	data["message"] = entry.Message
	data["level"] = entry.Level.String()

	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	encoder := json.NewEncoder(b)
	if f.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON, %v", err)
	}

	return b.Bytes(), nil
}
