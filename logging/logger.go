// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var discardLogger = func() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetLevel(log.PanicLevel)
	return l
}()

// logEntry adapts a logrus entry to the LogEntry interface so that callers work with LogFields.
type logEntry struct {
	entry *log.Entry
}

func (l *logEntry) WithField(key string, value interface{}) LogEntry {
	return &logEntry{l.entry.WithField(key, value)}
}

func (l *logEntry) WithFields(fields LogFields) LogEntry {
	return &logEntry{l.entry.WithFields(log.Fields(fields))}
}

func (l *logEntry) WithError(err error) LogEntry {
	return &logEntry{l.entry.WithError(err)}
}

func (l *logEntry) Fatal(args ...interface{})                   { l.entry.Fatal(args...) }
func (l *logEntry) Fatalf(format string, args ...interface{})   { l.entry.Fatalf(format, args...) }
func (l *logEntry) Error(args ...interface{})                   { l.entry.Error(args...) }
func (l *logEntry) Errorf(format string, args ...interface{})   { l.entry.Errorf(format, args...) }
func (l *logEntry) Warn(args ...interface{})                    { l.entry.Warn(args...) }
func (l *logEntry) Warnf(format string, args ...interface{})    { l.entry.Warnf(format, args...) }
func (l *logEntry) Warning(args ...interface{})                 { l.entry.Warning(args...) }
func (l *logEntry) Warningf(format string, args ...interface{}) { l.entry.Warningf(format, args...) }
func (l *logEntry) Info(args ...interface{})                    { l.entry.Info(args...) }
func (l *logEntry) Infof(format string, args ...interface{})    { l.entry.Infof(format, args...) }
func (l *logEntry) Debug(args ...interface{})                   { l.entry.Debug(args...) }
func (l *logEntry) Debugf(format string, args ...interface{})   { l.entry.Debugf(format, args...) }
func (l *logEntry) Trace(args ...interface{})                   { l.entry.Trace(args...) }
func (l *logEntry) Tracef(format string, args ...interface{})   { l.entry.Tracef(format, args...) }

func (l *logEntry) Data(key string) (interface{}, bool) {
	v, ok := l.entry.Data[key]
	return v, ok
}

// Logc returns a log entry decorated with the request identity, workflow and log layer found in ctx.
func Logc(ctx context.Context) LogEntry {
	if ctx == nil {
		ctx = context.Background()
	}

	entry := log.WithFields(log.Fields{
		string(ContextKeyRequestID):     ctx.Value(ContextKeyRequestID),
		string(ContextKeyRequestSource): ctx.Value(ContextKeyRequestSource),
	})

	if val, ok := ctx.Value(ContextKeyWorkflow).(Workflow); ok {
		entry = entry.WithField(string(ContextKeyWorkflow), val)
	}
	if val, ok := ctx.Value(ContextKeyLogLayer).(LogLayer); ok {
		entry = entry.WithField(string(ContextKeyLogLayer), val)
	}
	if val := ctx.Value(auditKey); val != nil {
		entry = entry.WithField(auditKey, val)
	}

	return &logEntry{entry}
}

// Logd returns a log entry for driver method tracing.  When tracing is disabled for the driver, the
// returned entry discards everything written to it.
func Logd(ctx context.Context, driverName string, logTrace bool) LogEntry {
	if !logTrace {
		return &logEntry{log.NewEntry(discardLogger)}
	}
	return Logc(ctx).WithField(string(ContextKeyLogLayer), driverName)
}

// GenerateRequestContext returns a context carrying a request ID and source.  Values already present in
// the parent context take precedence; a missing request ID is generated.
func GenerateRequestContext(
	ctx context.Context, requestID, requestSource string, workflow Workflow, logLayer LogLayer,
) context.Context {
	if ctx == nil {
		ctx = context.Background()
	} else {
		if v := ctx.Value(ContextKeyRequestID); v != nil {
			requestID = fmt.Sprint(v)
		}
		if v := ctx.Value(ContextKeyRequestSource); v != nil {
			requestSource = fmt.Sprint(v)
		}
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if requestSource == "" {
		requestSource = "Unknown"
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, ContextKeyRequestSource, requestSource)
	if workflow != WorkflowNone {
		ctx = context.WithValue(ctx, ContextKeyWorkflow, workflow)
	}
	if logLayer != LogLayerNone && logLayer != "" {
		ctx = context.WithValue(ctx, ContextKeyLogLayer, logLayer)
	}
	return ctx
}

// GenerateRequestContextForLayer sets the log layer on an existing context.
func GenerateRequestContextForLayer(ctx context.Context, logLayer LogLayer) context.Context {
	return context.WithValue(ctx, ContextKeyLogLayer, logLayer)
}
