// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	. "github.com/pmax-drivers/powermax/logging"
)

const requestIDHeader = "X-Request-ID"

// Logger tags each request with a request ID, logs it, audits mutating calls and records REST metrics.
func Logger(inner http.Handler, routeName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx := GenerateRequestContext(r.Context(), requestID, ContextSourceREST, WorkflowNone, LogLayerRESTFrontend)
		r = r.WithContext(ctx)
		w.Header().Set(requestIDHeader, requestID)

		logFields := LogFields{
			"method": r.Method,
			"uri":    r.RequestURI,
			"route":  routeName,
		}
		Logc(ctx).WithFields(logFields).Debug("REST API call received.")
		if r.Method != http.MethodGet {
			Audit().Logf(ctx, AuditRESTAccess, logFields, "%s %s", r.Method, r.RequestURI)
		}

		inner.ServeHTTP(w, r)

		duration := time.Since(start)
		restOpsTotal.WithLabelValues(r.Method, routeName).Inc()
		restOpsSecondsTotal.WithLabelValues(r.Method, routeName).Observe(duration.Seconds())

		logFields["duration"] = duration
		Logc(ctx).WithFields(logFields).Debug("REST API call complete.")
	})
}
