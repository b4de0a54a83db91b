// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kr/secureheader"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/pmax-drivers/powermax/config"
)

// NewRouter is used to set up the HTTP endpoints of the frontend
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	for _, route := range routes {
		var handler http.Handler

		handler = route.HandlerFunc
		handler = Logger(handler, route.Name)

		router.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(handler)
	}
	router.Methods(http.MethodGet).Path(config.MetricsURL).Name("Metrics").Handler(promhttp.Handler())
	router.Use(rateLimiterMiddleware(rate.Limit(config.RESTRateLimit), config.RESTRateBurst))

	return secureHandler(router)
}

// secureHandler adds the standard security headers.  The frontend listens on plain HTTP, normally on
// loopback, so HTTPS redirection and HSTS are off.
func secureHandler(next http.Handler) http.Handler {
	secure := *secureheader.DefaultConfig
	secure.HTTPSRedirect = false
	secure.HSTS = false
	secure.Next = next
	return &secure
}
