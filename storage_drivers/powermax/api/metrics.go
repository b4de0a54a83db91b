// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pmax-drivers/powermax/config"
)

var (
	apiOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "unisphere",
			Name:      "ops_total",
			Help:      "The total number of Unisphere REST calls",
		},
		[]string{"method", "route", "status"},
	)
	apiOpsSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "unisphere",
			Name:      "ops_seconds",
			Help:      "The time spent waiting for Unisphere REST calls",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"method", "route"},
	)
	apiFailoversTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "unisphere",
			Name:      "failovers_total",
			Help:      "The total number of switches to an alternate Unisphere endpoint",
		},
	)
	apiJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "unisphere",
			Name:      "jobs_total",
			Help:      "The total number of asynchronous Unisphere jobs waited on, by outcome",
		},
		[]string{"status"},
	)
)
