// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
)

var orchestrator core.Orchestrator

type APIServerHTTP struct {
	server *http.Server
}

func NewHTTPServer(p core.Orchestrator, address, port string, writeTimeout time.Duration) *APIServerHTTP {
	orchestrator = p

	apiServer := &APIServerHTTP{
		server: &http.Server{
			Addr:         net.JoinHostPort(address, port),
			Handler:      NewRouter(),
			ReadTimeout:  config.HTTPTimeout,
			WriteTimeout: writeTimeout,
		},
	}

	ctx := GenerateRequestContext(context.Background(), "", ContextSourceInternal, WorkflowNone, LogLayerRESTFrontend)
	Logc(ctx).WithField("address", apiServer.server.Addr).Info("Initializing HTTP REST frontend.")

	return apiServer
}

func (s *APIServerHTTP) Activate() error {
	go func() {
		ctx := GenerateRequestContext(context.Background(), "", ContextSourceInternal, WorkflowNone,
			LogLayerRESTFrontend)
		Logc(ctx).WithField("address", s.server.Addr).Info("Activating HTTP REST frontend.")

		err := s.server.ListenAndServe()
		if err == http.ErrServerClosed {
			Logc(ctx).WithField("address", s.server.Addr).Info("HTTP REST frontend server has closed.")
		} else if err != nil {
			Logc(ctx).Fatal(err)
		}
	}()
	return nil
}

func (s *APIServerHTTP) Deactivate() error {
	ctx := GenerateRequestContext(context.Background(), "", ContextSourceInternal, WorkflowNone, LogLayerRESTFrontend)
	Logc(ctx).WithField("address", s.server.Addr).Info("Deactivating HTTP REST frontend.")

	ctx, cancel := context.WithTimeout(ctx, config.HTTPTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *APIServerHTTP) GetName() string {
	return "HTTP REST"
}

func (s *APIServerHTTP) Version() string {
	return config.OrchestratorAPIVersion
}
