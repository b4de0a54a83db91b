// Copyright 2025 NetApp, Inc. All Rights Reserved.

package frontend

// Plugin is a client-facing surface served on top of the orchestrator.
type Plugin interface {
	Activate() error
	Deactivate() error
	GetName() string
	Version() string
}
