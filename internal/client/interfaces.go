// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and returns when the command ends.
	Run(ctx context.Context, args []string) error
}

// VersionSource reports the server build. It is satisfied by the server
// adapter.
type VersionSource interface {
	Version(ctx context.Context) (models.VersionResponse, error)
}
