// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled, a stop signal is received or the
// listener fails. Shutdown stops accepting requests and waits for in-flight
// ones until ctx expires.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
