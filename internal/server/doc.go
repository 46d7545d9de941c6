// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the auth server's HTTP transport and its
// background workers.
//
// It owns their lifecycle: startup, signal handling, and graceful shutdown
// once the run context is cancelled or a stop signal arrives.
package server
