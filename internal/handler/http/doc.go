// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes the login, signup and logout form actions, the pages that
// render those forms, the protected index page and the session endpoint.
// Cross-cutting concerns such as request tracing, access logging, session
// authentication, origin checking and login throttling are handled in this
// package before requests are delegated to the service layer.
package http
