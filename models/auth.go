// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// AuthRequest is the transport-independent view of an inbound request that
// the request authenticator needs.
type AuthRequest struct {
	// Method is the HTTP method of the request.
	Method string

	// Headers are the request headers, including Host, Origin and Cookie.
	Headers Headers
}

// AuthRequestFromHTTP builds an [AuthRequest] from an [http.Request].
func AuthRequestFromHTTP(r *http.Request) AuthRequest {
	return AuthRequest{
		Method:  r.Method,
		Headers: HeadersFromHTTP(r),
	}
}

// SafeMethod reports whether the request method is not state-changing.
func (r AuthRequest) SafeMethod() bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
