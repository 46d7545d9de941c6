// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"strings"
)

// Header is a single name/value pair of an HTTP header.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered sequence of header pairs. It is the only header
// representation used by the authentication core.
type Headers []Header

// HeadersFromHTTP normalizes an [http.Request]'s headers into [Headers].
//
// Go strips the Host header from r.Header and exposes it as r.Host, so it is
// appended explicitly. Names are canonicalized with
// [http.CanonicalHeaderKey].
func HeadersFromHTTP(r *http.Request) Headers {
	headers := make(Headers, 0, len(r.Header)+1)
	if r.Host != "" {
		headers = append(headers, Header{Name: "Host", Value: r.Host})
	}
	for name, values := range r.Header {
		for _, value := range values {
			headers = append(headers, Header{Name: http.CanonicalHeaderKey(name), Value: value})
		}
	}
	return headers
}

// Get returns the first value for name (case-insensitive) or an empty string.
func (h Headers) Get(name string) string {
	for _, header := range h {
		if strings.EqualFold(header.Name, name) {
			return header.Value
		}
	}
	return ""
}

// Values returns every value for name (case-insensitive) in order.
func (h Headers) Values(name string) []string {
	var values []string
	for _, header := range h {
		if strings.EqualFold(header.Name, name) {
			values = append(values, header.Value)
		}
	}
	return values
}

// Add appends a header pair.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Header{Name: name, Value: value})
}

// WriteTo appends every pair to an [http.Header].
func (h Headers) WriteTo(dst http.Header) {
	for _, header := range h {
		dst.Add(header.Name, header.Value)
	}
}
