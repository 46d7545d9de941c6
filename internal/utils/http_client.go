// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client bound to one
// auth server. It embeds *resty.Client to expose all of its methods directly.
//
// Redirects are not followed and no cookie jar is kept, so callers see the
// Location and Set-Cookie headers of every response as sent.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.SubmitForm(ctx, "/login", map[string]string{
//	    "username": "john",
//	    "password": "secret-password",
//	})
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient sending requests to baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(nil).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &HTTPClient{Client: client}
}

// SubmitForm posts form as application/x-www-form-urlencoded to path,
// attaching the given cookies.
func (c *HTTPClient) SubmitForm(ctx context.Context, path string, form map[string]string, cookies ...*http.Cookie) (*resty.Response, error) {
	return c.R().
		SetContext(ctx).
		SetFormData(form).
		SetCookies(cookies).
		Post(path)
}

// Get fetches path, attaching the given cookies.
func (c *HTTPClient) Get(ctx context.Context, path string, cookies ...*http.Cookie) (*resty.Response, error) {
	return c.R().
		SetContext(ctx).
		SetCookies(cookies).
		Get(path)
}
