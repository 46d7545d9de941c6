// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// guest pages and actions
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Get("/signup", h.signupPage)

		r.Group(func(r chi.Router) {
			r.Use(h.withOriginCheck)
			r.Use(h.withRateLimit)
			r.Post("/login", h.login)
			r.Post("/signup", h.signup)
		})
	})

	// routes resolving the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/logout", h.logout)
		r.Get("/api/session", h.session)

		// pages requiring a user
		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)
			r.Get("/", h.indexPage)
			r.Get("/logout", h.logoutPage)
		})
	})

	router.Method("GET", "/metrics", promhttp.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
