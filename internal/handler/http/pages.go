// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// credentialsPage is rendered by the login and signup pages.
type credentialsPage struct {
	Title      string
	Action     string
	SwitchText string
	SwitchLink string
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "credentials.html", credentialsPage{
		Title:      "Log in",
		Action:     "/login",
		SwitchText: "Create an account",
		SwitchLink: "/signup",
	})
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "credentials.html", credentialsPage{
		Title:      "Sign up",
		Action:     "/signup",
		SwitchText: "Log in instead",
		SwitchLink: "/login",
	})
}

// indexPage greets the authenticated user.
func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())
	h.render(w, r, "index.html", user)
}

func (h *Handler) logoutPage(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())
	h.render(w, r, "logout.html", user)
}

// render executes the template into a buffer first so a template error
// never leaves a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
