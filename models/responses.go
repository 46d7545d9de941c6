// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Submission statuses reported in [SubmissionReply].
const (
	SubmissionStatusError = "error"
)

// FormErrorsKey is the key under which form-level (not field-level) errors
// are reported in [SubmissionReply.Error].
const FormErrorsKey = ""

// SubmissionReply is the payload returned by a form action that did not
// succeed. Field errors are keyed by field name, form errors by
// [FormErrorsKey].
type SubmissionReply struct {
	// Status is always [SubmissionStatusError] for failed submissions.
	Status string `json:"status"`

	// InitialValue echoes the non-sensitive submitted values so the form can
	// be re-rendered. The password is never echoed.
	InitialValue map[string]string `json:"initialValue,omitempty"`

	// Error maps a field name to its messages.
	Error map[string][]string `json:"error"`
}

// NewSubmissionReply builds a failed reply for the submitted credentials.
func NewSubmissionReply(credentials Credentials, fieldErrors map[string][]string, formErrors ...string) SubmissionReply {
	errs := make(map[string][]string, len(fieldErrors)+1)
	for field, messages := range fieldErrors {
		errs[field] = append([]string(nil), messages...)
	}
	if len(formErrors) > 0 {
		errs[FormErrorsKey] = append(errs[FormErrorsKey], formErrors...)
	}

	return SubmissionReply{
		Status:       SubmissionStatusError,
		InitialValue: map[string]string{"username": credentials.Username},
		Error:        errs,
	}
}

// ErrorResponse is a plain error payload, e.g. `{"error":"No user to log out"}`.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionResponse is returned by the session endpoint for authorized requests.
type SessionResponse struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}
