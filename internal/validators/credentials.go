// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of the
// credential fields. They match the form input names.
const (
	// FieldUsername targets Credentials.Username.
	FieldUsername = "username"

	// FieldPassword targets Credentials.Password.
	FieldPassword = "password"
)

// usernameRegexp is the character set allowed in usernames.
var usernameRegexp = regexp.MustCompile(`^[a-z0-9_-]+$`)

// credentialRules maps form field names to the struct field holding the
// value. The rule list itself is read from the field's validate tag.
var credentialRules = map[string]string{
	FieldUsername: "Username",
	FieldPassword: "Password",
}

// CredentialsValidator checks the shape of submitted usernames and passwords.
//
// Unlike validator.Struct, which stops at the first failing tag of a field,
// every tag is evaluated on its own so that all messages for a field are
// collected and reported together.
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator constructs a CredentialsValidator with the
// "username" rule registered.
func NewCredentialsValidator() Validator {
	validate := validator.New()
	// registration only fails on an empty tag or nil func
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})

	return &CredentialsValidator{validate: validate}
}

// Validate accepts models.Credentials or *models.Credentials. When fields is
// empty both username and password are checked. The returned error is a
// *ValidationError when any rule fails.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	value := reflect.ValueOf(credentials)
	result := &ValidationError{}

	for _, field := range fields {
		structField, ok := credentialRules[field]
		if !ok {
			return ErrUnknownField
		}

		sf, _ := value.Type().FieldByName(structField)
		tag := sf.Tag.Get("validate")
		fieldValue := value.FieldByName(structField).String()

		for _, message := range v.check(ctx, fieldValue, tag) {
			result.add(field, message)
		}
	}

	if result.empty() {
		return nil
	}
	return result
}

// check runs every rule of tag against value and returns one message per
// failing rule. An empty value only reports MessageRequired.
func (v *CredentialsValidator) check(ctx context.Context, value, tag string) []string {
	if value == "" {
		return []string{MessageRequired}
	}

	var messages []string
	for _, rule := range strings.Split(tag, ",") {
		if rule == "" {
			continue
		}

		err := v.validate.VarCtx(ctx, value, rule)
		if err == nil {
			continue
		}

		name, param, _ := strings.Cut(rule, "=")
		messages = append(messages, messageFor(name, param))
	}

	return messages
}

func messageFor(rule, param string) string {
	switch rule {
	case "min":
		return fmt.Sprintf(MessageTooShort, param)
	case "max":
		return fmt.Sprintf(MessageTooLong, param)
	default:
		return MessageInvalid
	}
}
