// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the notes application: the
// password policy and the validators of registration, password change and
// note requests.
//
// Validators accept an optional list of field names that restricts
// validation to those fields, e.g.
//
//	v.Validate(ctx, req, validators.FieldPassword)
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
