// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks catalogue input before it reaches storage:
// usernames, video URLs and dates, comment bodies, list filters and partial
// updates. Each entity has its own [Validator] that dispatches on the model
// type it receives.
//
// The optional field names passed to Validate mark fields that must be
// present. Partial updates are validated with none, full replacements with
// every required field of the entity.
package validators

import "context"

// Validator validates a catalogue model. fields names the fields that must be
// set; values that are present are always checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
