// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of user and recipe payloads before they
// reach the stores.
//
// Validators only check presence of required fields (blank after trimming
// counts as missing). Ownership and uniqueness are enforced by the stores.
package validators

import "context"

// Validator validates a payload. When fields are given, only those fields are
// checked; otherwise the validator's default set is used.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
