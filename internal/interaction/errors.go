// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interaction

import "errors"

var (
	// ErrValidation is returned when a required text field is blank.
	ErrValidation = errors.New("required field is empty")
	// ErrInvalidVote is returned for a vote direction the list does not accept.
	ErrInvalidVote = errors.New("invalid vote direction")
)
