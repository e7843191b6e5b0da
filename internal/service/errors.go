// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidSchemaVersion is returned for a draft whose version is not
	// a MAJOR.MINOR.PATCH tag.
	ErrInvalidSchemaVersion = errors.New("schema version must be MAJOR.MINOR.PATCH")

	// ErrSchemaVersionNotIncreasing is returned for a draft whose version is
	// not greater than every stored version.
	ErrSchemaVersionNotIncreasing = errors.New("schema version must be greater than every existing version")

	// ErrUnknownSchemaState is returned when listing by a state that does
	// not exist.
	ErrUnknownSchemaState = errors.New("unknown schema state")

	// ErrCorruptActiveSchema is returned when the stored active document
	// no longer passes schema validation.
	ErrCorruptActiveSchema = errors.New("active schema document is invalid")

	// ErrInvalidOrganizationName is returned for names without any letter
	// or digit.
	ErrInvalidOrganizationName = errors.New("organization name must contain a letter or digit")
)
