// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/go-config-engine/models"
)

// ValidateOverrides decides whether a proposed override document may be
// stored for a caller under schema.
//
// Each entry is checked in order: namespace exists, field exists, field is
// mutable, caller role allowed, caller environment allowed, then type,
// range and choice. An unknown namespace or field ends the checks for that
// entry; every other problem is reported. One violation anywhere rejects the
// whole document and the error is a [models.OverrideViolations].
//
// On success the returned document is a normalized copy: integers as int64,
// floats as float64 and empty namespaces dropped. The input is not modified.
func ValidateOverrides(schema models.Schema, proposed models.Overrides, caller models.CallerContext) (models.Overrides, error) {
	var violations models.OverrideViolations
	accepted := make(models.Overrides, len(proposed))

	for _, nsName := range proposed.Namespaces() {
		fields := proposed[nsName]

		ns, ok := schema.Namespace(nsName)
		if !ok {
			violations = append(violations, unknownNamespace(schema, nsName, fields)...)
			continue
		}

		for _, fieldName := range models.SortedFields(fields) {
			value := fields[fieldName]

			field, ok := ns.Field(fieldName)
			if !ok {
				violations = append(violations, models.Violation{
					Code:      models.CodeUnknownField,
					Namespace: nsName,
					Field:     fieldName,
					Message:   fmt.Sprintf("field %s does not exist in namespace %s of schema %s", describe(fieldName), describe(nsName), schema.Version),
				})
				continue
			}

			entry := checkEntry(field, value, caller)
			for i := range entry {
				entry[i].Namespace = nsName
				entry[i].Field = fieldName
			}
			if len(entry) > 0 {
				violations = append(violations, entry...)
				continue
			}

			normalized, _ := CheckValue(field.Spec, value)
			accepted.Set(nsName, fieldName, normalized)
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}

	return accepted, nil
}

// checkEntry runs the policy and value checks for one known field.
func checkEntry(field models.FieldDefinition, value any, caller models.CallerContext) []models.Violation {
	var problems []models.Violation

	if !field.Mutable {
		problems = append(problems, models.Violation{
			Code:    models.CodeImmutableField,
			Message: "field is immutable and cannot be overridden",
		})
	}
	if !field.RoleAllowed(caller.Role) {
		problems = append(problems, models.Violation{
			Code:    models.CodeRoleNotPermitted,
			Message: fmt.Sprintf("role %s may not override this field, allowed roles are %v", describe(caller.Role), field.AllowedRoles),
		})
	}
	if !field.EnvironmentAllowed(caller.Environment) {
		problems = append(problems, models.Violation{
			Code:    models.CodeEnvironmentNotPermitted,
			Message: fmt.Sprintf("environment %s may not override this field, allowed environments are %v", describe(caller.Environment), field.AllowedEnvironments),
		})
	}

	_, valueProblems := CheckValue(field.Spec, value)
	return append(problems, valueProblems...)
}

func unknownNamespace(schema models.Schema, nsName string, fields map[string]any) []models.Violation {
	msg := fmt.Sprintf("namespace %s does not exist in schema %s", describe(nsName), schema.Version)
	if len(fields) == 0 {
		return []models.Violation{{Code: models.CodeUnknownNamespace, Namespace: nsName, Message: msg}}
	}

	violations := make([]models.Violation, 0, len(fields))
	for _, fieldName := range models.SortedFields(fields) {
		violations = append(violations, models.Violation{
			Code:      models.CodeUnknownNamespace,
			Namespace: nsName,
			Field:     fieldName,
			Message:   msg,
		})
	}
	return violations
}
