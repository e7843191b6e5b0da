// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver computes effective configurations: the active schema's
// defaults with stored override layers applied on top.
//
// Resolution never fails. An override that no longer fits the schema it is
// resolved against is skipped, the field keeps its default (or the value
// of a lower layer) and a [models.CodeStaleOverrideIgnored] diagnostic is
// attached to the result.
package resolver

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-config-engine/internal/validators"
	"github.com/MKhiriev/go-config-engine/models"
)

// Layer names used in diagnostics.
const (
	// LayerOrganization holds the organization-wide overrides.
	LayerOrganization = "organization"
	// LayerUser holds a single user's overrides on top of the organization.
	LayerUser = "user"
)

// Layer is one set of overrides applied during resolution. Later layers
// take precedence over earlier ones.
type Layer struct {
	Name      string
	Overrides models.Overrides
}

// Resolve applies an organization's stored overrides to schema.
func Resolve(schema models.Schema, overrides models.Overrides) models.EffectiveConfig {
	return ResolveLayers(schema, Layer{Name: LayerOrganization, Overrides: overrides})
}

// ResolveLayers applies each layer in order on top of the schema defaults.
// Inputs are never modified; the returned values are fresh maps.
func ResolveLayers(schema models.Schema, layers ...Layer) models.EffectiveConfig {
	config := models.EffectiveConfig{
		SchemaID:      schema.ID,
		SchemaVersion: schema.Version,
		Values:        schema.Defaults(),
	}

	for _, layer := range layers {
		config.Diagnostics = append(config.Diagnostics, applyLayer(schema, layer, config.Values)...)
	}

	return config
}

func applyLayer(schema models.Schema, layer Layer, values map[string]map[string]any) []models.Diagnostic {
	var diagnostics []models.Diagnostic

	stale := func(namespace, field string, value any, reason string) {
		diagnostics = append(diagnostics, models.Diagnostic{
			Code:      models.CodeStaleOverrideIgnored,
			Layer:     layer.Name,
			Namespace: namespace,
			Field:     field,
			Value:     value,
			Reason:    reason,
		})
	}

	for _, nsName := range layer.Overrides.Namespaces() {
		fields := layer.Overrides[nsName]
		ns, ok := schema.Namespace(nsName)

		for _, fieldName := range models.SortedFields(fields) {
			value := fields[fieldName]

			if !ok {
				stale(nsName, fieldName, value, fmt.Sprintf("namespace no longer exists in schema %s", schema.Version))
				continue
			}

			field, found := ns.Field(fieldName)
			if !found {
				stale(nsName, fieldName, value, fmt.Sprintf("field no longer exists in schema %s", schema.Version))
				continue
			}

			if !field.Mutable {
				stale(nsName, fieldName, value, fmt.Sprintf("field is immutable in schema %s", schema.Version))
				continue
			}

			normalized, problems := validators.CheckValue(field.Spec, value)
			if len(problems) > 0 {
				stale(nsName, fieldName, value, joinProblems(problems))
				continue
			}

			values[nsName][fieldName] = normalized
		}
	}

	return diagnostics
}

func joinProblems(problems []models.Violation) string {
	parts := make([]string, 0, len(problems))
	for _, p := range problems {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Code, p.Message))
	}
	return strings.Join(parts, "; ")
}
