// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-config-engine/models"
	"golang.org/x/mod/semver"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	versionPattern    = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)
)

// ValidIdentifier reports whether name may be used for a namespace or field.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// ValidVersion reports whether version is a MAJOR.MINOR.PATCH tag without
// leading zeros, prerelease or build suffix. Every tag it accepts is one
// semver.Compare can order.
func ValidVersion(version string) bool {
	return versionPattern.MatchString(version) && semver.IsValid("v"+version)
}

// ValidateSchema checks an authored schema document and converts it into a
// typed [models.Schema]. It never stops at the first problem: on failure the
// error is a [models.SchemaViolations] holding every violation found.
func ValidateSchema(doc models.SchemaDocument) (models.Schema, error) {
	var violations models.SchemaViolations

	if !ValidVersion(doc.Version) {
		violations = append(violations, models.Violation{
			Code:    models.CodeInvalidVersion,
			Message: fmt.Sprintf("version %s is not in MAJOR.MINOR.PATCH form", describe(doc.Version)),
		})
	}
	if len(doc.Namespaces) == 0 {
		violations = append(violations, models.Violation{
			Code:    models.CodeEmptySchema,
			Message: "schema declares no namespaces",
		})
	}

	schema := models.Schema{
		Version:     doc.Version,
		Description: doc.Description,
		Namespaces:  make([]models.Namespace, 0, len(doc.Namespaces)),
	}

	seenNamespaces := make(map[string]struct{}, len(doc.Namespaces))
	for _, nsDoc := range doc.Namespaces {
		if !ValidIdentifier(nsDoc.Name) {
			violations = append(violations, models.Violation{
				Code:      models.CodeInvalidIdentifier,
				Namespace: nsDoc.Name,
				Message:   fmt.Sprintf("namespace name %s must use only ASCII letters, digits and underscore", describe(nsDoc.Name)),
			})
		}

		_, duplicate := seenNamespaces[nsDoc.Name]
		if duplicate {
			violations = append(violations, models.Violation{
				Code:      models.CodeDuplicateName,
				Namespace: nsDoc.Name,
				Message:   fmt.Sprintf("namespace %s is declared more than once", describe(nsDoc.Name)),
			})
		}
		seenNamespaces[nsDoc.Name] = struct{}{}

		ns := models.Namespace{
			Name:        nsDoc.Name,
			Description: nsDoc.Description,
			Fields:      make([]models.FieldDefinition, 0, len(nsDoc.Fields)),
		}

		seenFields := make(map[string]struct{}, len(nsDoc.Fields))
		for _, fieldDoc := range nsDoc.Fields {
			if !ValidIdentifier(fieldDoc.Name) {
				violations = append(violations, models.Violation{
					Code:      models.CodeInvalidIdentifier,
					Namespace: nsDoc.Name,
					Field:     fieldDoc.Name,
					Message:   fmt.Sprintf("field name %s must use only ASCII letters, digits and underscore", describe(fieldDoc.Name)),
				})
			}
			if _, ok := seenFields[fieldDoc.Name]; ok {
				violations = append(violations, models.Violation{
					Code:      models.CodeDuplicateName,
					Namespace: nsDoc.Name,
					Field:     fieldDoc.Name,
					Message:   fmt.Sprintf("field %s is declared more than once", describe(fieldDoc.Name)),
				})
			}
			seenFields[fieldDoc.Name] = struct{}{}

			field, fieldViolations := buildField(nsDoc.Name, fieldDoc)
			violations = append(violations, fieldViolations...)
			ns.Fields = append(ns.Fields, field)
		}

		if !duplicate {
			schema.Namespaces = append(schema.Namespaces, ns)
		}
	}

	if len(violations) > 0 {
		return models.Schema{}, violations
	}

	return schema, nil
}

// fieldBuilder collects the violations of a single field document.
type fieldBuilder struct {
	namespace  string
	field      string
	violations []models.Violation

	// constraintsBroken is set when min/max/choices are unusable, in which
	// case the default is only checked for its type.
	constraintsBroken bool
}

func (b *fieldBuilder) inconsistent(format string, args ...any) {
	b.constraintsBroken = true
	b.violations = append(b.violations, models.Violation{
		Code:      models.CodeInconsistentConstraint,
		Namespace: b.namespace,
		Field:     b.field,
		Message:   fmt.Sprintf(format, args...),
	})
}

func (b *fieldBuilder) invalidDefault(msg string) {
	b.violations = append(b.violations, models.Violation{
		Code:      models.CodeInvalidDefault,
		Namespace: b.namespace,
		Field:     b.field,
		Message:   msg,
	})
}

// buildField converts one field document into its typed definition. The
// definition is only meaningful when no violations are returned.
func buildField(namespace string, doc models.FieldDocument) (models.FieldDefinition, []models.Violation) {
	b := &fieldBuilder{namespace: namespace, field: doc.Name}

	def := models.FieldDefinition{
		Name:                doc.Name,
		Description:         doc.Description,
		Mutable:             doc.IsMutable(),
		AllowedRoles:        slices.Clone(doc.AllowedRoles),
		AllowedEnvironments: slices.Clone(doc.AllowedEnvironments),
	}

	b.checkPolicy("allowed_roles", doc.AllowedRoles)
	b.checkPolicy("allowed_environments", doc.AllowedEnvironments)

	switch doc.Type {
	case models.FieldTypeString:
		b.forbidBounds(doc)
		spec := models.StringField{Choices: b.stringChoices(doc.Choices, false)}
		if v, ok := b.checkDefault(spec, models.StringField{}, doc.Default); ok {
			spec.Default = v.(string)
		}
		def.Spec = spec

	case models.FieldTypeEnum:
		b.forbidBounds(doc)
		spec := models.EnumField{Choices: b.stringChoices(doc.Choices, true)}
		if v, ok := b.checkDefault(spec, models.StringField{}, doc.Default); ok {
			spec.Default = v.(string)
		}
		def.Spec = spec

	case models.FieldTypeInteger:
		spec := b.integerSpec(doc)
		if v, ok := b.checkDefault(spec, models.IntegerField{}, doc.Default); ok {
			spec.Default = v.(int64)
		}
		def.Spec = spec

	case models.FieldTypeFloat:
		spec := b.floatSpec(doc)
		if v, ok := b.checkDefault(spec, models.FloatField{}, doc.Default); ok {
			spec.Default = v.(float64)
		}
		def.Spec = spec

	case models.FieldTypeBoolean:
		b.forbidBounds(doc)
		if doc.Choices != nil {
			b.inconsistent("choices are not allowed on a boolean field")
		}
		spec := models.BooleanField{}
		if v, ok := b.checkDefault(spec, spec, doc.Default); ok {
			spec.Default = v.(bool)
		}
		def.Spec = spec

	case "":
		b.inconsistent("type is required, one of %v", models.FieldTypes)

	default:
		b.inconsistent("unknown type %q, expected one of %v", doc.Type, models.FieldTypes)
	}

	return def, b.violations
}

func (b *fieldBuilder) checkPolicy(name string, values []string) {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			b.violations = append(b.violations, models.Violation{
				Code:      models.CodeInconsistentConstraint,
				Namespace: b.namespace,
				Field:     b.field,
				Message:   name + " must not contain blank entries",
			})
			return
		}
	}
}

// forbidBounds flags min or max on a type that has no ordering.
func (b *fieldBuilder) forbidBounds(doc models.FieldDocument) {
	if doc.Min != nil || doc.Max != nil {
		b.inconsistent("min and max apply only to integer and float fields, not %s", doc.Type)
	}
}

// checkDefault validates the default against spec. When the constraints
// themselves are broken it falls back to typeOnly so that a bad bound does
// not also produce a misleading default violation.
func (b *fieldBuilder) checkDefault(spec, typeOnly models.FieldSpec, value any) (any, bool) {
	if value == nil {
		b.invalidDefault("default is required")
		return nil, false
	}

	if b.constraintsBroken {
		spec = typeOnly
	}

	normalized, problems := CheckValue(spec, value)
	for _, p := range problems {
		b.invalidDefault("default " + p.Message)
	}
	return normalized, len(problems) == 0
}

// stringChoices reads a choices list of strings. A nil list is fine unless
// required; an explicitly empty one never is.
func (b *fieldBuilder) stringChoices(raw []any, required bool) []string {
	if raw == nil {
		if required {
			b.inconsistent("an enum field requires a non-empty choices list")
		}
		return nil
	}
	if len(raw) == 0 {
		b.inconsistent("choices must not be empty")
		return nil
	}

	choices := make([]string, 0, len(raw))
	for _, c := range raw {
		s, ok := constraintString(c)
		if !ok {
			b.inconsistent("choice %s is not a string", describe(c))
			continue
		}
		choices = append(choices, s)
	}
	return choices
}

func (b *fieldBuilder) integerSpec(doc models.FieldDocument) models.IntegerField {
	var spec models.IntegerField

	if doc.Min != nil {
		if v, ok := constraintInt(doc.Min); ok {
			spec.Min = &v
		} else {
			b.inconsistent("min %s is not an integer", describe(doc.Min))
		}
	}
	if doc.Max != nil {
		if v, ok := constraintInt(doc.Max); ok {
			spec.Max = &v
		} else {
			b.inconsistent("max %s is not an integer", describe(doc.Max))
		}
	}
	if spec.Min != nil && spec.Max != nil && *spec.Min > *spec.Max {
		b.inconsistent("min %d is greater than max %d", *spec.Min, *spec.Max)
	}

	if doc.Choices != nil {
		if len(doc.Choices) == 0 {
			b.inconsistent("choices must not be empty")
		}
		for _, c := range doc.Choices {
			v, ok := constraintInt(c)
			if !ok {
				b.inconsistent("choice %s is not an integer", describe(c))
				continue
			}
			if (spec.Min != nil && v < *spec.Min) || (spec.Max != nil && v > *spec.Max) {
				b.inconsistent("choice %d lies outside min/max", v)
			}
			spec.Choices = append(spec.Choices, v)
		}
	}

	return spec
}

func (b *fieldBuilder) floatSpec(doc models.FieldDocument) models.FloatField {
	var spec models.FloatField

	if doc.Min != nil {
		if v, ok := constraintFloat(doc.Min); ok {
			spec.Min = &v
		} else {
			b.inconsistent("min %s is not a number", describe(doc.Min))
		}
	}
	if doc.Max != nil {
		if v, ok := constraintFloat(doc.Max); ok {
			spec.Max = &v
		} else {
			b.inconsistent("max %s is not a number", describe(doc.Max))
		}
	}
	if spec.Min != nil && spec.Max != nil && *spec.Min > *spec.Max {
		b.inconsistent("min %v is greater than max %v", *spec.Min, *spec.Max)
	}

	if doc.Choices != nil {
		if len(doc.Choices) == 0 {
			b.inconsistent("choices must not be empty")
		}
		for _, c := range doc.Choices {
			v, ok := constraintFloat(c)
			if !ok {
				b.inconsistent("choice %s is not a number", describe(c))
				continue
			}
			if (spec.Min != nil && v < *spec.Min) || (spec.Max != nil && v > *spec.Max) {
				b.inconsistent("choice %v lies outside min/max", v)
			}
			spec.Choices = append(spec.Choices, v)
		}
	}

	return spec
}
