// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// FieldType names the value type a field accepts.
type FieldType string

// Field types as they appear in the "type" key of a schema document.
const (
	// FieldTypeString accepts any string, see [StringField].
	FieldTypeString FieldType = "string"
	// FieldTypeInteger accepts whole numbers that fit in an int64, see [IntegerField].
	FieldTypeInteger FieldType = "integer"
	// FieldTypeFloat accepts any finite number, see [FloatField].
	FieldTypeFloat FieldType = "float"
	// FieldTypeBoolean accepts true or false, see [BooleanField].
	FieldTypeBoolean FieldType = "boolean"
	// FieldTypeEnum accepts one string out of a fixed list, see [EnumField].
	FieldTypeEnum FieldType = "enum"
)

// FieldTypes lists every supported field type in documentation order.
var FieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeInteger,
	FieldTypeFloat,
	FieldTypeBoolean,
	FieldTypeEnum,
}

// IsKnown reports whether t is one of [FieldTypes].
func (t FieldType) IsKnown() bool {
	return slices.Contains(FieldTypes, t)
}

// FieldSpec is the type-specific part of a [FieldDefinition]. Only the
// variants declared in this package implement it, so each variant carries
// exactly the constraints that make sense for its type.
type FieldSpec interface {
	// Type reports which [FieldType] the variant implements.
	Type() FieldType
	// DefaultValue returns the schema default in its Go representation:
	// string, int64, float64 or bool.
	DefaultValue() any
	isFieldSpec()
}

// StringField is a free-form string, optionally restricted to Choices.
type StringField struct {
	Default string
	Choices []string
}

// IntegerField is a signed 64-bit integer with optional bounds and choices.
type IntegerField struct {
	Default int64
	Min     *int64
	Max     *int64
	Choices []int64
}

// FloatField is a 64-bit float with optional bounds and choices.
type FloatField struct {
	Default float64
	Min     *float64
	Max     *float64
	Choices []float64
}

// BooleanField carries no constraints besides its default.
type BooleanField struct {
	Default bool
}

// EnumField is a string that must be one of a non-empty Choices list.
type EnumField struct {
	Default string
	Choices []string
}

// Type returns [FieldTypeString].
func (StringField) Type() FieldType { return FieldTypeString }

// Type returns [FieldTypeInteger].
func (IntegerField) Type() FieldType { return FieldTypeInteger }

// Type returns [FieldTypeFloat].
func (FloatField) Type() FieldType { return FieldTypeFloat }

// Type returns [FieldTypeBoolean].
func (BooleanField) Type() FieldType { return FieldTypeBoolean }

// Type returns [FieldTypeEnum].
func (EnumField) Type() FieldType { return FieldTypeEnum }

// DefaultValue returns the default as a string.
func (f StringField) DefaultValue() any { return f.Default }

// DefaultValue returns the default as an int64.
func (f IntegerField) DefaultValue() any { return f.Default }

// DefaultValue returns the default as a float64.
func (f FloatField) DefaultValue() any { return f.Default }

// DefaultValue returns the default as a bool.
func (f BooleanField) DefaultValue() any { return f.Default }

// DefaultValue returns the default choice as a string.
func (f EnumField) DefaultValue() any { return f.Default }

func (StringField) isFieldSpec()  {}
func (IntegerField) isFieldSpec() {}
func (FloatField) isFieldSpec()   {}
func (BooleanField) isFieldSpec() {}
func (EnumField) isFieldSpec()    {}

// FieldDefinition is one validated, typed field of a [Namespace].
type FieldDefinition struct {
	Name        string
	Description string
	Spec        FieldSpec

	// Mutable is false for fields that no override may ever change.
	Mutable bool

	// AllowedRoles and AllowedEnvironments restrict who may override the
	// field and where. Empty means unrestricted.
	AllowedRoles        []string
	AllowedEnvironments []string
}

// Type returns the field's value type.
func (f FieldDefinition) Type() FieldType {
	if f.Spec == nil {
		return ""
	}
	return f.Spec.Type()
}

// Default returns the field's default value.
func (f FieldDefinition) Default() any {
	if f.Spec == nil {
		return nil
	}
	return f.Spec.DefaultValue()
}

// RoleAllowed reports whether role may override the field.
func (f FieldDefinition) RoleAllowed(role string) bool {
	return len(f.AllowedRoles) == 0 || slices.Contains(f.AllowedRoles, role)
}

// EnvironmentAllowed reports whether an override may be written from env.
func (f FieldDefinition) EnvironmentAllowed(env string) bool {
	return len(f.AllowedEnvironments) == 0 || slices.Contains(f.AllowedEnvironments, env)
}

// Document converts the typed definition back into its authored form.
func (f FieldDefinition) Document() FieldDocument {
	doc := FieldDocument{
		Name:                f.Name,
		Type:                f.Type(),
		Default:             f.Default(),
		Description:         f.Description,
		AllowedRoles:        slices.Clone(f.AllowedRoles),
		AllowedEnvironments: slices.Clone(f.AllowedEnvironments),
	}
	if !f.Mutable {
		mutable := false
		doc.Mutable = &mutable
	}

	switch spec := f.Spec.(type) {
	case StringField:
		doc.Choices = anySlice(spec.Choices)
	case EnumField:
		doc.Choices = anySlice(spec.Choices)
	case IntegerField:
		if spec.Min != nil {
			doc.Min = *spec.Min
		}
		if spec.Max != nil {
			doc.Max = *spec.Max
		}
		doc.Choices = anySlice(spec.Choices)
	case FloatField:
		if spec.Min != nil {
			doc.Min = *spec.Min
		}
		if spec.Max != nil {
			doc.Max = *spec.Max
		}
		doc.Choices = anySlice(spec.Choices)
	}

	return doc
}

func anySlice[T any](values []T) []any {
	if values == nil {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
