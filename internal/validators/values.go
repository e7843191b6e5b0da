// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-engine/models"
)

// valueKind is the dynamic type of a decoded override value.
type valueKind int

const (
	kindUnknown valueKind = iota
	kindString
	kindInteger
	kindFloat
	kindBoolean
)

// String names the kind the way FieldType does, "unsupported" for anything else.
func (k valueKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInteger:
		return "integer"
	case kindFloat:
		return "float"
	case kindBoolean:
		return "boolean"
	default:
		return "unsupported"
	}
}

// scalar is a decoded value reduced to one of the wire kinds.
type scalar struct {
	kind valueKind
	s    string
	i    int64
	f    float64
	b    bool
}

// toScalar classifies v by its Go type. json.Number is classified by its
// literal: "5" is an integer, "5.0" and "5e0" are floats. Booleans are
// never numbers.
func toScalar(v any) scalar {
	switch value := v.(type) {
	case string:
		return scalar{kind: kindString, s: value}
	case bool:
		return scalar{kind: kindBoolean, b: value}
	case int:
		return scalar{kind: kindInteger, i: int64(value)}
	case int8:
		return scalar{kind: kindInteger, i: int64(value)}
	case int16:
		return scalar{kind: kindInteger, i: int64(value)}
	case int32:
		return scalar{kind: kindInteger, i: int64(value)}
	case int64:
		return scalar{kind: kindInteger, i: value}
	case uint:
		return fromUint(uint64(value))
	case uint8:
		return scalar{kind: kindInteger, i: int64(value)}
	case uint16:
		return scalar{kind: kindInteger, i: int64(value)}
	case uint32:
		return scalar{kind: kindInteger, i: int64(value)}
	case uint64:
		return fromUint(value)
	case float32:
		return fromFloat(float64(value))
	case float64:
		return fromFloat(value)
	case json.Number:
		return fromNumber(value)
	default:
		return scalar{kind: kindUnknown}
	}
}

// fromUint rejects values that do not fit in an int64.
func fromUint(v uint64) scalar {
	if v > math.MaxInt64 {
		return scalar{kind: kindUnknown}
	}
	return scalar{kind: kindInteger, i: int64(v)}
}

// fromFloat rejects NaN and infinities.
func fromFloat(v float64) scalar {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return scalar{kind: kindUnknown}
	}
	return scalar{kind: kindFloat, f: v}
}

// fromNumber keeps the JSON literal's kind: 5 is an integer, 5.0 and 5e0
// are floats.
func fromNumber(n json.Number) scalar {
	literal := n.String()
	if strings.ContainsAny(literal, ".eE") {
		f, err := n.Float64()
		if err != nil {
			return scalar{kind: kindUnknown}
		}
		return fromFloat(f)
	}
	i, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return scalar{kind: kindUnknown}
	}
	return scalar{kind: kindInteger, i: i}
}

// describe renders v for violation messages.
func describe(v any) string {
	switch value := v.(type) {
	case string:
		return strconv.Quote(value)
	case nil:
		return "null"
	default:
		return fmt.Sprint(value)
	}
}

// CheckValue checks v against the type and constraints of spec. It returns
// the normalized value (int64, float64, string or bool) and the problems
// found, with codes TypeMismatch, OutOfRange and InvalidChoice. A type
// mismatch suppresses the range and choice checks. The returned violations
// carry no namespace or field; callers fill them in.
func CheckValue(spec models.FieldSpec, v any) (any, []models.Violation) {
	sc := toScalar(v)

	switch s := spec.(type) {
	case models.StringField:
		if sc.kind != kindString {
			return nil, mismatch(models.FieldTypeString, v, sc)
		}
		if len(s.Choices) > 0 && !slices.Contains(s.Choices, sc.s) {
			return nil, invalidChoice(v, s.Choices)
		}
		return sc.s, nil

	case models.EnumField:
		if sc.kind != kindString {
			return nil, mismatch(models.FieldTypeEnum, v, sc)
		}
		if !slices.Contains(s.Choices, sc.s) {
			return nil, invalidChoice(v, s.Choices)
		}
		return sc.s, nil

	case models.IntegerField:
		if sc.kind != kindInteger {
			return nil, mismatch(models.FieldTypeInteger, v, sc)
		}
		var problems []models.Violation
		if s.Min != nil && sc.i < *s.Min {
			problems = append(problems, outOfRange(fmt.Sprintf("%d is below the minimum %d", sc.i, *s.Min)))
		}
		if s.Max != nil && sc.i > *s.Max {
			problems = append(problems, outOfRange(fmt.Sprintf("%d exceeds the maximum %d", sc.i, *s.Max)))
		}
		if len(s.Choices) > 0 && !slices.Contains(s.Choices, sc.i) {
			problems = append(problems, invalidChoice(v, s.Choices)...)
		}
		if len(problems) > 0 {
			return nil, problems
		}
		return sc.i, nil

	case models.FloatField:
		var f float64
		switch sc.kind {
		case kindFloat:
			f = sc.f
		case kindInteger:
			f = float64(sc.i)
		default:
			return nil, mismatch(models.FieldTypeFloat, v, sc)
		}
		var problems []models.Violation
		if s.Min != nil && f < *s.Min {
			problems = append(problems, outOfRange(fmt.Sprintf("%v is below the minimum %v", f, *s.Min)))
		}
		if s.Max != nil && f > *s.Max {
			problems = append(problems, outOfRange(fmt.Sprintf("%v exceeds the maximum %v", f, *s.Max)))
		}
		if len(s.Choices) > 0 && !slices.Contains(s.Choices, f) {
			problems = append(problems, invalidChoice(v, s.Choices)...)
		}
		if len(problems) > 0 {
			return nil, problems
		}
		return f, nil

	case models.BooleanField:
		if sc.kind != kindBoolean {
			return nil, mismatch(models.FieldTypeBoolean, v, sc)
		}
		return sc.b, nil

	default:
		return nil, []models.Violation{{
			Code:    models.CodeTypeMismatch,
			Message: "field has no supported type",
		}}
	}
}

func mismatch(want models.FieldType, v any, sc scalar) []models.Violation {
	return []models.Violation{{
		Code:    models.CodeTypeMismatch,
		Message: fmt.Sprintf("expected %s, got %s %s", want, sc.kind, describe(v)),
	}}
}

func outOfRange(msg string) models.Violation {
	return models.Violation{Code: models.CodeOutOfRange, Message: msg}
}

func invalidChoice[T any](v any, choices []T) []models.Violation {
	return []models.Violation{{
		Code:    models.CodeInvalidChoice,
		Message: fmt.Sprintf("%s is not one of %v", describe(v), choices),
	}}
}

// constraintInt reads an integer constraint (min, max, choice).
func constraintInt(v any) (int64, bool) {
	sc := toScalar(v)
	if sc.kind != kindInteger {
		return 0, false
	}
	return sc.i, true
}

// constraintFloat reads a numeric constraint; integers are widened.
func constraintFloat(v any) (float64, bool) {
	sc := toScalar(v)
	switch sc.kind {
	case kindFloat:
		return sc.f, true
	case kindInteger:
		return float64(sc.i), true
	default:
		return 0, false
	}
}

// constraintString reads a string choice.
func constraintString(v any) (string, bool) {
	sc := toScalar(v)
	if sc.kind != kindString {
		return "", false
	}
	return sc.s, true
}
