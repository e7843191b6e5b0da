// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/MKhiriev/go-config-engine/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func codes(violations []models.Violation) []models.ViolationCode {
	out := make([]models.ViolationCode, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Code)
	}
	return out
}

func TestCheckValue(t *testing.T) {
	tests := []struct {
		name      string
		spec      models.FieldSpec
		value     any
		want      any
		wantCodes []models.ViolationCode
	}{
		{name: "string ok", spec: models.StringField{}, value: "x", want: "x"},
		{name: "string numeric string is still a string", spec: models.StringField{}, value: "5", want: "5"},
		{name: "string from int", spec: models.StringField{}, value: 5, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "string choice miss", spec: models.StringField{Choices: []string{"a"}}, value: "b", wantCodes: []models.ViolationCode{models.CodeInvalidChoice}},

		{name: "enum ok", spec: models.EnumField{Choices: []string{"light", "dark"}}, value: "dark", want: "dark"},
		{name: "enum blue", spec: models.EnumField{Choices: []string{"light", "dark"}}, value: "blue", wantCodes: []models.ViolationCode{models.CodeInvalidChoice}},
		{name: "enum bool", spec: models.EnumField{Choices: []string{"light"}}, value: true, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},

		{name: "integer int", spec: models.IntegerField{}, value: 7, want: int64(7)},
		{name: "integer uint8", spec: models.IntegerField{}, value: uint8(7), want: int64(7)},
		{name: "integer json number", spec: models.IntegerField{}, value: json.Number("42"), want: int64(42)},
		{name: "integer json float literal", spec: models.IntegerField{}, value: json.Number("42.0"), wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "integer float64", spec: models.IntegerField{}, value: 5.0, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "integer bool", spec: models.IntegerField{}, value: true, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "integer numeric string", spec: models.IntegerField{}, value: "5", wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "integer huge uint", spec: models.IntegerField{}, value: uint64(math.MaxUint64), wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "integer above max", spec: models.IntegerField{Min: ptr(int64(1)), Max: ptr(int64(1000))}, value: 5000, wantCodes: []models.ViolationCode{models.CodeOutOfRange}},
		{name: "integer below min", spec: models.IntegerField{Min: ptr(int64(1)), Max: ptr(int64(1000))}, value: 0, wantCodes: []models.ViolationCode{models.CodeOutOfRange}},
		{name: "integer bounds inclusive", spec: models.IntegerField{Min: ptr(int64(1)), Max: ptr(int64(1000))}, value: 1000, want: int64(1000)},
		{name: "integer range and choice", spec: models.IntegerField{Max: ptr(int64(10)), Choices: []int64{1, 2}}, value: 11, wantCodes: []models.ViolationCode{models.CodeOutOfRange, models.CodeInvalidChoice}},

		{name: "float from int", spec: models.FloatField{}, value: 3, want: float64(3)},
		{name: "float from json int literal", spec: models.FloatField{}, value: json.Number("3"), want: float64(3)},
		{name: "float ok", spec: models.FloatField{Min: ptr(0.0), Max: ptr(1.0)}, value: 0.25, want: 0.25},
		{name: "float out of range", spec: models.FloatField{Min: ptr(0.0), Max: ptr(1.0)}, value: 1.5, wantCodes: []models.ViolationCode{models.CodeOutOfRange}},
		{name: "float bool", spec: models.FloatField{}, value: false, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "float NaN", spec: models.FloatField{}, value: math.NaN(), wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "float choice", spec: models.FloatField{Choices: []float64{0.5, 1}}, value: 1, want: float64(1)},

		{name: "boolean ok", spec: models.BooleanField{}, value: false, want: false},
		{name: "boolean from int", spec: models.BooleanField{}, value: 1, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "boolean from string", spec: models.BooleanField{}, value: "true", wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},

		{name: "nested value", spec: models.StringField{}, value: map[string]any{"a": 1}, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "nil value", spec: models.IntegerField{}, value: nil, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
		{name: "missing spec", spec: nil, value: 1, wantCodes: []models.ViolationCode{models.CodeTypeMismatch}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, problems := CheckValue(tt.spec, tt.value)
			if len(tt.wantCodes) > 0 {
				assert.Equal(t, tt.wantCodes, codes(problems))
				assert.Nil(t, got)
				return
			}
			assert.Empty(t, problems)
			assert.Equal(t, tt.want, got)
		})
	}
}
