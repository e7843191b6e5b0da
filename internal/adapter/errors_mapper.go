// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-config-engine/models"
	"github.com/go-resty/resty/v2"
)

type errorBody struct {
	Error  string             `json:"error"`
	Errors []models.Violation `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var parsed errorBody
	if json.Unmarshal(resp.Body(), &parsed) == nil && parsed.Error != "" {
		body = parsed.Error
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// violationsFrom extracts the violation list of a 422 response. It returns
// nil for any other response.
func violationsFrom(resp *resty.Response) []models.Violation {
	if resp == nil || resp.StatusCode() != http.StatusUnprocessableEntity {
		return nil
	}
	var parsed errorBody
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil
	}
	return parsed.Errors
}
