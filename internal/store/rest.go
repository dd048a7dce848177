// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	restPathPrefix = "/rest/v1/"

	headerPrefer         = "Prefer"
	preferRepresentation = "return=representation"
	preferMinimal        = "return=minimal"
)

func restPath(table string) string {
	return restPathPrefix + table
}

// eqFilter renders a PostgREST equality filter value.
func eqFilter(v string) string {
	return "eq." + v
}

// inFilter renders a PostgREST IN filter value. Every element is quoted so
// that commas and parentheses inside ids cannot break the list.
func inFilter(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, `"`, `\"`)
		quoted[i] = `"` + v + `"`
	}

	return "in.(" + strings.Join(quoted, ",") + ")"
}

// mapRESTError converts a non-2xx data API response into a wrapped
// [ErrRequestFailed]. A nil error is returned for 2xx responses.
func mapRESTError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrRequestFailed, resp.StatusCode(), body)
}

func isConflict(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusConflict
}
