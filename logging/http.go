// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
)

const REDACTED = "<REDACTED>"

type redactedPattern struct {
	re  *regexp.Regexp
	rep []byte
}

var redactedPatterns = []redactedPattern{
	{
		re:  regexp.MustCompile(`Authorization: Basic [A-Za-z0-9+/=]+`),
		rep: []byte("Authorization: Basic " + REDACTED),
	},
	{
		re:  regexp.MustCompile(`"(password|chapSecret|secret)"\s*:\s*"[^"]*"`),
		rep: []byte(`"$1": "` + REDACTED + `"`),
	},
}

// RedactSecrets masks credentials that may appear in a request or response body.
func RedactSecrets(b []byte) []byte {
	for _, p := range redactedPatterns {
		b = p.re.ReplaceAll(b, p.rep)
	}
	return b
}

func sanitizedHeaders(h http.Header) map[string][]string {
	headers := make(map[string][]string, len(h))
	for k, v := range h {
		headers[k] = v
	}
	delete(headers, "Authorization")
	delete(headers, "Cookie")
	delete(headers, "Set-Cookie")
	return headers
}

func LogHTTPRequest(request *http.Request, requestBody []byte, redactBody bool) {
	header := ">>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>"
	footer := "--------------------------------------------------------------------------------"

	requestURL, _ := url.Parse(request.URL.String())
	requestURL.User = nil

	var body string
	if requestBody == nil {
		body = "<nil>"
	} else if redactBody {
		body = REDACTED
	} else {
		body = string(RedactSecrets(requestBody))
	}

	Logc(request.Context()).Debugf("\n%s\n%s %s\nHeaders: %v\nBody: %s\n%s",
		header, request.Method, requestURL, sanitizedHeaders(request.Header), body, footer)
}

func LogHTTPResponse(ctx context.Context, response *http.Response, responseBody []byte, redactBody bool) {
	header := "<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<"
	footer := "================================================================================"

	var body string
	if responseBody == nil {
		body = "<nil>"
	} else if redactBody {
		body = REDACTED
	} else {
		body = string(RedactSecrets(responseBody))
	}
	Logc(ctx).Debugf("\n%s\nStatus: %s\nHeaders: %v\nBody: %s\n%s",
		header, response.Status, sanitizedHeaders(response.Header), body, footer)
}
