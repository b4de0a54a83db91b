// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/pmax-drivers/powermax/logging"
)

const HTTPClientTimeout = time.Second * 300

// InvokeRESTAPI sends one request to the frontend and returns the response with its body already read.
func InvokeRESTAPI(
	ctx context.Context, client *http.Client, method, url string, requestBody []byte,
) (*http.Response, []byte, error) {
	var request *http.Request
	var err error

	if requestBody == nil {
		request, err = http.NewRequestWithContext(ctx, method, url, nil)
	} else {
		request, err = http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestBody))
	}
	if err != nil {
		return nil, nil, err
	}

	request.Header.Set("Content-Type", "application/json")
	if reqID := ctx.Value(logging.ContextKeyRequestID); reqID != nil {
		request.Header.Set("X-Request-ID", fmt.Sprint(reqID))
	}

	LogHTTPRequest(ctx, request, requestBody)

	response, err := client.Do(request)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(err, "error communicating with the PowerMax REST frontend")
	}

	var responseBody []byte

	if response != nil {
		defer func() { _ = response.Body.Close() }()
		responseBody, err = io.ReadAll(response.Body)
		if err != nil {
			return response, responseBody, pkgerrors.Wrap(err, "error reading response body")
		}
	}

	LogHTTPResponse(ctx, response, responseBody)

	return response, responseBody, err
}

func LogHTTPRequest(ctx context.Context, request *http.Request, requestBody []byte) {
	logging.Logc(ctx).Debug("--------------------------------------------------------------------------------")
	logging.Logc(ctx).Debugf("Request Method: %s", request.Method)
	logging.Logc(ctx).Debugf("Request URL: %v", request.URL)
	logging.Logc(ctx).Debugf("Request headers: %v", request.Header)
	if requestBody == nil {
		requestBody = []byte{}
	}
	logging.Logc(ctx).Debugf("Request body: %s", string(requestBody))
	logging.Logc(ctx).Debug("................................................................................")
}

func LogHTTPResponse(ctx context.Context, response *http.Response, responseBody []byte) {
	if response != nil {
		logging.Logc(ctx).Debugf("Response status: %s", response.Status)
		logging.Logc(ctx).Debugf("Response headers: %v", response.Header)
	}

	if responseBody != nil {
		logging.Logc(ctx).Debugf("Response body: %s", string(responseBody))
	}

	logging.Logc(ctx).Debug("================================================================================")
}
