// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pmax-drivers/powermax/config"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/utils/errors"
)

type httpResponse interface {
	setError(err error)
	isError() bool
	logSuccess(context.Context)
	logFailure(context.Context)
}

// operationResult carries the error text of a mutating call and logs its outcome.
type operationResult struct {
	Error   string `json:"error,omitempty"`
	handler string
	fields  LogFields
}

func (o *operationResult) setError(err error) {
	o.Error = err.Error()
}

func (o *operationResult) isError() bool {
	return o.Error != ""
}

func (o *operationResult) logFields() LogFields {
	fields := LogFields{"handler": o.handler}
	for k, v := range o.fields {
		fields[k] = v
	}
	return fields
}

func (o *operationResult) logSuccess(ctx context.Context) {
	Logc(ctx).WithFields(o.logFields()).Info("REST operation succeeded.")
}

func (o *operationResult) logFailure(ctx context.Context) {
	Logc(ctx).WithFields(o.logFields()).Error(o.Error)
}

func newOperationResult(handler string, fields LogFields) operationResult {
	return operationResult{handler: handler, fields: fields}
}

// httpStatusCodeForError maps an orchestrator error onto an HTTP status.  A nil error yields successCode.
func httpStatusCodeForError(err error, successCode int) int {
	if err == nil {
		return successCode
	}
	if ok, _ := errors.HasUnsupportedCapacityRangeError(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.IsNotReadyError(err):
		return http.StatusServiceUnavailable
	case errors.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.IsInvalidInputError(err), errors.IsUnsupportedError(err), errors.IsUnsupportedConfigError(err):
		return http.StatusBadRequest
	case errors.IsAlreadyExistsError(err), errors.IsResourceInUseError(err):
		return http.StatusConflict
	case errors.IsTooManyRequestsError(err):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeHTTPResponse(ctx context.Context, w http.ResponseWriter, response interface{}, httpStatusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	if _, err := json.Marshal(response); err != nil {
		Logc(ctx).WithFields(LogFields{
			"response": response,
			"error":    err,
		}).Error("Failed to marshal HTTP response.")
		w.WriteHeader(http.StatusInternalServerError)
	} else {
		w.WriteHeader(httpStatusCode)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		Logc(ctx).WithFields(LogFields{
			"response": response,
			"error":    err,
		}).Error("Failed to write HTTP response.")
	}
}

// readBody returns the size-limited request body.
func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, config.MaxRESTRequestSize))
	if err != nil {
		return nil, errors.InvalidInputError("could not read request body; %v", err)
	}
	if err = r.Body.Close(); err != nil {
		return nil, errors.InvalidInputError("could not close request body; %v", err)
	}
	return body, nil
}

// unmarshalBody decodes a JSON request body, reporting malformed input as invalid.
func unmarshalBody(body []byte, target interface{}) error {
	if err := json.Unmarshal(body, target); err != nil {
		return errors.InvalidInputError("invalid JSON: %v", err)
	}
	return nil
}

func GetGenericNoArg(
	w http.ResponseWriter,
	r *http.Request,
	response interface{},
	getter func() int,
) {
	httpStatusCode := getter()
	writeHTTPResponse(r.Context(), w, response, httpStatusCode)
}

func GetGeneric(
	w http.ResponseWriter,
	r *http.Request,
	varName string,
	response interface{},
	getter func(string) int,
) {
	vars := mux.Vars(r)
	target := vars[varName]
	httpStatusCode := getter(target)

	writeHTTPResponse(r.Context(), w, response, httpStatusCode)
}

func GetGenericTwoArg(
	w http.ResponseWriter,
	r *http.Request,
	varName1, varName2 string,
	response interface{},
	getter func(string, string) int,
) {
	vars := mux.Vars(r)
	httpStatusCode := getter(vars[varName1], vars[varName2])

	writeHTTPResponse(r.Context(), w, response, httpStatusCode)
}

func ListGeneric(
	w http.ResponseWriter,
	r *http.Request,
	response interface{},
	lister func() int,
) {
	httpStatusCode := lister()
	writeHTTPResponse(r.Context(), w, response, httpStatusCode)
}

func AddGeneric(
	w http.ResponseWriter,
	r *http.Request,
	response httpResponse,
	adder func([]byte) int,
) {
	var httpStatusCode int
	ctx := r.Context()

	defer func() {
		if response.isError() {
			response.logFailure(ctx)
		} else {
			response.logSuccess(ctx)
		}
		writeHTTPResponse(ctx, w, response, httpStatusCode)
	}()

	body, err := readBody(r)
	if err != nil {
		response.setError(err)
		httpStatusCode = httpStatusCodeForError(err, http.StatusCreated)
		return
	}
	httpStatusCode = adder(body)
}

// UpdateGeneric serves calls that act on an existing object named by varName, with an optional JSON body.
func UpdateGeneric(
	w http.ResponseWriter,
	r *http.Request,
	varName string,
	response httpResponse,
	updater func(string, []byte) int,
) {
	var httpStatusCode int
	ctx := r.Context()

	defer func() {
		if response.isError() {
			response.logFailure(ctx)
		} else {
			response.logSuccess(ctx)
		}
		writeHTTPResponse(ctx, w, response, httpStatusCode)
	}()

	body, err := readBody(r)
	if err != nil {
		response.setError(err)
		httpStatusCode = httpStatusCodeForError(err, http.StatusOK)
		return
	}
	httpStatusCode = updater(mux.Vars(r)[varName], body)
}

type DeleteResponse struct {
	Error string `json:"error,omitempty"`
}

type deleteFunc func(ctx context.Context, name string) error

func DeleteGeneric(
	w http.ResponseWriter,
	r *http.Request,
	deleter deleteFunc,
	varName string,
) {
	ctx := r.Context()
	response := DeleteResponse{}

	vars := mux.Vars(r)
	toDelete := vars[varName]

	err := deleter(ctx, toDelete)
	if err != nil {
		response.Error = err.Error()
		Logc(ctx).WithField(varName, toDelete).WithError(err).Error("Delete failed.")
	}
	writeHTTPResponse(ctx, w, response, httpStatusCodeForError(err, http.StatusOK))
}

type deleteFuncTwoArg func(ctx context.Context, name1, name2 string) error

func DeleteGenericTwoArg(
	w http.ResponseWriter,
	r *http.Request,
	deleter deleteFuncTwoArg,
	varName1, varName2 string,
) {
	ctx := r.Context()
	response := DeleteResponse{}

	vars := mux.Vars(r)
	err := deleter(ctx, vars[varName1], vars[varName2])
	if err != nil {
		response.Error = err.Error()
		Logc(ctx).WithFields(LogFields{
			varName1: vars[varName1],
			varName2: vars[varName2],
		}).WithError(err).Error("Delete failed.")
	}
	writeHTTPResponse(ctx, w, response, httpStatusCodeForError(err, http.StatusOK))
}
