// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmax-drivers/powermax/utils/errors"
)

const (
	testArray  = "000197900123"
	testRemote = "000197900456"
	primary    = "https://unisphere1:8443/univmax/restapi"
	secondary  = "https://unisphere2:8443/univmax/restapi"
)

func newTestClient(t *testing.T, hosts ...string) (*Client, *httpmock.MockTransport) {
	t.Helper()
	if len(hosts) == 0 {
		hosts = []string{"unisphere1"}
	}

	endpoints := make([]Endpoint, 0, len(hosts))
	for _, h := range hosts {
		endpoints = append(endpoints, Endpoint{Host: h, Port: 8443, Username: "smc", Password: "smc"})
	}

	c, err := NewClient(ClientConfig{
		Endpoints:   endpoints,
		Array:       testArray,
		JobInterval: time.Millisecond,
		JobRetries:  3,
	})
	require.NoError(t, err)

	mt := httpmock.NewMockTransport()
	for _, hc := range c.httpClients {
		hc.Transport = mt
	}
	return c, mt
}

func sloURL(segments string) string {
	return primary + "/100/sloprovisioning/symmetrix/" + testArray + segments
}

func decodeBody(t *testing.T, req *http.Request, into any) {
	t.Helper()
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, into))
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	assert.True(t, errors.IsInvalidInputError(err))

	c, err := NewClient(ClientConfig{Endpoints: []Endpoint{{Host: "u1"}}})
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIVersion, c.config.APIVersion)
	assert.Equal(t, DefaultJobInterval, c.config.JobInterval)
	assert.Equal(t, DefaultJobRetries, c.config.JobRetries)
	assert.Equal(t, "u1:8443", c.ActiveEndpoint().String())

	_, err = NewClient(ClientConfig{Endpoints: []Endpoint{{Host: "u1", CACert: []byte("not a cert")}}})
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestEndpoint_GoStringRedactsCredentials(t *testing.T) {
	e := Endpoint{Host: "u1", Username: "admin", Password: "s3cr3t"}
	s := fmt.Sprintf("%#v", e)
	assert.NotContains(t, s, "admin")
	assert.NotContains(t, s, "s3cr3t")
}

func TestParseUnisphereVersion(t *testing.T) {
	tests := []struct {
		version  string
		expected int
		isError  bool
	}{
		{"V10.0.0.1", 100, false},
		{"T9.2.1.5", 92, false},
		{"V9.1.0.5", 91, false},
		{"10", 0, true},
		{"Vx.y", 0, true},
	}
	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			v, err := ParseUnisphereVersion(test.version)
			if test.isError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, test.expected, v)
			}
		})
	}
}

func TestConnect(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		local     bool
		errorFunc func(error) bool
	}{
		{"Supported", "V10.0.0.1", true, nil},
		{"TooOld", "V9.1.0.5", true, errors.IsUnsupportedConfigError},
		{"RemoteArray", "V10.0.0.1", false, errors.IsUnsupportedConfigError},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, mt := newTestClient(t)
			mt.RegisterResponder("GET", primary+"/version",
				httpmock.NewJsonResponderOrPanic(200, Version{Version: test.version}))
			mt.RegisterResponder("GET", primary+"/100/system/symmetrix/"+testArray,
				httpmock.NewJsonResponderOrPanic(200, Symmetrix{SymmetrixID: testArray, Local: test.local}))

			err := c.Connect(context.Background())
			if test.errorFunc == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, test.errorFunc(err), "unexpected error %v", err)
			}
		})
	}
}

func TestInvokeAPI_FailsOverToNextEndpoint(t *testing.T) {
	c, mt := newTestClient(t, "unisphere1", "unisphere2")
	mt.RegisterResponder("GET", primary+"/version", httpmock.NewErrorResponder(fmt.Errorf("connection refused")))
	mt.RegisterResponder("GET", secondary+"/version",
		httpmock.NewJsonResponderOrPanic(200, Version{Version: "V10.0.0.1"}))

	v, err := c.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "V10.0.0.1", v.Version)
	assert.Equal(t, "unisphere2", c.ActiveEndpoint().Host)

	// Subsequent calls start at the new active endpoint.
	_, err = c.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, mt.GetCallCountInfo()["GET "+primary+"/version"])
	assert.Equal(t, 2, mt.GetCallCountInfo()["GET "+secondary+"/version"])
}

func TestInvokeAPI_AllEndpointsDown(t *testing.T) {
	c, mt := newTestClient(t, "unisphere1", "unisphere2")
	mt.RegisterResponder("GET", primary+"/version", httpmock.NewErrorResponder(fmt.Errorf("connection refused")))
	mt.RegisterResponder("GET", secondary+"/version", httpmock.NewErrorResponder(fmt.Errorf("no route to host")))

	_, err := c.GetVersion(context.Background())
	assert.True(t, errors.IsConnectionError(err))
	assert.Equal(t, "unisphere1", c.ActiveEndpoint().Host)
}

func TestCall_StatusMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		errorFunc func(error) bool
	}{
		{"NotFound", 404, errors.IsNotFoundError},
		{"TooManyRequests", 429, errors.IsTooManyRequestsError},
		{"ServerError", 500, errors.IsVolumeBackendAPIError},
		{"BadRequest", 400, errors.IsVolumeBackendAPIError},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, mt := newTestClient(t)
			mt.RegisterResponder("GET", sloURL("/storagegroup/SG1"),
				httpmock.NewJsonResponderOrPanic(test.status, map[string]string{"message": "boom"}))

			_, err := c.GetStorageGroup(context.Background(), testArray, "SG1")
			assert.True(t, test.errorFunc(err), "unexpected error %v", err)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestCall_StatusCodeCarried(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder("DELETE", sloURL("/storagegroup/SG1"),
		httpmock.NewStringResponder(409, `{"message":"in use"}`))

	err := c.DeleteStorageGroup(context.Background(), testArray, "SG1")
	assert.Equal(t, http.StatusConflict, errors.BackendAPIStatusCode(err))
}

func TestCheckArray(t *testing.T) {
	c, _ := newTestClient(t)
	c.config.AllowedArrays = []string{testArray}

	assert.True(t, c.IsArrayAllowed(testArray))
	assert.False(t, c.IsArrayAllowed(testRemote))

	_, err := c.GetStorageGroup(context.Background(), testRemote, "SG1")
	assert.True(t, errors.IsInvalidInputError(err))

	_, err = c.GetStorageGroup(context.Background(), "", "SG1")
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestGetSymmetrixIDs_FiltersAllowedArrays(t *testing.T) {
	c, mt := newTestClient(t)
	c.config.AllowedArrays = []string{testArray}
	mt.RegisterResponder("GET", primary+"/100/system/symmetrix",
		httpmock.NewJsonResponderOrPanic(200, map[string][]string{"symmetrixId": {testArray, testRemote}}))

	ids, err := c.GetSymmetrixIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{testArray}, ids)
}

func registerJob(mt *httpmock.MockTransport, jobID string, statuses ...string) *int32 {
	var calls int32
	mt.RegisterResponder("GET", primary+"/100/system/job/"+jobID,
		func(req *http.Request) (*http.Response, error) {
			n := int(atomic.AddInt32(&calls, 1)) - 1
			if n >= len(statuses) {
				n = len(statuses) - 1
			}
			return httpmock.NewJsonResponse(200, Job{JobID: jobID, Status: statuses[n], Result: "result"})
		})
	return &calls
}

func TestWaitForJob(t *testing.T) {
	t.Run("Succeeded", func(t *testing.T) {
		c, mt := newTestClient(t)
		calls := registerJob(mt, "1", JobStatusRunning, JobStatusRunning, JobStatusSucceeded)

		job, err := c.WaitForJob(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, JobStatusSucceeded, job.Status)
		assert.Equal(t, int32(3), atomic.LoadInt32(calls))
	})

	t.Run("Failed", func(t *testing.T) {
		c, mt := newTestClient(t)
		calls := registerJob(mt, "2", JobStatusRunning, JobStatusFailed)

		_, err := c.WaitForJob(context.Background(), "2")
		assert.True(t, errors.IsVolumeBackendAPIError(err))
		assert.Equal(t, int32(2), atomic.LoadInt32(calls))
	})

	t.Run("NeverCompletes", func(t *testing.T) {
		c, mt := newTestClient(t)
		calls := registerJob(mt, "3", JobStatusRunning)

		_, err := c.WaitForJob(context.Background(), "3")
		assert.True(t, errors.IsMaxWaitExceededError(err))
		assert.Equal(t, int32(4), atomic.LoadInt32(calls))
	})

	t.Run("Cancelled", func(t *testing.T) {
		c, mt := newTestClient(t)
		c.config.JobInterval = time.Hour
		registerJob(mt, "4", JobStatusRunning)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := c.WaitForJob(ctx, "4")
		assert.Error(t, err)
	})
}

func TestCall_AsyncRequestWaitsForJob(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder("PUT", sloURL("/storagegroup/SG1"),
		httpmock.NewJsonResponderOrPanic(202, Job{JobID: "42", Status: JobStatusScheduled}))
	calls := registerJob(mt, "42", JobStatusRunning, JobStatusSucceeded)

	err := c.UpdateStorageGroupSLO(context.Background(), testArray, "SG1", "Diamond")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestRouteLabel(t *testing.T) {
	tests := map[string]string{
		"/version": "version",
		"/100/sloprovisioning/symmetrix/000197900123/storagegroup/OS-SG":         "sloprovisioning/symmetrix/storagegroup",
		"/100/sloprovisioning/symmetrix/000197900123/maskingview/MV/connections": "sloprovisioning/symmetrix/maskingview/connections",
		"/100/replication/symmetrix/000197900123/snapshot/snap1/generation/0":    "replication/symmetrix/snapshot/generation",
		"/100/system/job/1234":            "system/job",
		"/common/Iterator/abcd-1234/page": "common/Iterator/page",
	}
	for path, expected := range tests {
		assert.Equal(t, expected, routeLabel(path), path)
	}
}
