// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package api provides a high-level interface to the Unisphere for PowerMax REST API.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	pmaxconfig "github.com/pmax-drivers/powermax/config"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/collection"
	"github.com/pmax-drivers/powermax/utils/errors"
)

const (
	restAPIRoot = "/univmax/restapi"

	DefaultAPIVersion  = "100"
	DefaultPort        = 8443
	DefaultJobInterval = 3 * time.Second
	DefaultJobRetries  = 200

	// MinimumUnisphereVersion is the oldest Unisphere release the driver supports, as major*10+minor.
	MinimumUnisphereVersion = 92
)

// Endpoint is one Unisphere server.  The first endpoint is primary; the rest are failover targets.
type Endpoint struct {
	Host      string
	Port      int
	Username  string
	Password  string
	VerifyTLS bool
	CACert    []byte
}

func (e Endpoint) String() string {
	port := e.Port
	if port == 0 {
		port = DefaultPort
	}
	return e.Host + ":" + strconv.Itoa(port)
}

// GoString keeps credentials out of %#v output.
func (e Endpoint) GoString() string {
	return fmt.Sprintf("api.Endpoint{Host:%q, Port:%d, Username:%s, Password:%s, VerifyTLS:%v}",
		e.Host, e.Port, REDACTED, REDACTED, e.VerifyTLS)
}

// ClientConfig holds configuration data for the API client object.
type ClientConfig struct {
	Endpoints  []Endpoint
	APIVersion string

	// Array is the local array serial.  AllowedArrays, when not empty, limits every call to the arrays it names.
	Array         string
	AllowedArrays []string

	JobInterval       time.Duration
	JobRetries        int
	RequestsPerSecond int

	DebugTraceFlags map[string]bool
}

// Client is the object to use for interacting with Unisphere.
type Client struct {
	config      *ClientConfig
	httpClients []*http.Client
	limiter     *rate.Limiter

	m      sync.RWMutex
	active int
}

// NewClient is a factory method for creating a new instance.
func NewClient(config ClientConfig) (*Client, error) {
	if len(config.Endpoints) == 0 {
		return nil, errors.InvalidInputError("at least one Unisphere endpoint is required")
	}
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}
	if config.JobInterval <= 0 {
		config.JobInterval = DefaultJobInterval
	}
	if config.JobRetries <= 0 {
		config.JobRetries = DefaultJobRetries
	}
	if config.DebugTraceFlags == nil {
		config.DebugTraceFlags = map[string]bool{}
	}

	c := &Client{config: &config}

	for _, endpoint := range config.Endpoints {
		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
		if len(endpoint.CACert) > 0 {
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(endpoint.CACert) {
				return nil, errors.InvalidInputError("could not parse CA certificate for Unisphere endpoint %s",
					endpoint)
			}
			tlsConfig.RootCAs = pool
		} else {
			tlsConfig.InsecureSkipVerify = !endpoint.VerifyTLS
		}

		c.httpClients = append(c.httpClients, &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: tlsConfig,
				Proxy:           http.ProxyFromEnvironment,
			},
			Timeout: pmaxconfig.StorageAPITimeoutSeconds * time.Second,
		})
	}

	if config.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.RequestsPerSecond)
	} else {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	}

	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() ClientConfig {
	return *c.config
}

// ActiveEndpoint returns the Unisphere endpoint currently serving requests.
func (c *Client) ActiveEndpoint() Endpoint {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.config.Endpoints[c.active]
}

func (c *Client) setActive(ctx context.Context, index int) {
	c.m.Lock()
	defer c.m.Unlock()
	if c.active != index {
		Logc(ctx).WithFields(LogFields{
			"from": c.config.Endpoints[c.active].String(),
			"to":   c.config.Endpoints[index].String(),
		}).Warning("Failing over to alternate Unisphere endpoint.")
		apiFailoversTotal.Inc()
		c.active = index
	}
}

// IsArrayAllowed reports whether the client may operate on the given array.
func (c *Client) IsArrayAllowed(array string) bool {
	if len(c.config.AllowedArrays) == 0 {
		return true
	}
	return collection.ContainsStringCaseInsensitive(c.config.AllowedArrays, array)
}

func (c *Client) checkArray(array string) error {
	if array == "" {
		return errors.InvalidInputError("array serial number is required")
	}
	if !c.IsArrayAllowed(array) {
		return errors.InvalidInputError("array %s is not in the list of allowed arrays", array)
	}
	return nil
}

// InvokeAPI sends a request to the active Unisphere endpoint, failing over to the next endpoint
// on connection errors.  The resource path is relative to the REST API root.
func (c *Client) InvokeAPI(
	ctx context.Context, method, resourcePath string, query url.Values, requestBody []byte,
) (*http.Response, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, errors.WrapWithConnectionError(err, "request to Unisphere not sent")
	}

	c.m.RLock()
	start := c.active
	c.m.RUnlock()

	var lastErr error
	for i := 0; i < len(c.config.Endpoints); i++ {
		index := (start + i) % len(c.config.Endpoints)

		response, responseBody, err := c.invokeEndpoint(ctx, index, method, resourcePath, query, requestBody)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, err
			}
			Logc(ctx).WithField("endpoint", c.config.Endpoints[index].String()).WithError(err).Warning(
				"Error communicating with Unisphere.")
			lastErr = err
			continue
		}

		c.setActive(ctx, index)
		return response, responseBody, nil
	}

	return nil, nil, errors.WrapWithConnectionError(lastErr, "no Unisphere endpoint could be reached")
}

func (c *Client) invokeEndpoint(
	ctx context.Context, index int, method, resourcePath string, query url.Values, requestBody []byte,
) (*http.Response, []byte, error) {
	endpoint := c.config.Endpoints[index]

	u := url.URL{
		Scheme: "https",
		Host:   endpoint.String(),
		Path:   restAPIRoot + resourcePath,
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if requestBody != nil {
		body = bytes.NewReader(requestBody)
	}

	request, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.SetBasicAuth(endpoint.Username, endpoint.Password)

	if c.config.DebugTraceFlags["api"] {
		LogHTTPRequest(request, prettyJSON(requestBody), false)
	}

	route := routeLabel(resourcePath)
	timer := time.Now()

	response, err := c.httpClients[index].Do(request)
	if err != nil {
		apiOpsTotal.WithLabelValues(method, route, "error").Inc()
		return nil, nil, err
	}
	defer func() { _ = response.Body.Close() }()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, nil, err
	}

	apiOpsTotal.WithLabelValues(method, route, strconv.Itoa(response.StatusCode)).Inc()
	apiOpsSeconds.WithLabelValues(method, route).Observe(time.Since(timer).Seconds())

	if c.config.DebugTraceFlags["api"] {
		LogHTTPResponse(ctx, response, prettyJSON(responseBody), false)
	}

	return response, responseBody, nil
}

// call marshals the payload, invokes the API and decodes the response into result.  Asynchronous
// requests are followed until their job completes.
func (c *Client) call(
	ctx context.Context, method, resourcePath string, query url.Values, payload, result any,
) error {
	var requestBody []byte
	if payload != nil {
		var err error
		if requestBody, err = json.Marshal(payload); err != nil {
			return fmt.Errorf("could not marshal JSON request; %v", err)
		}
	}

	response, responseBody, err := c.InvokeAPI(ctx, method, resourcePath, query, requestBody)
	if err != nil {
		return err
	}

	switch response.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
	case http.StatusAccepted:
		job := Job{}
		if err = json.Unmarshal(responseBody, &job); err != nil {
			return fmt.Errorf("could not parse job response: %s; %v", string(responseBody), err)
		}
		if job.JobID == "" {
			break
		}
		if _, err = c.WaitForJob(ctx, job.JobID); err != nil {
			return err
		}
		return nil
	case http.StatusNotFound:
		return errors.NotFoundError("%s %s: %s", method, resourcePath, errorMessage(responseBody))
	case http.StatusTooManyRequests:
		return errors.TooManyRequestsError("%s %s: %s", method, resourcePath, errorMessage(responseBody))
	default:
		return errors.VolumeBackendAPIErrorWithStatus(response.StatusCode, "%s %s failed with status %d: %s",
			method, resourcePath, response.StatusCode, errorMessage(responseBody))
	}

	if result != nil && len(bytes.TrimSpace(responseBody)) > 0 {
		if err = json.Unmarshal(responseBody, result); err != nil {
			return fmt.Errorf("could not parse API response: %s; %v", string(responseBody), err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, resourcePath string, query url.Values, result any) error {
	return c.call(ctx, http.MethodGet, resourcePath, query, nil, result)
}

func (c *Client) post(ctx context.Context, resourcePath string, payload, result any) error {
	return c.call(ctx, http.MethodPost, resourcePath, nil, payload, result)
}

func (c *Client) put(ctx context.Context, resourcePath string, payload, result any) error {
	return c.call(ctx, http.MethodPut, resourcePath, nil, payload, result)
}

func (c *Client) delete(ctx context.Context, resourcePath string, payload any) error {
	return c.call(ctx, http.MethodDelete, resourcePath, nil, payload, nil)
}

// resource builds a versioned resource path, escaping every segment.
func (c *Client) resource(segments ...string) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(c.config.APIVersion)
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func (c *Client) sloResource(array string, segments ...string) string {
	return c.resource(append([]string{"sloprovisioning", "symmetrix", array}, segments...)...)
}

func (c *Client) replicationResource(array string, segments ...string) string {
	return c.resource(append([]string{"replication", "symmetrix", array}, segments...)...)
}

func (c *Client) systemResource(segments ...string) string {
	return c.resource(append([]string{"system"}, segments...)...)
}

func errorMessage(body []byte) string {
	resp := errorResponse{}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}
	return strings.TrimSpace(string(body))
}

func prettyJSON(body []byte) []byte {
	if body == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return body
	}
	return buf.Bytes()
}

// routeLabel reduces a resource path to its resource kinds so metric cardinality stays bounded.
func routeLabel(resourcePath string) string {
	segments := strings.Split(strings.Trim(resourcePath, "/"), "/")
	kinds := make([]string, 0, len(segments))
	for i, s := range segments {
		switch {
		case i == 0 && s != "common" && s != "version":
			// API version
		case s == "symmetrix" || s == "sloprovisioning" || s == "replication" || s == "system" ||
			s == "common" || s == "version":
			kinds = append(kinds, s)
		case i > 0 && isResourceKind(segments[i-1]):
			// resource name
		default:
			kinds = append(kinds, s)
		}
	}
	return strings.Join(kinds, "/")
}

func isResourceKind(s string) bool {
	switch s {
	case "symmetrix", "storagegroup", "volume", "maskingview", "portgroup", "host", "initiator", "director",
		"port", "srp", "snapshot", "generation", "rdf_group", "job", "Iterator":
		return true
	}
	return false
}
