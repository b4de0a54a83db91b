// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/utils/errors"
)

var errJobNotDone = errors.New("job not complete")

// GetVersion returns the Unisphere release serving the active endpoint.
func (c *Client) GetVersion(ctx context.Context) (*Version, error) {
	version := &Version{}
	if err := c.get(ctx, "/version", nil, version); err != nil {
		return nil, err
	}
	return version, nil
}

// ParseUnisphereVersion converts a version string such as "V10.0.0.1" or "T9.2.1.5" to major*10+minor.
func ParseUnisphereVersion(version string) (int, error) {
	v := strings.TrimLeft(strings.TrimSpace(version), "VTvt")
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return 0, errors.InvalidInputError("unrecognized Unisphere version %q", version)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errors.InvalidInputError("unrecognized Unisphere version %q", version)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.InvalidInputError("unrecognized Unisphere version %q", version)
	}
	return major*10 + minor, nil
}

// Connect verifies the Unisphere release and that the configured array is local to it.
func (c *Client) Connect(ctx context.Context) error {
	Logd(ctx, "api", c.config.DebugTraceFlags["method"]).Trace(">>>> Connect")
	defer Logd(ctx, "api", c.config.DebugTraceFlags["method"]).Trace("<<<< Connect")

	version, err := c.GetVersion(ctx)
	if err != nil {
		return errors.WrapWithConnectionError(err, "could not read Unisphere version")
	}

	release, err := ParseUnisphereVersion(version.Version)
	if err != nil {
		return err
	}
	if release < MinimumUnisphereVersion {
		return errors.UnsupportedConfigError("Unisphere version %s is not supported; 9.2 or later is required",
			version.Version)
	}

	if c.config.Array == "" {
		return nil
	}

	symm, err := c.GetSymmetrix(ctx, c.config.Array)
	if err != nil {
		return err
	}
	if !symm.Local {
		return errors.UnsupportedConfigError("array %s is not local to Unisphere %s", c.config.Array,
			c.ActiveEndpoint())
	}

	Logc(ctx).WithFields(LogFields{
		"version": version.Version,
		"array":   symm.SymmetrixID,
		"ucode":   symm.Ucode,
		"model":   symm.Model,
	}).Debug("Connected to Unisphere.")

	return nil
}

// GetSymmetrixIDs lists the arrays Unisphere knows about.
func (c *Client) GetSymmetrixIDs(ctx context.Context) ([]string, error) {
	list := struct {
		SymmetrixIDs []string `json:"symmetrixId"`
	}{}
	if err := c.get(ctx, c.systemResource("symmetrix"), nil, &list); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list.SymmetrixIDs))
	for _, id := range list.SymmetrixIDs {
		if c.IsArrayAllowed(id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (c *Client) GetSymmetrix(ctx context.Context, array string) (*Symmetrix, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	symm := &Symmetrix{}
	if err := c.get(ctx, c.systemResource("symmetrix", array), nil, symm); err != nil {
		return nil, err
	}
	return symm, nil
}

// GetJob returns the current state of an asynchronous job.
func (c *Client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	job := &Job{}
	if err := c.get(ctx, c.systemResource("job", jobID), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}

// WaitForJob polls a job until it succeeds, fails, or the configured number of polls is exhausted.
func (c *Client) WaitForJob(ctx context.Context, jobID string) (*Job, error) {
	var job *Job

	checkJob := func() error {
		var err error
		if job, err = c.GetJob(ctx, jobID); err != nil {
			if errors.IsNotFoundError(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		switch job.Status {
		case JobStatusSucceeded:
			return nil
		case JobStatusFailed:
			return backoff.Permanent(errors.VolumeBackendAPIError("job %s (%s) failed: %s", job.JobID,
				job.Name, job.Result))
		default:
			return errJobNotDone
		}
	}

	jobNotify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(LogFields{
			"jobID":     jobID,
			"increment": duration,
		}).Trace("Job not yet complete, waiting.")
	}

	jobBackoff := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.config.JobInterval), uint64(c.config.JobRetries)), ctx)

	if err := backoff.RetryNotify(checkJob, jobBackoff, jobNotify); err != nil {
		if errors.Is(err, errJobNotDone) {
			apiJobsTotal.WithLabelValues("timeout").Inc()
			return job, errors.MaxWaitExceededError("job %s did not complete after %d checks", jobID,
				c.config.JobRetries)
		}
		apiJobsTotal.WithLabelValues("failed").Inc()
		return job, err
	}

	apiJobsTotal.WithLabelValues("succeeded").Inc()
	Logc(ctx).WithField("jobID", jobID).Debug("Job completed.")
	return job, nil
}
