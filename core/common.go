// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"time"

	persistentstore "github.com/pmax-drivers/powermax/persistent_store"
	"github.com/pmax-drivers/powermax/utils/errors"
)

// recordTiming is used to record in Prometheus the total time taken for an operation as follows:
//
//	defer recordTiming("volume_add", &err)()
func recordTiming(operation string, err *error) func() {
	startTime := time.Now()
	return func() {
		endTime := time.Since(startTime)
		endTimeMS := float64(endTime.Milliseconds())
		success := "true"
		if *err != nil {
			success = "false"
		}
		operationDurationInMsSummary.WithLabelValues(operation, success).Observe(endTimeMS)
	}
}

// storeError turns a store miss into a NotFoundError so that callers need not know about the store.
func storeError(err error, kind, name string) error {
	if err == nil {
		return nil
	}
	if persistentstore.MatchKeyNotFoundErr(err) {
		return errors.WrapWithNotFoundError(err, "%s %s not found", kind, name)
	}
	if persistentstore.MatchKeyExistsErr(err) {
		return errors.AlreadyExistsError("%s %s already exists", kind, name)
	}
	return err
}
