// Copyright 2025 NetApp, Inc. All Rights Reserved.

package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/collection"
)

// ToPtr converts any value into a pointer to that value.
func ToPtr[T any](v T) *T {
	return &v
}

// PtrToString converts any value into its string representation, or nil
func PtrToString[T any](v *T) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", *v)
}

// ToBool wraps strconv.ParseBool to suppress errors. Returns false if strconv.ParseBool would return an error.
func ToBool(b string) bool {
	v, _ := strconv.ParseBool(b)
	return v
}

// ToFormattedBool returns lowercase string value for a valid boolean value, else returns same value with error.
func ToFormattedBool(value string) (string, error) {
	valBool, err := strconv.ParseBool(value)
	if err != nil {
		return value, err
	}

	return strconv.FormatBool(valBool), nil
}

// ToStringRedacted renders the fields of a struct pointer, replacing the fields named in redactList
// and substituting configVal for a field named Config.
func ToStringRedacted(structPointer any, redactList []string, configVal any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			Logc(nil).Errorf("Panic in convert#ToStringRedacted; err: %v", r)
			out = "<panic>"
		}
	}()

	elements := reflect.ValueOf(structPointer).Elem()

	var output strings.Builder

	for i := 0; i < elements.NumField(); i++ {
		fieldName := elements.Type().Field(i).Name
		switch {
		case fieldName == "Config" && configVal != nil:
			output.WriteString(fmt.Sprintf("%v:%v ", fieldName, configVal))
		case collection.ContainsString(redactList, fieldName):
			output.WriteString(fmt.Sprintf("%v:%v ", fieldName, REDACTED))
		default:
			output.WriteString(fmt.Sprintf("%v:%#v ", fieldName, elements.Field(i)))
		}
	}

	out = output.String()
	return
}
