// Copyright 2025 NetApp, Inc. All Rights Reserved.

package collection

import "strings"

// ContainsString checks whether a string is in a list.
func ContainsString(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// ContainsStringCaseInsensitive checks whether a string is in a list, ignoring case.  WWNs and IQNs
// come back from the array in a different case than hosts report them.
func ContainsStringCaseInsensitive(s []string, v string) bool {
	for _, item := range s {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

// RemoveString removes every occurrence of a string from a list.
func RemoveString(s []string, v string) []string {
	result := make([]string, 0, len(s))
	for _, item := range s {
		if item != v {
			result = append(result, item)
		}
	}
	return result
}

// Unique returns the list with duplicates removed, keeping the first occurrence.
func Unique(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	result := make([]string, 0, len(s))
	for _, item := range s {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// ContainsAllCaseInsensitive reports whether every element of subset is present in set.
func ContainsAllCaseInsensitive(set, subset []string) bool {
	for _, item := range subset {
		if !ContainsStringCaseInsensitive(set, item) {
			return false
		}
	}
	return true
}
