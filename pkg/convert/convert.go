// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package convert provides lenient string conversions for query parameters.

Malformed input is treated as absent. Do not use it where a malformed value must
be reported to the client.
*/
package convert

import "strconv"

// ToIntD converts str to an int, returning def when str is empty or malformed.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

// ToBool parses "true", "1", "false", "0" and the other [strconv.ParseBool] forms.
// It returns false on an empty or malformed string.
func ToBool(s string) bool {
	v, _ := strconv.ParseBool(s)
	return v
}
