// Copyright (c) 2026 Code2Lead. All rights reserved.

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/convert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 7, convert.ToIntD("", 7))
	assert.Equal(t, 7, convert.ToIntD("seven", 7))
	assert.Equal(t, 42, convert.ToIntD("42", 7))
	assert.Equal(t, -1, convert.ToIntD("-1", 7))
}

func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool(""))
	assert.False(t, convert.ToBool("yes"))
}
