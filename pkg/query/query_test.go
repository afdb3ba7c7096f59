// Copyright (c) 2026 Code2Lead. All rights reserved.

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/query"
)

func TestStringSlice(t *testing.T) {
	assert.Nil(t, query.StringSlice(""))
	assert.Nil(t, query.StringSlice(" , ,"))
	assert.Equal(t, []string{"go", "sql"}, query.StringSlice(" go,, sql "))
}
