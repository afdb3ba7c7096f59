// Copyright (c) 2026 Code2Lead. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Intro to Go", "intro-to-go"},
		{"  Go: Concurrency -- Patterns!  ", "go-concurrency-patterns"},
		{"Café Déjà Vu", "cafe-deja-vu"},
		{"SQL 101", "sql-101"},
		{"日本語", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

func TestFrom_IsIdempotent(t *testing.T) {
	for _, title := range []string{"Intro to Go", "Café Déjà Vu", "a--b__c"} {
		once := slug.From(title)
		assert.Equal(t, once, slug.From(once), title)
	}
}
