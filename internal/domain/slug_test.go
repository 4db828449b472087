package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Code Reviewer":    "code-reviewer",
		"  API / Gateway ": "api-gateway",
		"UPPER":            "upper",
		"a--b":             "a-b",
		"@#$":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}
