package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	temperature := Ptr(0.2)
	assert.InDelta(t, 0.2, *temperature, 1e-9)

	name := Ptr("weather_tool")
	*name = "changed"
	assert.Equal(t, "changed", *name)

	type sample struct {
		A int
		B string
	}
	s := sample{A: 1, B: "test"}
	p := Ptr(s)
	p.A = 2
	assert.Equal(t, 1, s.A, "Ptr must point to a copy")
}

func TestClampRunes(t *testing.T) {
	tests := map[string]struct {
		in       string
		limit    int
		expected string
	}{
		"short":             {in: "hello", limit: 10, expected: "hello"},
		"exact":             {in: "hello", limit: 5, expected: "hello"},
		"cut":               {in: "hello world", limit: 5, expected: "hello..."},
		"collapse-newlines": {in: "line one\n\nline   two", limit: 0, expected: "line one line two"},
		"multibyte":         {in: "ça va très bien", limit: 4, expected: "ça v..."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampRunes(tt.in, tt.limit))
		})
	}
}
