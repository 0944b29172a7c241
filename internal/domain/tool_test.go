package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolDescriptor_HasInputSchema(t *testing.T) {
	tests := map[string]struct {
		schema   json.RawMessage
		expected bool
	}{
		"nil":         {schema: nil, expected: false},
		"json-null":   {schema: json.RawMessage(`null`), expected: false},
		"empty":       {schema: json.RawMessage(`{}`), expected: false},
		"with-schema": {schema: json.RawMessage(`{"type":"object"}`), expected: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			td := ToolDescriptor{Name: "weather_tool", InputSchema: tt.schema}
			assert.Equal(t, tt.expected, td.HasInputSchema())
		})
	}
}

func TestToolCatalog(t *testing.T) {
	catalog := ToolCatalog{
		{Name: "weather_tool", Description: "Current weather"},
		{Name: "clock_tool"},
	}

	td, found := catalog.Find("weather_tool")
	assert.True(t, found)
	assert.Equal(t, "Current weather", td.Description)

	_, found = catalog.Find("missing")
	assert.False(t, found)

	assert.Equal(t, []string{"weather_tool", "clock_tool"}, catalog.Names())
	assert.Empty(t, ToolCatalog{}.Names())
}

func TestNewUserTurn(t *testing.T) {
	first := NewUserTurn("What is 2+2?")
	second := NewUserTurn("What is 2+2?")

	assert.Equal(t, "What is 2+2?", first.Text)
	assert.NotEqual(t, first.ID, second.ID)
}
