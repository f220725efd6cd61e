package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeItems_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		items []ListItem
	}{
		{
			name:  "single item",
			items: []ListItem{{Name: "milk", Quantity: 1}},
		},
		{
			name: "multiple items keep order",
			items: []ListItem{
				{Name: "eggs", Quantity: 12},
				{Name: "bread", Quantity: 2},
				{Name: "butter", Quantity: 1},
			},
		},
		{
			name:  "empty list",
			items: []ListItem{},
		},
		{
			name:  "unicode names",
			items: []ListItem{{Name: "молоко", Quantity: 3}, {Name: "奶酪", Quantity: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeItems(tt.items)
			require.NoError(t, err)

			decoded, err := DecodeItems(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.items, decoded)
		})
	}
}

func TestDecodeItems_InvalidJSON(t *testing.T) {
	_, err := DecodeItems(`{"name": "milk"`)
	assert.Error(t, err)
}

func TestDecodeItems_NotASequence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "object", raw: `{"name": "milk", "quantity": 1}`},
		{name: "string", raw: `"milk"`},
		{name: "number", raw: `42`},
		{name: "null", raw: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeItems(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestDecodeItems_EmptyArray(t *testing.T) {
	items, err := DecodeItems(`[]`)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}
