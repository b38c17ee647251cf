package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAttributes(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want map[string]string
	}{
		{
			name: "valid object",
			blob: `{"RAM":"8GB","Storage":"256GB"}`,
			want: map[string]string{"RAM": "8GB", "Storage": "256GB"},
		},
		{
			name: "empty string",
			blob: "",
			want: map[string]string{},
		},
		{
			name: "empty object",
			blob: "{}",
			want: map[string]string{},
		},
		{
			name: "malformed json",
			blob: `{"RAM":`,
			want: map[string]string{},
		},
		{
			name: "wrong shape",
			blob: `["RAM","8GB"]`,
			want: map[string]string{},
		},
		{
			name: "non-string values",
			blob: `{"RAM":8}`,
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeAttributes(tt.blob))
		})
	}
}

func TestEncodeAttributes(t *testing.T) {
	assert.Equal(t, "{}", EncodeAttributes(nil))
	assert.Equal(t, "{}", EncodeAttributes(map[string]string{}))
	assert.JSONEq(t, `{"RAM":"8GB"}`, EncodeAttributes(map[string]string{"RAM": "8GB"}))
}

func TestEncodeDecodeAttributesRoundTrip(t *testing.T) {
	attrs := map[string]string{
		"Display": "6.7-inch",
		"Battery": "4500",
		"Weight":  "195g",
	}
	assert.Equal(t, attrs, DecodeAttributes(EncodeAttributes(attrs)))
}

func TestDecodeImages(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want []string
	}{
		{"valid list", `["/img/a.png","/img/b.png"]`, []string{"/img/a.png", "/img/b.png"}},
		{"empty string", "", []string{}},
		{"empty list", "[]", []string{}},
		{"malformed json", `["/img/a.png"`, []string{}},
		{"null literal", "null", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeImages(tt.blob))
		})
	}
}

func TestEncodeImages(t *testing.T) {
	assert.Equal(t, "[]", EncodeImages(nil))
	assert.JSONEq(t, `["/img/a.png"]`, EncodeImages([]string{"/img/a.png"}))
}
