package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	s := &Store{baseURL: "https://assets.example.com"}

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{"platform hosted", "https://assets.example.com/partners/pn_1/logo.png", "partners/pn_1/logo.png", true},
		{"external host", "https://cdn.elsewhere.io/logo.png", "", false},
		{"base url only", "https://assets.example.com/", "", false},
		{"prefix lookalike", "https://assets.example.com.evil.io/x.png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := s.ObjectKey(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestObjectKey_NoBaseURL(t *testing.T) {
	s := &Store{}
	_, ok := s.ObjectKey("https://assets.example.com/x.png")
	assert.False(t, ok)
}
