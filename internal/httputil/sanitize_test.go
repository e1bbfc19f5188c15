package httputil

import "testing"

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://api.example.com/api/shorts", false},
		{"http://localhost:8080/api/shorts", false},
		{"ftp://example.com/file", true},
		{"file:///etc/passwd", true},
		{"https://", true},
		{"not a url", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		expected string
	}{
		{"plain", "https://api.example.com", []string{"api", "shorts"}, "https://api.example.com/api/shorts"},
		{"trailing slash trimmed", "https://api.example.com/", []string{"api", "upload"}, "https://api.example.com/api/upload"},
		{"segment escaping", "https://api.example.com", []string{"a b"}, "https://api.example.com/a%20b"},
		{"no segments", "https://api.example.com", nil, "https://api.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
				t.Errorf("BuildURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}
