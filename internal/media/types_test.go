package media

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"funny, , cats ,", []string{"funny", "cats"}},
		{"funny,cats", []string{"funny", "cats"}},
		{"  solo  ", []string{"solo"}},
		{"", nil},
		{", ,  ,", nil},
		{"a, b , c", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseTags(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUploadRequestValidate(t *testing.T) {
	if err := (UploadRequest{VideoLink: "https://youtu.be/ABCDEFGHIJK"}).Validate(); err != nil {
		t.Errorf("valid link rejected: %v", err)
	}
	if err := (UploadRequest{VideoLink: ""}).Validate(); err == nil {
		t.Error("empty link accepted")
	}
	if err := (UploadRequest{VideoLink: "   \t "}).Validate(); err == nil {
		t.Error("whitespace-only link accepted")
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Short{Name: "Skate clip"}).DisplayName(); got != "Skate clip" {
		t.Errorf("DisplayName = %q, want 'Skate clip'", got)
	}
	if got := (Short{}).DisplayName(); got != UntitledName {
		t.Errorf("DisplayName for empty name = %q, want %q", got, UntitledName)
	}
	if got := (Short{Name: "  "}).DisplayName(); got != UntitledName {
		t.Errorf("DisplayName for blank name = %q, want %q", got, UntitledName)
	}
}

func TestFilter(t *testing.T) {
	shorts := []Short{
		{ID: "1", Name: "Funny cats", Tags: []string{"pets"}},
		{ID: "2", Name: "Skate fail", Tags: []string{"sports", "fails"}},
		{ID: "3", Name: "", Tags: []string{"misc"}},
	}

	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"by name", "funny", []string{"1"}},
		{"by name case-insensitive", "SKATE", []string{"2"}},
		{"by tag", "fails", []string{"2"}},
		{"untitled matches default name", "untitled", []string{"3"}},
		{"empty query returns all", "", []string{"1", "2", "3"}},
		{"no match", "cooking", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(shorts, tt.query)
			var ids []string
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			if !reflect.DeepEqual(ids, tt.ids) {
				t.Errorf("Filter(%q) ids = %v, want %v", tt.query, ids, tt.ids)
			}
		})
	}
}
