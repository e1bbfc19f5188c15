package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shorts/internal/media"
)

func TestShorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/shorts" {
			t.Errorf("path = %q, want /api/shorts", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"a1","name":"Funny cats","tags":["pets","funny"],"videoUrl":"https://youtu.be/dQw4w9WgXcQ","thumbnail":"https://cdn.example.com/a1.jpg"},
			{"id":"b2","name":"","tags":[],"videoUrl":"https://cdn.example.com/clip.mp4"}
		]`))
	}))
	defer srv.Close()

	shorts, err := New(srv.URL).Shorts()
	if err != nil {
		t.Fatalf("Shorts() error: %v", err)
	}

	if len(shorts) != 2 {
		t.Fatalf("expected 2 shorts, got %d", len(shorts))
	}
	if shorts[0].ID != "a1" || shorts[0].Name != "Funny cats" {
		t.Errorf("shorts[0] = %+v", shorts[0])
	}
	if len(shorts[0].Tags) != 2 {
		t.Errorf("shorts[0].Tags = %v", shorts[0].Tags)
	}
	if shorts[1].DisplayName() != media.UntitledName {
		t.Errorf("unnamed record displays as %q", shorts[1].DisplayName())
	}
}

func TestShortsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Shorts(); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" {
			t.Errorf("path = %q, want /api/upload", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var req media.UploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.VideoLink != "https://youtu.be/dQw4w9WgXcQ" {
			t.Errorf("videoLink = %q", req.VideoLink)
		}
		if req.Name != "My clip" {
			t.Errorf("name = %q", req.Name)
		}
		if len(req.Tags) != 2 || req.Tags[0] != "funny" || req.Tags[1] != "cats" {
			t.Errorf("tags = %v", req.Tags)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(media.Short{
			ID: "c3", Name: req.Name, Tags: req.Tags, VideoURL: req.VideoLink,
		})
	}))
	defer srv.Close()

	created, err := New(srv.URL).Upload(media.UploadRequest{
		VideoLink: "  https://youtu.be/dQw4w9WgXcQ ",
		Name:      "My clip",
		Tags:      media.ParseTags("funny, , cats ,"),
	})
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	if created == nil || created.ID != "c3" {
		t.Errorf("created = %+v", created)
	}
}

func TestUploadDefaultsName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req media.UploadRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Name != media.UntitledName {
			t.Errorf("name = %q, want %q", req.Name, media.UntitledName)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Upload(media.UploadRequest{VideoLink: "https://cdn.example.com/clip.mp4"}); err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
}

func TestUploadEmptyLinkNeverSent(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := New(srv.URL).Upload(media.UploadRequest{VideoLink: "   "})
	if !errors.Is(err, media.ErrEmptyLink) {
		t.Errorf("error = %v, want ErrEmptyLink", err)
	}
	if called {
		t.Error("backend was called for an empty link")
	}
}

func TestUploadBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"link already submitted"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Upload(media.UploadRequest{VideoLink: "https://youtu.be/dQw4w9WgXcQ"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Error() != "link already submitted" {
		t.Errorf("message = %q, want backend message verbatim", apiErr.Error())
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.Status)
	}
}

func TestUploadBackendErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Upload(media.UploadRequest{VideoLink: "https://youtu.be/dQw4w9WgXcQ"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Error() != "backend returned status 500" {
		t.Errorf("generic message = %q", apiErr.Error())
	}
}
