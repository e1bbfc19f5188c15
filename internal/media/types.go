// Package media defines shared types for the shorts application.
package media

import (
	"errors"
	"strings"
	"time"
)

// UntitledName is the display name used when a record has no name.
const UntitledName = "Untitled"

// ErrEmptyLink is returned when an upload is attempted without a video link.
var ErrEmptyLink = errors.New("video link cannot be empty")

// Short is a single video record as returned by the backend.
// Records are read-only on the client; the list is replaced wholesale on refresh.
type Short struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tags      []string `json:"tags"`
	VideoURL  string   `json:"videoUrl"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// DisplayName returns the record name, or UntitledName when absent.
func (s Short) DisplayName() string {
	if strings.TrimSpace(s.Name) == "" {
		return UntitledName
	}
	return s.Name
}

// UploadRequest is the payload for submitting a new video link.
type UploadRequest struct {
	VideoLink string   `json:"videoLink"`
	Name      string   `json:"name"`
	Tags      []string `json:"tags"`
}

// Validate checks the request before it is sent.
// An empty or whitespace-only link is the only local failure mode.
func (r UploadRequest) Validate() error {
	if strings.TrimSpace(r.VideoLink) == "" {
		return ErrEmptyLink
	}
	return nil
}

// WatchEntry is a single entry in the local watch history.
type WatchEntry struct {
	ID        string    // Backend record ID
	Name      string    // Display name at watch time
	VideoURL  string    // URL that was played
	Position  float64   // Last playback position in seconds
	Duration  float64   // Total duration in seconds, 0 when unknown
	WatchedAt time.Time // Last time the entry was updated
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty pieces. The result never contains empty strings.
func ParseTags(s string) []string {
	var tags []string
	for _, piece := range strings.Split(s, ",") {
		tag := strings.TrimSpace(piece)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Filter returns the shorts whose name or tags contain the query,
// case-insensitive. An empty query returns the input unchanged.
func Filter(shorts []Short, query string) []Short {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return shorts
	}

	var matched []Short
	for _, s := range shorts {
		if strings.Contains(strings.ToLower(s.DisplayName()), query) {
			matched = append(matched, s)
			continue
		}
		for _, tag := range s.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}
