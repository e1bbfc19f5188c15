// Package player launches external media players for a playback URL.
// All invocations use exec.Command with explicit argument slices; no string
// ever passes through a shell.
package player

// Player is the interface for media player implementations.
type Player interface {
	// Play starts playback of a URL. Returns the last playback position
	// in seconds, when the player supports reporting it.
	Play(url, title string, startPos float64) (float64, error)

	// Name returns the player name.
	Name() string

	// Available checks if the player binary exists in PATH.
	Available() bool
}

// New creates a player by name.
func New(name string) Player {
	switch name {
	case "mpv":
		return &MPV{}
	case "vlc":
		return &VLC{}
	case "iina", "celluloid":
		return &Generic{name: name}
	default:
		return &MPV{}
	}
}
