// Package provider classifies video URLs against a hosting provider's URL
// patterns and derives canonical embeddable playback URLs. Classification is
// never an error: inputs that do not match are a normal outcome and route the
// caller to direct playback of the URL as-is.
package provider

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern matches URLs belonging to a video hosting provider and extracts
// the embeddable video identifier. The identifier length and the recognized
// host set are configurable; Default returns the stock YouTube rules.
type Pattern struct {
	matchRe   *regexp.Regexp
	idRe      *regexp.Regexp
	embedBase string
}

// New compiles a provider pattern.
//
// hosts are domains whose video pages carry the identifier in a path segment
// (/embed/<id>, /shorts/<id>, /v/<id>) or a v= query parameter. shortHosts
// are link-shortener domains where the identifier is the first path segment.
// Subdomains of either are matched implicitly. embedBase is the prefix the
// identifier is appended to when deriving an embed URL.
func New(embedBase string, idLength int, hosts, shortHosts []string) (*Pattern, error) {
	if embedBase == "" {
		return nil, fmt.Errorf("embed base URL cannot be empty")
	}
	if idLength <= 0 {
		return nil, fmt.Errorf("identifier length must be positive, got %d", idLength)
	}
	if len(hosts) == 0 && len(shortHosts) == 0 {
		return nil, fmt.Errorf("at least one provider host is required")
	}

	id := fmt.Sprintf(`([A-Za-z0-9_-]{%d})`, idLength)

	var matchAlts, idAlts []string
	if len(hosts) > 0 {
		prefix := hostAlternation(hosts) + `/`
		matchAlts = append(matchAlts, prefix+`(?:(?:embed|shorts|v|e)/|\S*?[?&]vi?=)`)
		idAlts = append(idAlts, prefix+`(?:(?:embed|shorts|v|e)/|\S*?[?&]vi?=)`+id)
	}
	if len(shortHosts) > 0 {
		prefix := hostAlternation(shortHosts) + `/`
		matchAlts = append(matchAlts, prefix)
		idAlts = append(idAlts, prefix+id)
	}

	matchRe, err := regexp.Compile(`(?i)` + strings.Join(matchAlts, "|"))
	if err != nil {
		return nil, fmt.Errorf("compiling match pattern: %w", err)
	}
	idRe, err := regexp.Compile(`(?i)` + strings.Join(idAlts, "|"))
	if err != nil {
		return nil, fmt.Errorf("compiling identifier pattern: %w", err)
	}

	return &Pattern{
		matchRe:   matchRe,
		idRe:      idRe,
		embedBase: strings.TrimRight(embedBase, "/") + "/",
	}, nil
}

// Default returns the stock YouTube pattern: 11-character identifiers on
// youtube.com / youtube-nocookie.com with the youtu.be short domain.
func Default() *Pattern {
	p, err := New(
		"https://www.youtube.com/embed/",
		11,
		[]string{"youtube.com", "youtube-nocookie.com"},
		[]string{"youtu.be"},
	)
	if err != nil {
		panic(fmt.Sprintf("provider: default pattern: %v", err))
	}
	return p
}

// IsKnownURL reports whether the string looks like one of the provider's
// video URL forms. Empty input is false; malformed input never panics.
func (p *Pattern) IsKnownURL(s string) bool {
	if s == "" {
		return false
	}
	return p.matchRe.MatchString(s)
}

// ExtractID pulls the video identifier out of a provider URL.
// The second return is false when no identifier is present.
func (p *Pattern) ExtractID(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	match := p.idRe.FindStringSubmatch(s)
	if match == nil {
		return "", false
	}
	// First non-empty capture group; the alternation leaves the others blank.
	for _, group := range match[1:] {
		if group != "" {
			return group, true
		}
	}
	return "", false
}

// EmbedURL derives the canonical embeddable URL for a provider link.
// The second return is false when the link carries no identifier, which
// means the URL should be treated as a direct media source.
func (p *Pattern) EmbedURL(s string) (string, bool) {
	id, ok := p.ExtractID(s)
	if !ok {
		return "", false
	}
	return p.embedBase + id, true
}

// PlaybackURL decides the playback strategy for a URL: the derived embed
// URL when the provider pattern matches, the URL itself otherwise.
func (p *Pattern) PlaybackURL(s string) string {
	if embed, ok := p.EmbedURL(s); ok {
		return embed
	}
	return s
}

// hostAlternation builds a non-capturing alternation of literal hosts,
// each allowing arbitrary subdomain prefixes. The leading guard prevents a
// host from matching inside a longer domain name (notyoutube.com).
func hostAlternation(hosts []string) string {
	quoted := make([]string, len(hosts))
	for i, h := range hosts {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(h))
	}
	return `(?:^|[^a-z0-9_-])(?:[a-z0-9-]+\.)*(?:` + strings.Join(quoted, "|") + `)`
}
