package videoid

import (
	"errors"
	"net/url"
	"strings"
)

// ExtractYouTubeVideoID extracts the YouTube video ID from a URL.
// Returns empty string and error if not a valid YouTube URL or ID cannot be extracted.
func ExtractYouTubeVideoID(urlStr string) (string, error) {
	u, err := parseLoose(urlStr)
	if err != nil {
		return "", err
	}

	host := normalizeHost(u.Host)

	// Handle youtu.be shortlinks
	if host == "youtu.be" || strings.HasSuffix(host, ".youtu.be") {
		if id := firstPathSegment(u.Path); id != "" {
			return id, nil
		}
		return "", errNotYouTube
	}

	if host != "youtube.com" && !strings.HasSuffix(host, ".youtube.com") {
		return "", errNotYouTube
	}

	// /watch?v=
	if q := strings.TrimSpace(u.Query().Get("v")); q != "" {
		return q, nil
	}
	for _, prefix := range []string{"/embed/", "/v/", "/shorts/", "/live/"} {
		if strings.HasPrefix(u.Path, prefix) {
			if id := firstPathSegment(strings.TrimPrefix(u.Path, prefix)); id != "" {
				return id, nil
			}
		}
	}

	return "", errNotYouTube
}

// ExtractVimeoVideoID extracts the numeric Vimeo video ID from a canonical
// (vimeo.com/{id}), alternate (www./channel/group paths) or player link.
func ExtractVimeoVideoID(urlStr string) (string, error) {
	u, err := parseLoose(urlStr)
	if err != nil {
		return "", err
	}

	host := normalizeHost(u.Host)
	if host != "vimeo.com" && !strings.HasSuffix(host, ".vimeo.com") {
		return "", errNotVimeo
	}

	// The first all-digit segment is the id: /123, /video/123, /channels/x/123.
	for _, seg := range strings.Split(u.Path, "/") {
		if isDigits(seg) {
			return seg, nil
		}
	}
	return "", errNotVimeo
}

// parseLoose parses raw as a URL, assuming https when the scheme is missing
// (e.g. "youtu.be/abc").
func parseLoose(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		u, err = url.Parse("https://" + strings.TrimPrefix(raw, "//"))
		if err != nil {
			return nil, err
		}
	}
	return u, nil
}

func normalizeHost(hostport string) string {
	h := strings.TrimSpace(strings.ToLower(hostport))
	if h == "" {
		return ""
	}
	// url.URL.Host may include port.
	if strings.Contains(h, ":") {
		if parsed, err := url.Parse("//" + h); err == nil {
			if parsed.Hostname() != "" {
				h = parsed.Hostname()
			}
		}
	}
	return strings.TrimSuffix(h, ".")
}

func firstPathSegment(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return ""
	}
	seg, _, _ := strings.Cut(p, "/")
	return strings.TrimSpace(seg)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
