package videoid

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Platform identifies the hosting site of a video link.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformVimeo   Platform = "vimeo"
	PlatformOther   Platform = "other"
)

// Canonical domains used as UUID namespaces and video key prefixes.
var domainByPlatform = map[Platform]string{
	PlatformYouTube: "youtube.com",
	PlatformVimeo:   "vimeo.com",
}

// Domain returns the canonical domain for p, or "" for PlatformOther.
func (p Platform) Domain() string {
	return domainByPlatform[p]
}

// Label returns the display name of p.
func (p Platform) Label() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformVimeo:
		return "Vimeo"
	default:
		return "External"
	}
}

const (
	youtubeEmbedBase = "https://www.youtube.com/embed/"
	vimeoPlayerBase  = "https://player.vimeo.com/video/"

	// Chromeless player parameters appended to every rewritten Vimeo link.
	vimeoEmbedParams = "dnt=1&title=0&byline=0&portrait=0&badge=0"

	youtubeThumbnailTemplate = "https://img.youtube.com/vi/%s/maxresdefault.jpg"
	vimeoThumbnailTemplate   = "https://vumbnail.com/%s_large.jpg"
)

var (
	errNotYouTube = errors.New("not a youtube url or video id not found")
	errNotVimeo   = errors.New("not a vimeo url or video id not found")
)

// DetectPlatform classifies raw by substring matching. It never fails;
// anything unrecognized is PlatformOther.
func DetectPlatform(raw string) Platform {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return PlatformOther
	case strings.Contains(s, "youtube.com") || strings.Contains(s, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(s, "vimeo.com"):
		return PlatformVimeo
	default:
		return PlatformOther
	}
}

// IsEmbeddable reports whether raw already points at a player embed page.
func IsEmbeddable(raw string) bool {
	s := strings.ToLower(raw)
	return strings.Contains(s, "player.vimeo.com") || strings.Contains(s, "youtube.com/embed/")
}

// EmbedURL rewrites a watch/share link into a URL suitable for an iframe.
//
// Precedence: already-embeddable links are returned unchanged, then YouTube
// patterns, then Vimeo patterns. Anything else (including malformed YouTube
// or Vimeo links whose id cannot be found) is returned as typed.
func EmbedURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if IsEmbeddable(raw) {
		return raw
	}

	switch DetectPlatform(raw) {
	case PlatformYouTube:
		if id, err := ExtractYouTubeVideoID(raw); err == nil {
			return youtubeEmbedBase + id
		}
	case PlatformVimeo:
		if id, err := ExtractVimeoVideoID(raw); err == nil {
			return vimeoPlayerBase + id + "?" + vimeoEmbedParams
		}
	}
	return raw
}

// ThumbnailURL returns a predictable thumbnail image URL for raw, or "" when
// the platform is unknown or no id can be extracted. The URL is not checked.
func ThumbnailURL(raw string) string {
	p, id := Identify(raw)
	switch p {
	case PlatformYouTube:
		return fmt.Sprintf(youtubeThumbnailTemplate, id)
	case PlatformVimeo:
		return fmt.Sprintf(vimeoThumbnailTemplate, id)
	default:
		return ""
	}
}

// PreviewEmbedURL returns a muted, looping, control-less autoplay variant of
// EmbedURL(raw) for hover previews.
func PreviewEmbedURL(raw string) string {
	embed := EmbedURL(raw)
	p, id := Identify(raw)

	var extra url.Values
	switch p {
	case PlatformYouTube:
		extra = url.Values{
			"autoplay":       {"1"},
			"mute":           {"1"},
			"loop":           {"1"},
			"playlist":       {id},
			"controls":       {"0"},
			"modestbranding": {"1"},
			"rel":            {"0"},
		}
	case PlatformVimeo:
		extra = url.Values{
			"autoplay": {"1"},
			"muted":    {"1"},
			"loop":     {"1"},
			"controls": {"0"},
		}
	default:
		return embed
	}

	u, err := url.Parse(embed)
	if err != nil {
		return embed
	}
	q := u.Query()
	for k, v := range extra {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Identify returns the platform and video id of raw. The id is empty when the
// platform is PlatformOther.
func Identify(raw string) (Platform, string) {
	switch DetectPlatform(raw) {
	case PlatformYouTube:
		if id, err := ExtractYouTubeVideoID(raw); err == nil {
			return PlatformYouTube, id
		}
	case PlatformVimeo:
		if id, err := ExtractVimeoVideoID(raw); err == nil {
			return PlatformVimeo, id
		}
	}
	return PlatformOther, ""
}

// VideoKey returns "{domain}:{id}" for recognized videos, and the trimmed
// input otherwise. Two links to the same video share a key.
func VideoKey(raw string) string {
	p, id := Identify(raw)
	if p == PlatformOther {
		return strings.TrimSpace(raw)
	}
	return p.Domain() + ":" + id
}

// NamespaceUUIDForDomain returns a deterministic UUIDv5 namespace for a domain.
func NamespaceUUIDForDomain(domain string) uuid.UUID {
	d := strings.TrimSpace(strings.ToLower(domain))
	d = strings.TrimSuffix(d, ".")
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(d))
}

// VideoUUID returns a deterministic UUIDv5 for a (domain, videoID) pair.
func VideoUUID(domain string, videoID string) uuid.UUID {
	return uuid.NewSHA1(NamespaceUUIDForDomain(domain), []byte(strings.TrimSpace(videoID)))
}

// UUIDForURL returns VideoUUID for recognized videos, and a UUIDv5 of the raw
// string under the URL namespace otherwise.
func UUIDForURL(raw string) uuid.UUID {
	p, id := Identify(raw)
	if p == PlatformOther {
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.TrimSpace(raw)))
	}
	return VideoUUID(p.Domain(), id)
}
