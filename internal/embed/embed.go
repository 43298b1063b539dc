// Package embed turns share URLs from streaming platforms into player URLs.
package embed

import (
	"fmt"
	"regexp"
	"strings"
)

type Kind string

const (
	KindNone    Kind = "none"
	KindYouTube Kind = "youtube"
	KindTwitch  Kind = "twitch"
	KindLink    Kind = "link"
)

var (
	youtubePattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)
	twitchPattern  = regexp.MustCompile(`(?:https?://)?(?:www\.)?twitch\.tv/([a-zA-Z0-9_]+)`)
)

// Embed is the result of normalizing a stream URL. URL is empty for KindNone.
type Embed struct {
	Kind Kind   `json:"kind"`
	URL  string `json:"url,omitempty"`
}

// Embeddable reports whether URL can be used in an inline player.
func (e Embed) Embeddable() bool {
	return e.Kind == KindYouTube || e.Kind == KindTwitch
}

type Normalizer struct {
	PrimaryHost string
}

// NewNormalizer uses the first allowed host as the Twitch parent, or localhost.
func NewNormalizer(allowedHosts []string) *Normalizer {
	host := "localhost"
	if len(allowedHosts) > 0 && allowedHosts[0] != "" {
		host = allowedHosts[0]
	}
	return &Normalizer{PrimaryHost: host}
}

// Normalize checks YouTube first, then Twitch; anything else non-empty passes through.
func (n *Normalizer) Normalize(raw string) Embed {
	if strings.TrimSpace(raw) == "" {
		return Embed{Kind: KindNone}
	}

	if m := youtubePattern.FindStringSubmatch(raw); m != nil {
		return Embed{Kind: KindYouTube, URL: "https://www.youtube.com/embed/" + m[1]}
	}

	if m := twitchPattern.FindStringSubmatch(raw); m != nil {
		return Embed{
			Kind: KindTwitch,
			URL:  fmt.Sprintf("https://player.twitch.tv/?channel=%s&parent=%s", m[1], n.host()),
		}
	}

	return Embed{Kind: KindLink, URL: raw}
}

func (n *Normalizer) host() string {
	if n == nil || n.PrimaryHost == "" {
		return "localhost"
	}
	return n.PrimaryHost
}
