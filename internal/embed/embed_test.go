package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer([]string{"streams.example.com", "localhost"})

	tests := []struct {
		name string
		raw  string
		want Embed
	}{
		{"empty", "", Embed{Kind: KindNone}},
		{"whitespace", "   ", Embed{Kind: KindNone}},
		{"youtube watch", "https://www.youtube.com/watch?v=ABC123_-9", Embed{KindYouTube, "https://www.youtube.com/embed/ABC123_-9"}},
		{"youtube watch with extra params", "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", Embed{KindYouTube, "https://www.youtube.com/embed/dQw4w9WgXcQ"}},
		{"youtube short", "https://youtu.be/XYZ", Embed{KindYouTube, "https://www.youtube.com/embed/XYZ"}},
		{"youtube without scheme", "youtu.be/abc", Embed{KindYouTube, "https://www.youtube.com/embed/abc"}},
		{"twitch", "https://www.twitch.tv/mychan", Embed{KindTwitch, "https://player.twitch.tv/?channel=mychan&parent=streams.example.com"}},
		{"twitch without www", "http://twitch.tv/some_channel/videos", Embed{KindTwitch, "https://player.twitch.tv/?channel=some_channel&parent=streams.example.com"}},
		{"other url", "https://example.com/x", Embed{KindLink, "https://example.com/x"}},
		{"youtube channel page is not a video", "https://www.youtube.com/@channel", Embed{KindLink, "https://www.youtube.com/@channel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.raw))
		})
	}
}

func TestNormalizer_YouTubeWinsOverTwitch(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.Normalize("https://youtu.be/abc?ref=twitch.tv/other")

	assert.Equal(t, KindYouTube, got.Kind)
	assert.Equal(t, "https://www.youtube.com/embed/abc", got.URL)
}

func TestNewNormalizer_FallsBackToLocalhost(t *testing.T) {
	assert.Equal(t, "localhost", NewNormalizer(nil).PrimaryHost)
	assert.Equal(t, "localhost", NewNormalizer([]string{""}).PrimaryHost)

	got := (&Normalizer{}).Normalize("twitch.tv/chan")
	assert.Contains(t, got.URL, "channel=chan")
	assert.Contains(t, got.URL, "parent=localhost")
}

func TestEmbed_Embeddable(t *testing.T) {
	assert.True(t, Embed{Kind: KindYouTube}.Embeddable())
	assert.True(t, Embed{Kind: KindTwitch}.Embeddable())
	assert.False(t, Embed{Kind: KindLink}.Embeddable())
	assert.False(t, Embed{Kind: KindNone}.Embeddable())
}
