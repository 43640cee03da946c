package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Shradaya/chat-with-youtube-video/transcript"
)

// DefaultTimedTextURL is the public caption endpoint.
const DefaultTimedTextURL = "https://www.youtube.com/api/timedtext"

// timedText mirrors the XML document served by the timedtext endpoint.
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedSegment `xml:"text"`
}

type timedSegment struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Body     string  `xml:",chardata"`
}

// CaptionClient retrieves published captions through the timedtext endpoint.
type CaptionClient struct {
	baseURL  string
	language string
	client   *http.Client
	logger   *slog.Logger
}

// CaptionOption configures a CaptionClient.
type CaptionOption func(*CaptionClient)

// WithCaptionBaseURL overrides the timedtext endpoint, mainly for tests.
func WithCaptionBaseURL(baseURL string) CaptionOption {
	return func(c *CaptionClient) {
		c.baseURL = baseURL
	}
}

// WithLanguage sets the caption language code. Defaults to "en".
func WithLanguage(lang string) CaptionOption {
	return func(c *CaptionClient) {
		c.language = lang
	}
}

// WithCaptionHTTPClient sets a custom HTTP client.
func WithCaptionHTTPClient(client *http.Client) CaptionOption {
	return func(c *CaptionClient) {
		c.client = client
	}
}

// WithCaptionLogger sets a custom logger.
func WithCaptionLogger(logger *slog.Logger) CaptionOption {
	return func(c *CaptionClient) {
		c.logger = logger
	}
}

// NewCaptionClient creates a caption client with the given options.
func NewCaptionClient(opts ...CaptionOption) *CaptionClient {
	c := &CaptionClient{
		baseURL:  DefaultTimedTextURL,
		language: "en",
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   slog.Default().With("component", "youtube_captions"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Captions fetches the caption track for a video id. The endpoint answers
// an empty 200 body when captions are disabled; that maps to
// transcript.ErrCaptionsDisabled so the acquisition chain can fall back.
func (c *CaptionClient) Captions(ctx context.Context, videoID string) ([]transcript.Caption, error) {
	endpoint := fmt.Sprintf("%s?lang=%s&v=%s", c.baseURL, url.QueryEscape(c.language), url.QueryEscape(videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building caption request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading caption response: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, transcript.ErrCaptionsDisabled
	}

	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing caption document: %w", err)
	}
	if len(doc.Texts) == 0 {
		return nil, transcript.ErrCaptionsDisabled
	}

	captions := make([]transcript.Caption, 0, len(doc.Texts))
	for _, segment := range doc.Texts {
		// The endpoint double-escapes entities; the XML decoder undoes
		// one layer, html.UnescapeString the other.
		text := strings.TrimSpace(html.UnescapeString(segment.Body))
		captions = append(captions, transcript.Caption{
			Text:     text,
			Start:    segment.Start,
			Duration: segment.Duration,
		})
	}

	c.logger.Debug("captions fetched", "video_id", videoID, "segments", len(captions))
	return captions, nil
}

var _ transcript.CaptionService = (*CaptionClient)(nil)
