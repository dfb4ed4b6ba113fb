package wiki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
)

const (
	defaultBase = "https://en.wikipedia.org"
	maxBody     = 1 << 20
	// Keep spoken replies short.
	summarySentences = 2
)

// Client fetches short encyclopedia summaries from the Wikipedia REST
// summary endpoint. Every failure mode is a uniform error; the caller
// falls back to a web search.
type Client struct {
	http *http.Client
	base string
}

func NewClient(httpClient *http.Client) *Client {
	return &Client{http: httpClient, base: defaultBase}
}

// Summary returns a short summary for the topic, trimmed to two
// sentences.
func (c *Client) Summary(ctx context.Context, topic string) (string, error) {
	title := strings.ReplaceAll(strings.TrimSpace(topic), " ", "_")
	if title == "" {
		return "", fmt.Errorf("empty topic")
	}
	// The REST endpoint is case-sensitive on the leading letter;
	// utterances arrive lowercased.
	r := []rune(title)
	r[0] = unicode.ToUpper(r[0])
	title = string(r)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.base+"/api/rest_v1/page/summary/"+url.PathEscape(title), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summary lookup: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("read summary: %w", err)
	}

	if gjson.GetBytes(body, "type").String() == "disambiguation" {
		return "", fmt.Errorf("ambiguous topic %q", topic)
	}

	extract := gjson.GetBytes(body, "extract").String()
	if extract == "" {
		return "", fmt.Errorf("no summary for %q", topic)
	}

	return firstSentences(extract, summarySentences), nil
}

// firstSentences cuts text after n sentence terminators. Terminators
// inside abbreviations are counted too; close enough for spoken output.
func firstSentences(text string, n int) string {
	count := 0
	runes := []rune(text)
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\n' {
			continue
		}
		count++
		if count == n {
			return strings.TrimSpace(string(runes[:i+1]))
		}
	}
	return strings.TrimSpace(text)
}
