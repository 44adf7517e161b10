package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const DefaultEndpoint = "https://leetcode.com/graphql"

var (
	ErrInvalidURL = errors.New("invalid LeetCode problem URL")
	ErrNotFound   = errors.New("problem not found")
	ErrUpstream   = errors.New("leetcode request failed")
)

var problemURLPattern = regexp.MustCompile(`^https?://(www\.)?leetcode\.com/problems/[\w-]+/?`)

const questionQuery = `
query getQuestionDetail($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId
    title
    titleSlug
    difficulty
    topicTags {
      name
    }
  }
}`

// Metadata is the auto-fill subset of a LeetCode question.
type Metadata struct {
	Title      string
	Difficulty string
	Tags       []string
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ValidURL reports whether raw looks like a LeetCode problem page URL.
func ValidURL(raw string) bool {
	return problemURLPattern.MatchString(raw)
}

// SlugFromURL returns the path segment after /problems/.
func SlugFromURL(raw string) (string, error) {
	_, rest, ok := strings.Cut(raw, "/problems/")
	if !ok {
		return "", ErrInvalidURL
	}
	slug, _, _ := strings.Cut(rest, "/")
	slug, _, _ = strings.Cut(slug, "?")
	if slug == "" {
		return "", ErrInvalidURL
	}
	return slug, nil
}

// Fetch looks up the question behind a problem URL.
func (c *Client) Fetch(ctx context.Context, problemURL string) (*Metadata, error) {
	if !ValidURL(problemURL) {
		return nil, ErrInvalidURL
	}
	slug, err := SlugFromURL(problemURL)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]any{
		"query":     questionQuery,
		"variables": map[string]string{"titleSlug": slug},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json", ErrUpstream)
	}

	question := gjson.GetBytes(body, "data.question")
	if !question.Exists() || question.Type == gjson.Null {
		return nil, ErrNotFound
	}

	meta := &Metadata{
		Title:      question.Get("title").String(),
		Difficulty: question.Get("difficulty").String(),
		Tags:       []string{},
	}
	for _, tag := range question.Get("topicTags.#.name").Array() {
		meta.Tags = append(meta.Tags, tag.String())
	}

	return meta, nil
}
