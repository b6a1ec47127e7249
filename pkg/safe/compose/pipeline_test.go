package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/safe/pkg/safe"
)

// TestURLProcessing runs a validate, fetch, measure pipeline per URL without
// making HTTP requests.
func TestURLProcessing(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	var invalid []string
	results := make([]string, 0, len(urls))
	for _, url := range urls {
		res := processURL(context.Background(), url).
			OtherwiseConsume(func(msg string) { invalid = append(invalid, url+": "+msg) }).
			Now()

		results = append(results, safe.Finally(res,
			func(n int) string { return fmt.Sprintf("title length: %d", n) },
			func(string) string { return "invalid" }))
	}

	assert.Len(t, results, len(urls))
	assert.Equal(t, "title length: 43", results[0])
	assert.Equal(t, "invalid", results[6])
	assert.Equal(t, "invalid", results[7])
	assert.Equal(t, []string{
		"invalid-url: URL must start with http:// or https://",
		"ftp://invalid-protocol.com: URL must start with http:// or https://",
	}, invalid)
}

func processURL(ctx context.Context, url string) Composition[int] {
	return Map(
		MapTry(
			ThatMapTry(ctx, validateURL, url),
			mockFetchTitle),
		func(title string) int { return len(title) })
}

func validateURL(url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", errors.New("URL must start with http:// or https://")
	}
	return url, nil
}

func mockFetchTitle(url string) (string, error) {
	if url == "" {
		return "", errors.New("empty URL")
	}
	return "Mock Page Title for " + url, nil
}
