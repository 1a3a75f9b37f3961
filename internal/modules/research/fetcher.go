// README: Paper text retrieval; arXiv URL rewriting and bounded HTTP download.
package research

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetcher retrieves the text of a paper from a URL. Extraction from binary
// formats lives behind this interface; the service only sees text.
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// maxPaperBytes caps the download; papers past this are truncated, which is
// plenty for analysis prompts.
const maxPaperBytes = 2 << 20

// HTTPFetcher downloads paper text over plain HTTP.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: 30 * time.Second}}
}

// ArxivPDFURL rewrites an arXiv abstract URL to its PDF counterpart;
// any other URL passes through unchanged.
func ArxivPDFURL(url string) string {
	if i := strings.Index(url, "arxiv.org/abs/"); i >= 0 {
		id := url[i+len("arxiv.org/abs/"):]
		return "https://arxiv.org/pdf/" + id + ".pdf"
	}
	return url
}

func (f *HTTPFetcher) FetchText(ctx context.Context, url string) (string, error) {
	url = ArxivPDFURL(url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("research: build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("research: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("research: fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPaperBytes))
	if err != nil {
		return "", fmt.Errorf("research: read %s: %w", url, err)
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", fmt.Errorf("research: %s returned no text", url)
	}
	return text, nil
}
