package ficha

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxLogoBytes bounds how much of the remote asset is read
const maxLogoBytes = 2 << 20

// LogoFetcher retrieves the institutional logo from a remote URL. Failures
// are expected and non-fatal: the slip renders without the logo.
type LogoFetcher struct {
	httpClient *http.Client
	url        string
}

// NewLogoFetcher creates a fetcher with a bounded request timeout
func NewLogoFetcher(url string, timeout time.Duration) *LogoFetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &LogoFetcher{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// Fetch downloads the logo and reports its fpdf image type
func (f *LogoFetcher) Fetch(ctx context.Context) ([]byte, string, error) {
	if f == nil || f.url == "" {
		return nil, "", fmt.Errorf("no logo URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build logo request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch logo: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read logo body: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("fetch logo: empty body")
	}

	imageType, err := sniffImageType(resp.Header.Get("Content-Type"), data)
	if err != nil {
		return nil, "", err
	}

	return data, imageType, nil
}

// sniffImageType maps the response content type (or, failing that, the
// bytes themselves) to an image type fpdf understands
func sniffImageType(contentType string, data []byte) (string, error) {
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = http.DetectContentType(data)
	}
	switch {
	case strings.HasPrefix(contentType, "image/png"):
		return "png", nil
	case strings.HasPrefix(contentType, "image/jpeg"):
		return "jpg", nil
	case strings.HasPrefix(contentType, "image/gif"):
		return "gif", nil
	}
	return "", fmt.Errorf("unsupported logo content type %q", contentType)
}
