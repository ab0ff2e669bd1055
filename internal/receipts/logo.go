package receipts

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"busexcursion/internal/domain"
	"busexcursion/internal/pdfdoc"
)

const (
	defaultLogoTimeout = 3 * time.Second
	maxLogoBytes       = 2 << 20
)

// LogoFetcher resolves an association logo given as a data-URL or an http(s)
// URL into a verified raster.
type LogoFetcher struct {
	Client  *http.Client
	Timeout time.Duration
}

// Fetch returns (nil, nil) when src is empty. Every failure is a
// domain.AssetFetchError; callers render without a logo in that case.
func (f LogoFetcher) Fetch(ctx context.Context, src string) (*pdfdoc.Image, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	var (
		data []byte
		err  error
	)
	switch low := strings.ToLower(src); {
	case strings.HasPrefix(low, "data:"):
		data, err = decodeDataURL(src)
	case strings.HasPrefix(low, "http://"), strings.HasPrefix(low, "https://"):
		data, err = f.download(ctx, src)
	default:
		err = errors.New("unsupported logo source")
	}
	if err != nil {
		return nil, domain.AssetFetchError{Source: sourceLabel(src), Err: err}
	}
	kind, err := imageType(data)
	if err != nil {
		return nil, domain.AssetFetchError{Source: sourceLabel(src), Err: err}
	}
	return &pdfdoc.Image{Name: "logo", Type: kind, Data: data}, nil
}

func (f LogoFetcher) download(ctx context.Context, url string) ([]byte, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultLogoTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxLogoBytes {
		return nil, fmt.Errorf("logo larger than %d bytes", maxLogoBytes)
	}
	return data, nil
}

// decodeDataURL handles "data:<mediatype>;base64,<payload>".
func decodeDataURL(s string) ([]byte, error) {
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return nil, errors.New("malformed data url")
	}
	meta, payload := s[len("data:"):comma], s[comma+1:]
	if !strings.HasSuffix(strings.ToLower(meta), ";base64") {
		return nil, errors.New("data url is not base64")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	if err != nil {
		return nil, fmt.Errorf("decode data url: %w", err)
	}
	return data, nil
}

func imageType(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode logo: %w", err)
	}
	switch format {
	case "png":
		return "PNG", nil
	case "jpeg":
		return "JPG", nil
	case "gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported logo format %s", format)
	}
}

// sourceLabel keeps data-URLs out of error messages and logs.
func sourceLabel(src string) string {
	if strings.HasPrefix(strings.ToLower(src), "data:") {
		return "data-url"
	}
	return src
}
