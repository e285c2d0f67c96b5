// Package share turns view-state permalinks into QR codes.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// PermalinkURL joins the public origin with the encoded query, e.g.
// "https://example.org/?cities=london&period=recent".
func PermalinkURL(baseURL string, q url.Values) string {
	base := strings.TrimRight(baseURL, "/")
	if len(q) == 0 {
		return base + "/"
	}
	return base + "/?" + q.Encode()
}

// ParseSize reads a "size" query value in pixels. Empty means DefaultSize.
func ParseSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSize, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid 'size' (expected integer)")
	}
	if n < MinSize || n > MaxSize {
		return 0, fmt.Errorf("'size' must be between %d and %d", MinSize, MaxSize)
	}
	return n, nil
}

// QRCode renders content as a size x size PNG.
func QRCode(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr content is empty")
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
