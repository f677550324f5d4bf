// Package avatar loads member profile pictures from disk and encodes them
// as data URLs for in-memory storage.
package avatar

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// MaxSize caps avatar files at 5MB.
const MaxSize = 5 * 1024 * 1024

var (
	ErrTooLarge        = errors.New("imagem maior que 5MB")
	ErrUnsupportedType = errors.New("formato não suportado, use JPEG ou PNG")
)

// LoadDataURL reads an image file and returns it as a base64 data URL.
// Only JPEG and PNG content is accepted; the type is sniffed from the
// bytes, not the file extension.
func LoadDataURL(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat avatar: %w", err)
	}
	if info.Size() > MaxSize {
		return "", ErrTooLarge
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read avatar: %w", err)
	}

	mime := http.DetectContentType(body)
	if mime != "image/jpeg" && mime != "image/png" {
		return "", ErrUnsupportedType
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}
