package generation

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MaxImageBytes is the largest accepted attachment, inclusive.
const MaxImageBytes = 4 * 1024 * 1024

// Image input errors.
var (
	ErrImageTooLarge       = errors.New("image exceeds 4 MiB")
	ErrUnsupportedMIMEType = errors.New("unsupported image mime type")
	ErrInvalidDataURL      = errors.New("malformed image data URL")
)

// ImageErrorMessage returns the user-facing text for an image input error.
func ImageErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrImageTooLarge):
		return "Image size should not exceed 4MB."
	case errors.Is(err, ErrUnsupportedMIMEType):
		return "Please upload a JPEG, PNG, WEBP, GIF, HEIC or HEIF image."
	default:
		return "The uploaded image could not be read. Please upload it again."
	}
}

var acceptedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/heic": true,
	"image/heif": true,
}

// AcceptedMIMEType reports whether mime is one of the supported raster formats.
func AcceptedMIMEType(mime string) bool {
	return acceptedMIMETypes[strings.ToLower(strings.TrimSpace(mime))]
}

// Image is a validated inline attachment.
type Image struct {
	MIMEType string
	Data     []byte
}

// ParseImage validates an uploaded image given as a data URL
// ("data:<mime>;base64,<payload>") plus its separately tracked mime type.
// A bare base64 payload without the data URL prefix is also accepted.
func ParseImage(dataURL, mime string) (Image, error) {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if !AcceptedMIMEType(mime) {
		return Image{}, ErrUnsupportedMIMEType
	}

	payload := strings.TrimSpace(dataURL)
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 {
			return Image{}, ErrInvalidDataURL
		}
		header := payload[len("data:"):comma]
		declared, encoding, _ := strings.Cut(header, ";")
		if encoding != "base64" {
			return Image{}, ErrInvalidDataURL
		}
		if declared != "" && !strings.EqualFold(declared, mime) {
			return Image{}, fmt.Errorf("%w: data URL declares %q, upload declares %q", ErrInvalidDataURL, declared, mime)
		}
		payload = payload[comma+1:]
	}
	if payload == "" {
		return Image{}, ErrInvalidDataURL
	}

	// Reject oversized payloads before allocating the decoded buffer.
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes+2 {
		return Image{}, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if len(data) > MaxImageBytes {
		return Image{}, ErrImageTooLarge
	}
	return Image{MIMEType: mime, Data: data}, nil
}
