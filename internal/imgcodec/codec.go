// Package imgcodec reduces embedded images before storage: a base64 data URI
// is decoded, bounded to 800x600 with aspect ratio preserved, re-encoded as
// JPEG and returned as a data URI again. Only the compressed form is kept.
package imgcodec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	maxWidth    = 800
	maxHeight   = 600
	jpegQuality = 80
)

var ErrMalformedDataURI = errors.New("image payload does not match data:<mime>;base64,<data>")

// Decode splits a "data:<mime>;base64,<data>" payload into its MIME type and
// raw bytes.
func Decode(dataURI string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return "", nil, ErrMalformedDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrMalformedDataURI
	}
	mime, ok = strings.CutSuffix(meta, ";base64")
	if !ok || mime == "" {
		return "", nil, ErrMalformedDataURI
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
	}
	return mime, data, nil
}

// Compress decodes a data-URI image, fits it inside 800x600 and re-encodes it
// as a JPEG data URI at fixed quality. Images already within bounds are still
// re-encoded so storage holds JPEG only.
func Compress(dataURI string) (string, error) {
	_, raw, err := Decode(dataURI)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
