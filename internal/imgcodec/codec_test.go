package imgcodec

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngDataURI(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 8 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestCompress_BoundsOversizedImage(t *testing.T) {
	out, err := Compress(pngDataURI(t, 1200, 900))
	require.NoError(t, err)

	mime, data, err := Decode(out)
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	// 4:3 input fits 800x600 exactly
	require.Equal(t, 800, cfg.Width)
	require.Equal(t, 600, cfg.Height)
}

func TestCompress_PreservesAspectRatio(t *testing.T) {
	// 1600x600 is wider than 4:3; width binds, height shrinks with it
	out, err := Compress(pngDataURI(t, 1600, 600))
	require.NoError(t, err)

	_, data, err := Decode(out)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Width)
	require.Equal(t, 300, cfg.Height)
}

func TestCompress_SmallImageKeepsDimensions(t *testing.T) {
	out, err := Compress(pngDataURI(t, 120, 80))
	require.NoError(t, err)

	mime, data, err := Decode(out)
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 120, cfg.Width)
	require.Equal(t, 80, cfg.Height)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"no data prefix", "image/png;base64,abcd"},
		{"no comma", "data:image/png;base64"},
		{"missing base64 marker", "data:image/png,abcd"},
		{"empty mime", "data:;base64,abcd"},
		{"invalid base64", "data:image/png;base64,%%%%"},
		{"empty string", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.payload)
			require.ErrorIs(t, err, ErrMalformedDataURI)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0xff}
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	mime, data, err := Decode(uri)
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)
	require.Equal(t, raw, data)
}

func TestCompress_RejectsNonImagePayload(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))
	_, err := Compress(uri)
	require.Error(t, err)
}
