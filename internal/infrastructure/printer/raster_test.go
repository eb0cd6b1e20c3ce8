package printer

import (
	"image"
	"image/color"
	"testing"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRaster(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 2))
	for x := 0; x < 10; x++ {
		img.Set(x, 0, color.White)
		img.Set(x, 1, color.White)
	}
	img.Set(0, 0, color.Black)
	img.Set(9, 0, color.Black)
	img.Set(1, 1, color.Gray{Y: 100})
	img.Set(2, 1, color.Gray{Y: 200})
	img.Set(3, 1, color.NRGBA{A: 0})

	data, err := encodeRaster(img)
	require.NoError(t, err)

	want := []byte{
		0x1D, 'v', '0', 0x00,
		2, 0, // ширина в байтах
		2, 0, // высота
		0b1000_0000, 0b0100_0000,
		0b0100_0000, 0b0000_0000,
	}
	assert.Equal(t, want, data)
}

func TestEncodeRaster_SubImageOffset(t *testing.T) {
	full := image.NewGray(image.Rect(0, 0, 16, 4))
	for i := range full.Pix {
		full.Pix[i] = 255
	}
	full.SetGray(8, 2, color.Gray{Y: 0})

	sub := full.SubImage(image.Rect(8, 2, 16, 3))
	data, err := encodeRaster(sub)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x1D, 'v', '0', 0, 1, 0, 1, 0, 0x80}, data)
}

func TestEncodeRaster_Invalid(t *testing.T) {
	_, err := encodeRaster(nil)
	assert.ErrorIs(t, err, e.ErrUnsupportedBitmap)

	_, err = encodeRaster(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, e.ErrUnsupportedBitmap)
}

func TestEscPosCommands(t *testing.T) {
	assert.Equal(t, []byte{0x1B, 0x40, 0x1B, 0x74, 19}, cmdInit())
	assert.Equal(t, []byte{0x1B, 0x61, 0x01}, cmdAlign(1))
	assert.Equal(t, []byte{0x1B, 0x64, 5}, cmdFeed(5))
	assert.Equal(t, []byte{0x1B, 0x64, 255}, cmdFeed(1000))
	assert.Equal(t, []byte{0x1B, 0x64, 0}, cmdFeed(-2))
	assert.Equal(t, []byte{0x1D, 0x56, 0x00}, cmdCut())
}

func TestEncodeText(t *testing.T) {
	assert.Equal(t, []byte{'Q', 't', 0x82, ' ', 0xB7, ' ', 0xD5, '\n'}, encodeText("Qté À €\n"))
	assert.Equal(t, []byte("Sushi ??"), encodeText("Sushi 寿司"))
}
