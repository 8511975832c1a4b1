package bigchar

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageToHalfBlocks(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 4))
	img.SetGray(0, 0, color.Gray{Y: 255})
	img.SetGray(0, 1, color.Gray{Y: 255})
	img.SetGray(1, 0, color.Gray{Y: 200})
	img.SetGray(2, 3, color.Gray{Y: 90})
	img.SetGray(1, 3, color.Gray{Y: 10})
	assert.Equal(t, "█▀ \n  ▄", imageToHalfBlocks(img, 3, 2))
}

func TestScaleDown(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	dst := scaleDown(src, 2, 2)
	assert.Equal(t, uint8(200), dst.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), dst.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(0), dst.GrayAt(1, 1).Y)
}

func TestRenderBlockEmpty(t *testing.T) {
	assert.Equal(t, "", RenderBlock("", 10, 5))
	assert.Equal(t, "", RenderBlock("(ツ)", 0, 5))
}

func TestGetPixelBrightnessOutOfBounds(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	assert.Equal(t, uint8(0), getPixelBrightness(img, -1, 0))
	assert.Equal(t, uint8(0), getPixelBrightness(img, 0, 1))
}

func TestParseFaceRejectsGarbage(t *testing.T) {
	assert.Nil(t, parseFace([]byte("not a font file")))
}
