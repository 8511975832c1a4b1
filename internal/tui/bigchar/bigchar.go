// Package bigchar renders faces as large block art using half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	loadedFace font.Face
	loadOnce   sync.Once
)

// FontPaths are tried in order until one parses.
var FontPaths = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	// Windows
	"C:\\Windows\\Fonts\\seguisym.ttf",
	"C:\\Windows\\Fonts\\msyh.ttc",
}

// FontNames are searched in the system font directories when none of
// FontPaths is present.
var FontNames = []string{
	"NotoSansCJK-Regular.ttc",
	"DroidSansFallbackFull.ttf",
	"DejaVuSans.ttf",
	"Arial Unicode.ttf",
}

func loadFace() {
	paths := append([]string{}, FontPaths...)
	for _, name := range FontNames {
		if path, err := findfont.Find(name); err == nil {
			paths = append(paths, path)
		}
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data); face != nil {
			loadedFace = face
			return
		}
	}
}

func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}

	// Try parsing as single font
	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face
		}
	}
	return nil
}

// RenderBlock renders text using half-block characters (▀▄█).
// cols and rows define the output size in terminal cells.
func RenderBlock(text string, cols, rows int) string {
	if text == "" || cols <= 0 || rows <= 0 || !IsAvailable() {
		return ""
	}

	// Get font metrics for sizing
	bounds, _ := font.BoundString(loadedFace, text)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Add padding around the glyphs
	padding := 4
	srcWidth := glyphWidth + padding*2
	srcHeight := glyphHeight + padding*2

	// Ensure minimum size
	if srcWidth < 64 {
		srcWidth = 64
	}
	if srcHeight < 64 {
		srcHeight = 64
	}

	// Create source image at font's natural size
	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	// Calculate dot position; glyphs may extend left of the dot
	x := (srcWidth-glyphWidth)/2 - bounds.Min.X.Floor()
	y := srcHeight - padding - bounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)

	// Scale down to target size (rows*2 because half-blocks)
	scaledImg := scaleDown(srcImg, cols, rows*2)

	return imageToHalfBlocks(scaledImg, cols, rows)
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			// Calculate source region
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := int(float64(dx+1) * xRatio)
			sy2 := int(float64(dy+1) * yRatio)

			if sx2 > srcWidth {
				sx2 = srcWidth
			}
			if sy2 > srcHeight {
				sy2 = srcHeight
			}

			// Average the pixels in the source region
			var sum int
			count := 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			// Each character cell represents 2 vertical pixels
			topY := row * 2
			bottomY := row*2 + 1

			topBright := getPixelBrightness(img, col, topY)
			bottomBright := getPixelBrightness(img, col, bottomY)

			// Threshold for "on"
			threshold := uint8(40)

			topOn := topBright > threshold
			bottomOn := bottomBright > threshold

			if topOn && bottomOn {
				result.WriteRune('█')
			} else if topOn {
				result.WriteRune('▀')
			} else if bottomOn {
				result.WriteRune('▄')
			} else {
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func getPixelBrightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable returns true if a font was found.
func IsAvailable() bool {
	loadOnce.Do(loadFace)
	return loadedFace != nil
}

// cache for rendered faces
var (
	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// GetCached returns a cached block rendering or renders a new one.
func GetCached(text string, cols, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := fmt.Sprintf("%s|%d|%d", text, cols, rows)
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := RenderBlock(text, cols, rows)
	cache[key] = rendered
	return rendered
}
