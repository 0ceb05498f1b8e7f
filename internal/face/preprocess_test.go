package face

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecodeImageFormats(t *testing.T) {
	img := createTestImage(20, 20, color.White)

	tests := []struct {
		name string
		data []byte
	}{
		{"jpeg", encodeJPEG(img)},
		{"png", encodePNG(img)},
		{"bmp", encodeBMP(img)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := decodeImage(tc.data)
			if err != nil {
				t.Fatalf("decodeImage failed: %v", err)
			}

			bounds := decoded.Bounds()
			if bounds.Dx() != 20 || bounds.Dy() != 20 {
				t.Errorf("decoded image is %dx%d; want 20x20", bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestDecodeImageInvalid(t *testing.T) {
	_, err := decodeImage([]byte("definitely not an image"))
	if err == nil {
		t.Error("decodeImage should fail for garbage data")
	}
}

func TestDecodeImageEmpty(t *testing.T) {
	_, err := decodeImage(nil)
	if err == nil {
		t.Error("decodeImage should fail for empty data")
	}
}

func TestResizeFrame(t *testing.T) {
	img := createGradientImage(100, 50)

	frame := resizeFrame(img, 128)

	bounds := frame.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 128 {
		t.Errorf("frame is %dx%d; want 128x128", bounds.Dx(), bounds.Dy())
	}
}

func TestImageToTensor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 0, 255, 255})

	tensor := imageToTensor(img, 0.5, 0.5)

	if len(tensor) != 2*1*3 {
		t.Fatalf("tensor has %d values; want %d", len(tensor), 2*1*3)
	}

	// Channels are interleaved per pixel; 0.5/0.5 normalization maps
	// 255 -> 1 and 0 -> -1.
	expected := []float32{1, -1, -1, -1, -1, 1}
	for i := range expected {
		if diff := tensor[i] - expected[i]; diff > 0.001 || diff < -0.001 {
			t.Errorf("tensor = %v; want %v", tensor, expected)
			break
		}
	}
}

func TestImageToTensorIdentityNormalization(t *testing.T) {
	img := createTestImage(4, 4, color.White)

	tensor := imageToTensor(img, 0, 1)

	for i, v := range tensor {
		if v < 0.999 || v > 1.001 {
			t.Fatalf("tensor[%d] = %f; want 1.0 for a white image", i, v)
		}
	}
}

func TestToRGBA(t *testing.T) {
	rgba := createTestImage(10, 10, color.White)
	if toRGBA(rgba) != rgba {
		t.Error("toRGBA should return *image.RGBA input unchanged")
	}

	gray := image.NewGray(image.Rect(0, 0, 10, 10))
	converted := toRGBA(gray)
	if converted.Bounds().Dx() != 10 || converted.Bounds().Dy() != 10 {
		t.Errorf("converted image is %dx%d; want 10x10", converted.Bounds().Dx(), converted.Bounds().Dy())
	}
}

// Helper functions

func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func createGradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			gray := uint8((x + y) * 255 / (width + height))
			img.Set(x, y, color.RGBA{gray, gray, gray, 255})
		}
	}
	return img
}

func encodeJPEG(img image.Image) []byte {
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func encodeBMP(img image.Image) []byte {
	var buf bytes.Buffer
	bmp.Encode(&buf, img)
	return buf.Bytes()
}
