package face

import (
	"testing"
)

func TestCropFace(t *testing.T) {
	img := createGradientImage(100, 100)
	det := Detection{XMin: 0.25, YMin: 0.25, Width: 0.5, Height: 0.5}

	crop, err := cropFace(img, det, 0)
	if err != nil {
		t.Fatalf("cropFace failed: %v", err)
	}

	bounds := crop.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("crop is %dx%d; want 50x50", bounds.Dx(), bounds.Dy())
	}

	// The crop origin must correspond to the source pixel at (25, 25).
	want := img.At(25, 25)
	got := crop.At(0, 0)
	if got != want {
		t.Errorf("crop(0,0) = %v; want source pixel %v", got, want)
	}
}

func TestCropFaceAppliesMargin(t *testing.T) {
	img := createGradientImage(100, 100)
	det := Detection{XMin: 0.25, YMin: 0.25, Width: 0.5, Height: 0.5}

	crop, err := cropFace(img, det, 20)
	if err != nil {
		t.Fatalf("cropFace failed: %v", err)
	}

	// Box (25, 25)-(75, 75) padded by 20 and clamped to 100x100 becomes
	// (5, 5)-(95, 95).
	bounds := crop.Bounds()
	if bounds.Dx() != 90 || bounds.Dy() != 90 {
		t.Errorf("crop is %dx%d; want 90x90", bounds.Dx(), bounds.Dy())
	}

	want := img.At(5, 5)
	got := crop.At(0, 0)
	if got != want {
		t.Errorf("crop(0,0) = %v; want source pixel %v", got, want)
	}
}

func TestCropFaceClampsToBounds(t *testing.T) {
	img := createGradientImage(60, 40)
	det := Detection{XMin: 0.8, YMin: 0.8, Width: 0.4, Height: 0.4}

	crop, err := cropFace(img, det, 20)
	if err != nil {
		t.Fatalf("cropFace failed: %v", err)
	}

	// x: int(0.8*60)=48, minus margin -> 28, right edge clamps to 60.
	// y: int(0.8*40)=32, minus margin -> 12, bottom edge clamps to 40.
	bounds := crop.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 28 {
		t.Errorf("crop is %dx%d; want 32x28", bounds.Dx(), bounds.Dy())
	}
}

func TestCropFaceTruncatesCoordinates(t *testing.T) {
	img := createGradientImage(100, 100)
	// 0.339 * 100 = 33.9 truncates to 33; 0.25 * 100 = 25.
	det := Detection{XMin: 0.339, YMin: 0.25, Width: 0.25, Height: 0.25}

	crop, err := cropFace(img, det, 0)
	if err != nil {
		t.Fatalf("cropFace failed: %v", err)
	}

	want := img.At(33, 25)
	got := crop.At(0, 0)
	if got != want {
		t.Errorf("crop(0,0) = %v; want source pixel %v", got, want)
	}
}

func TestCropFaceNegativeOriginClamps(t *testing.T) {
	img := createGradientImage(100, 100)
	// A face at the very edge can decode to a slightly negative origin.
	det := Detection{XMin: -0.05, YMin: -0.05, Width: 0.3, Height: 0.3}

	crop, err := cropFace(img, det, 10)
	if err != nil {
		t.Fatalf("cropFace failed: %v", err)
	}

	want := img.At(0, 0)
	got := crop.At(0, 0)
	if got != want {
		t.Errorf("crop(0,0) = %v; want source pixel %v", got, want)
	}
}

func TestCropFaceEmptyRegion(t *testing.T) {
	img := createGradientImage(100, 100)
	// The whole box lies beyond the right edge.
	det := Detection{XMin: 1.5, YMin: 0.2, Width: 0.2, Height: 0.2}

	_, err := cropFace(img, det, 0)
	if err == nil {
		t.Error("cropFace should fail when the clamped region is empty")
	}
}
