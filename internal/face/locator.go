package face

import (
	"fmt"
	"image"
	"image/draw"
)

// cropFace cuts a detected face out of the source image. The relative box
// is mapped to pixels by truncation, padded with margin pixels on every
// side and clamped to the image bounds.
func cropFace(img image.Image, det Detection, margin int) (*image.RGBA, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	x := int(det.XMin * float32(width))
	y := int(det.YMin * float32(height))
	w := int(det.Width * float32(width))
	h := int(det.Height * float32(height))

	x1 := max(0, x-margin)
	y1 := max(0, y-margin)
	x2 := min(width, x+w+margin)
	y2 := min(height, y+h+margin)

	if x2 <= x1 || y2 <= y1 {
		return nil, fmt.Errorf("face region is empty after clamping to %dx%d", width, height)
	}

	crop := image.NewRGBA(image.Rect(0, 0, x2-x1, y2-y1))
	draw.Draw(crop, crop.Bounds(), img, image.Pt(bounds.Min.X+x1, bounds.Min.Y+y1), draw.Src)
	return crop, nil
}
