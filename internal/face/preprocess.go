package face

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// decodeImage decodes an encoded image held in memory.
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// resizeFrame squashes an image to a square model input. Aspect ratio is
// not preserved, so relative detector coordinates map straight back onto
// the source bounds.
func resizeFrame(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// toRGBA returns img as *image.RGBA, converting only when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// imageToTensor flattens an RGBA image into NHWC float32 values. Every
// channel is scaled to [0, 1] and then shifted by mean and divided by std.
func imageToTensor(img *image.RGBA, mean, std float32) []float32 {
	bounds := img.Bounds()
	tensor := make([]float32, 0, bounds.Dx()*bounds.Dy()*3)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y)
			tensor = append(tensor,
				(float32(img.Pix[offset])/255-mean)/std,
				(float32(img.Pix[offset+1])/255-mean)/std,
				(float32(img.Pix[offset+2])/255-mean)/std,
			)
		}
	}

	return tensor
}
