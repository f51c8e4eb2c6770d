package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/imgbench/pkg/pixbuf"
	"github.com/user/imgbench/pkg/ports"
)

func TestRenderer_CreateSurface(t *testing.T) {
	r := New()

	surface := r.CreateSurface(100, 80, color.White)
	if surface == nil {
		t.Fatal("expected surface to be created")
	}

	w, h := surface.Size()
	if w != 100 || h != 80 {
		t.Errorf("expected 100x80, got %dx%d", w, h)
	}

	img := surface.ToImage()
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("expected 100x80 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeDecodeJPEG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}

	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}

	decoded, err := r.DecodeImage(data, ports.FormatJPEG)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("expected 50x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_DecodeAuto(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := r.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Errorf("expected 30x20, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_DecodeGarbage(t *testing.T) {
	r := New()

	if _, err := r.DecodeImage([]byte("not an image"), ports.FormatAuto); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestRenderer_EncodeUnsupported(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if _, err := r.EncodeImage(img, ports.FormatAuto, 0); err == nil {
		t.Error("expected error for FormatAuto encode")
	}
}

func TestSurface_Fill(t *testing.T) {
	s := NewSurface(10, 10, color.White)

	s.Fill(color.Black)

	r, g, b, a := s.ToImage().At(5, 5).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("expected opaque black, got %d %d %d %d", r, g, b, a)
	}
}

func TestSurface_DrawLines(t *testing.T) {
	s := NewSurface(40, 40, color.Black)

	red := color.RGBA{R: 255, A: 255}
	s.DrawLines(red, false, []image.Point{{5, 10}, {30, 10}}, 1)

	img := s.ToImage()
	r, _, _, _ := img.At(15, 10).RGBA()
	if r>>8 < 200 {
		t.Errorf("expected red pixel on line, got red=%d", r>>8)
	}
	r, _, _, _ = img.At(15, 20).RGBA()
	if r != 0 {
		t.Errorf("expected untouched pixel off line, got red=%d", r>>8)
	}
}

func TestSurface_DrawLinesClosed(t *testing.T) {
	s := NewSurface(40, 40, color.Black)

	green := color.RGBA{G: 255, A: 255}
	s.DrawLines(green, true, []image.Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}, 1)

	// The closing segment runs down x=10.
	_, g, _, _ := s.ToImage().At(10, 20).RGBA()
	if g>>8 < 200 {
		t.Errorf("expected closing segment to be drawn, got green=%d", g>>8)
	}
}

func TestSurface_DrawLinesTooFewPoints(t *testing.T) {
	s := NewSurface(10, 10, color.Black)

	s.DrawLines(color.White, false, []image.Point{{5, 5}}, 1)

	r, _, _, _ := s.ToImage().At(5, 5).RGBA()
	if r != 0 {
		t.Error("expected single point to draw nothing")
	}
}

func TestSurface_BlitAndPixels(t *testing.T) {
	s := NewSurface(6, 4, color.Black)

	// Surface order: (width=3, height=2, channels=3).
	arr, err := pixbuf.New(3, 2, 3)
	if err != nil {
		t.Fatalf("pixbuf.New failed: %v", err)
	}
	arr.Set(2, 1, 0, 200)
	arr.Set(2, 1, 1, 100)
	arr.Set(2, 1, 2, 50)

	if err := s.Blit(arr, 1, 1); err != nil {
		t.Fatalf("Blit failed: %v", err)
	}

	px := s.Pixels()
	if px.Shape() != [3]int{6, 4, 3} {
		t.Fatalf("expected (6, 4, 3), got %v", px.Shape())
	}
	if px.At(3, 2, 0) != 200 || px.At(3, 2, 1) != 100 || px.At(3, 2, 2) != 50 {
		t.Errorf("expected blitted pixel at (3, 2), got %d %d %d",
			px.At(3, 2, 0), px.At(3, 2, 1), px.At(3, 2, 2))
	}
	if px.At(0, 0, 0) != 0 {
		t.Error("expected pixel outside blit to stay black")
	}
}

func TestSurface_BlitRejectsChannels(t *testing.T) {
	s := NewSurface(4, 4, color.Black)

	arr, _ := pixbuf.New(2, 2, 5)
	if err := s.Blit(arr, 0, 0); err == nil {
		t.Error("expected error for 5-channel array")
	}
}

func TestNewContextSurface(t *testing.T) {
	base := NewSurface(8, 8, color.Black)
	s := NewContextSurface(base.Context())

	s.Fill(color.White)

	r, _, _, _ := base.ToImage().At(0, 0).RGBA()
	if r != 0xffff {
		t.Error("expected shared context to be filled")
	}
}

func TestSurface_BlitIgnoresAlpha(t *testing.T) {
	surface := NewSurface(2, 2, color.Black)

	// (width, height, RGBA) with a half-transparent pixel.
	arr, err := pixbuf.New(2, 2, 4)
	if err != nil {
		t.Fatalf("pixbuf.New failed: %v", err)
	}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			arr.Set(x, y, 0, 200)
			arr.Set(x, y, 1, 100)
			arr.Set(x, y, 2, 50)
			arr.Set(x, y, 3, 128)
		}
	}

	if err := surface.Blit(arr, 0, 0); err != nil {
		t.Fatalf("Blit failed: %v", err)
	}

	got := color.NRGBAModel.Convert(surface.ToImage().At(1, 1)).(color.NRGBA)
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSurface_EmptyPixels(t *testing.T) {
	surface := NewSurface(0, 0, color.Black)
	if px := surface.Pixels(); px != nil {
		t.Errorf("expected nil pixels for an empty surface, got %v", px)
	}
}
