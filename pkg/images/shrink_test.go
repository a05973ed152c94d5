package images

import (
	"bytes"
	"image"
	"testing"
)

func TestShrink_BoundsDimensions(t *testing.T) {
	src := noisePNG(t, 400, 200)
	out, err := Shrink(src, 100, 75)
	if err != nil {
		t.Fatal(err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if format != "jpeg" {
		t.Fatalf("format=%q want jpeg", format)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Fatalf("dims=%dx%d want 100x50", cfg.Width, cfg.Height)
	}
}

func TestShrink_PortraitUsesHeight(t *testing.T) {
	src := noisePNG(t, 50, 200)
	out, err := Shrink(src, 100, 75)
	if err != nil {
		t.Fatal(err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Height != 100 || cfg.Width != 25 {
		t.Fatalf("dims=%dx%d want 25x100", cfg.Width, cfg.Height)
	}
}

func TestShrink_WithinBoundsReencodesOnly(t *testing.T) {
	src := noisePNG(t, 40, 40)
	out, err := Shrink(src, 100, 75)
	if err != nil {
		t.Fatal(err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 40 {
		t.Fatalf("dims=%dx%d want 40x40", cfg.Width, cfg.Height)
	}
}

func TestShrink_GarbageInput(t *testing.T) {
	if _, err := Shrink([]byte("not an image"), 100, 75); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestShrink_BadMaxDim(t *testing.T) {
	if _, err := Shrink(noisePNG(t, 10, 10), 0, 75); err == nil {
		t.Fatal("expected error for non-positive maxDim")
	}
}
