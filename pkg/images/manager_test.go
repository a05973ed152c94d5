package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
)

// noisePNG encodes a w x h image of deterministic noise. Noise defeats
// PNG's filters, so the output is large relative to its dimensions.
func noisePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func imgFile(name string, data []byte) listing.File {
	return listing.File{Name: name, MIME: "image/png", Data: data}
}

func TestAdd_CompressesAboveThreshold(t *testing.T) {
	big := noisePNG(t, 300, 300)
	small := noisePNG(t, 10, 10)
	if int64(len(big)) < 8<<10 {
		t.Fatalf("fixture too small: %d bytes", len(big))
	}

	m := New(Config{CompressThreshold: 8 << 10, MaxDimension: 100, Quality: 70})
	defer m.Close()

	if errs := m.Add(context.Background(), imgFile("big.png", big), imgFile("small.png", small)); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	_, files := m.Snapshot()
	if len(files) != 2 {
		t.Fatalf("staged=%d want 2", len(files))
	}
	if int64(len(files[0].Data)) >= int64(len(big)) {
		t.Fatalf("big file not shrunk: %d >= %d", len(files[0].Data), len(big))
	}
	if !bytes.Equal(files[1].Data, small) {
		t.Fatal("small file must pass through untouched")
	}

	// Distinct live handles, one per staged file.
	if got := m.LivePreviewCount(); got != 2 {
		t.Fatalf("live previews=%d want 2", got)
	}
	ps := m.Previews()
	if ps[0].ID() == ps[1].ID() {
		t.Fatal("preview handles must be distinct")
	}

	// Removing index 0 releases exactly the first handle.
	if err := m.Remove(0); err != nil {
		t.Fatal(err)
	}
	if !ps[0].Released() || ps[1].Released() {
		t.Fatalf("released=%v,%v want true,false", ps[0].Released(), ps[1].Released())
	}
	if got := m.LivePreviewCount(); got != 1 {
		t.Fatalf("live previews=%d want 1", got)
	}
}

func TestAdd_RejectsNonImages(t *testing.T) {
	m := New(Config{})
	defer m.Close()
	errs := m.Add(context.Background(),
		listing.File{Name: "notes.pdf", MIME: "application/pdf", Data: []byte("%PDF")},
		imgFile("ok.png", noisePNG(t, 5, 5)),
	)
	if len(errs) != 1 || errs[0].Name != "notes.pdf" {
		t.Fatalf("errs=%v", errs)
	}
	if !errmodel.IsCategory(errs[0].Err, errmodel.CategoryValidation) {
		t.Fatalf("want validation error, got %v", errs[0].Err)
	}
	if m.Count() != 1 {
		t.Fatalf("count=%d want 1", m.Count())
	}
}

func TestAdd_CapacityPrefix(t *testing.T) {
	m := New(Config{MaxCount: 3})
	defer m.Close()
	m.SetExisting([]string{"blob:a", "blob:b"})

	data := noisePNG(t, 5, 5)
	errs := m.Add(context.Background(), imgFile("1.png", data), imgFile("2.png", data), imgFile("3.png", data))
	if len(errs) != 2 {
		t.Fatalf("errs=%d want 2 (prefix of 1 accepted)", len(errs))
	}
	if m.Count() != 3 || m.Remaining() != 0 {
		t.Fatalf("count=%d remaining=%d", m.Count(), m.Remaining())
	}
}

// Property from the resource model: after any add/remove sequence the
// number of live handles equals the number of currently staged files.
func TestLiveHandlesMatchStaged(t *testing.T) {
	m := New(Config{MaxCount: 20})
	defer m.Close()
	data := noisePNG(t, 5, 5)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		if errs := m.Add(ctx, imgFile("f.png", data)); len(errs) != 0 {
			t.Fatalf("add %d: %v", i, errs)
		}
	}
	_ = m.Remove(0)
	_ = m.Remove(2)
	_ = m.Remove(m.Count() - 1)

	_, files := m.Snapshot()
	if got := m.LivePreviewCount(); got != len(files) {
		t.Fatalf("live=%d staged=%d", got, len(files))
	}

	m.Clear()
	if got := m.LivePreviewCount(); got != 0 {
		t.Fatalf("live=%d after clear", got)
	}
}

func TestSetExisting_LeavesStagedAlone(t *testing.T) {
	m := New(Config{})
	defer m.Close()
	if errs := m.Add(context.Background(), imgFile("new.png", noisePNG(t, 5, 5))); len(errs) != 0 {
		t.Fatal(errs)
	}
	m.SetExisting([]string{"blob:x", "blob:y"})
	existing, files := m.Snapshot()
	if len(existing) != 2 || len(files) != 1 {
		t.Fatalf("existing=%d files=%d", len(existing), len(files))
	}
	if m.LivePreviewCount() != 1 {
		t.Fatalf("live=%d want 1", m.LivePreviewCount())
	}
}

func TestClose_Idempotent(t *testing.T) {
	m := New(Config{})
	if errs := m.Add(context.Background(), imgFile("a.png", noisePNG(t, 5, 5)), imgFile("b.png", noisePNG(t, 6, 6))); len(errs) != 0 {
		t.Fatal(errs)
	}
	ps := m.Previews()
	m.Close()
	m.Close() // double teardown must be safe
	for _, p := range ps {
		if !p.Released() {
			t.Fatal("handle left live after close")
		}
	}
	if m.LivePreviewCount() != 0 {
		t.Fatal("live handles after close")
	}
	if errs := m.Add(context.Background(), imgFile("late.png", noisePNG(t, 5, 5))); len(errs) != 1 {
		t.Fatalf("add after close must fail, got %v", errs)
	}
}

func TestPreviewRelease_Idempotent(t *testing.T) {
	p := &Preview{id: "p1", data: []byte{1, 2, 3}}
	p.Release()
	p.Release()
	if p.Bytes() != nil {
		t.Fatal("bytes must be nil after release")
	}
}
