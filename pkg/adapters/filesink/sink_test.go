package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/captionframe/pkg/mocks"
	"github.com/user/captionframe/pkg/ports"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveLayout(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	data := []byte("frame: portrait\n")
	if err := sink.SaveLayout(data); err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}

	saved, ok := fs.GetFile(filepath.Join(testBaseDir, LayoutFile))
	if !ok {
		t.Fatal("expected layout file to be saved")
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveImages(t *testing.T) {
	fs := mocks.NewFileSystem()
	var formats []ports.ImageFormat
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			formats = append(formats, format)
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil
		},
	}
	sink := New(testBaseDir, fs, renderer)
	img := image.NewRGBA(image.Rect(0, 0, 108, 135))

	if err := sink.SaveBackground(img); err != nil {
		t.Fatalf("SaveBackground failed: %v", err)
	}
	if err := sink.SaveComposed(img); err != nil {
		t.Fatalf("SaveComposed failed: %v", err)
	}

	for _, name := range []string{BackgroundFile, ComposedFile} {
		if _, ok := fs.GetFile(filepath.Join(testBaseDir, name)); !ok {
			t.Errorf("expected %s to be saved", name)
		}
	}
	for _, f := range formats {
		if f != ports.FormatPNG {
			t.Errorf("expected PNG encoding, got %v", f)
		}
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveComposed(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected encode error")
	}
	if _, ok := fs.GetFile(filepath.Join(testBaseDir, ComposedFile)); ok {
		t.Error("expected nothing written on encode error")
	}
}
