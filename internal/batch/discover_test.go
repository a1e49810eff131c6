package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.png", "a.jpg", "b.png", "notes.txt", "upper.PNG", "photo.jpeg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.png"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Discover: got %v, want %v", files, want)
	}
}

func TestDiscover_Empty(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestDiscover_MissingFolder(t *testing.T) {
	_, err := Discover("/nonexistent/folder")
	if err == nil {
		t.Error("Discover should fail for a missing folder")
	}
}

func TestIsImageName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"img.png", true},
		{"img.jpg", true},
		{"img.JPG", false},
		{"img.jpeg", false},
		{"img.png.bak", false},
		{"png", false},
	}

	for _, tt := range tests {
		if got := isImageName(tt.name); got != tt.want {
			t.Errorf("isImageName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
