package archive

import (
	"os"
	"path/filepath"
	"testing"
)

// sha256("hello")
const helloHash = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func TestHash(t *testing.T) {
	if got := Hash([]byte("hello")); got != helloHash {
		t.Errorf("Hash(\"hello\") = %s, want %s", got, helloHash)
	}
}

func TestPathLayout(t *testing.T) {
	got := Path("/archive", helloHash)
	want := filepath.Join("/archive", "2", "c", helloHash)
	if got != want {
		t.Errorf("Path = %s, want %s", got, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	root := t.TempDir()
	data := []byte("hello")

	path, err := Write(root, Hash(data), data)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := filepath.Join(root, "2", "c", helloHash)
	if path != want {
		t.Errorf("Write returned path %s, want %s", path, want)
	}

	stored, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read archived file: %v", err)
	}
	if string(stored) != "hello" {
		t.Errorf("archived contents = %q, want %q", stored, "hello")
	}
}

func TestWriteIdenticalBytesSharesOneFile(t *testing.T) {
	root := t.TempDir()
	data := []byte("same trace bytes")
	hash := Hash(data)

	path1, err := Write(root, hash, data)
	if err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	path2, err := Write(root, hash, data)
	if err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	if path1 != path2 {
		t.Errorf("identical bytes produced different paths: %s vs %s", path1, path2)
	}

	// Exactly one file in the archive
	count := 0
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 archived file, found %d", count)
	}
}
