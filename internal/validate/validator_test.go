package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath_RegularTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("plain text\nmore text\n"), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	if err := NewValidator().ValidatePath(path); err != nil {
		t.Errorf("expected valid file to pass, got %v", err)
	}
}

func TestValidatePath_Missing(t *testing.T) {
	err := NewValidator().ValidatePath(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestValidatePath_Directory(t *testing.T) {
	err := NewValidator().ValidatePath(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory input")
	}
	if !strings.Contains(err.Error(), "directory") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestValidatePath_BinaryRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}, 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	err := NewValidator().ValidatePath(path)
	if err == nil {
		t.Fatal("expected error for binary content")
	}
	if !strings.Contains(err.Error(), "binary") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestValidatePath_EmptyFileAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	if err := NewValidator().ValidatePath(path); err != nil {
		t.Errorf("empty file is valid text input, got %v", err)
	}
}
