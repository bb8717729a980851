package validate

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Validator performs pre-flight checks on input documents before any
// scanning pass runs. All failures are fatal for the document.
type Validator struct {
	sniffBytes int
}

// NewValidator creates a new input validator
func NewValidator() *Validator {
	return &Validator{
		sniffBytes: 8192,
	}
}

// ValidatePath checks that the path resolves to an existing, readable,
// regular text file.
func (v *Validator) ValidatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
		return fmt.Errorf("stat input file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("input path is a directory, not a file: %s", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path is not a regular file: %s", path)
	}

	return v.sniffText(path)
}

// sniffText rejects files that look binary. A NUL byte in the first few
// KB is a strong indicator the input is not line-structured text.
func (v *Validator) sniffText(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer func() { _ = file.Close() }()

	buf := make([]byte, v.sniffBytes)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read input file: %w", err)
	}

	if bytes.IndexByte(buf[:n], 0) >= 0 {
		return fmt.Errorf("input file appears to be binary: %s", path)
	}

	return nil
}
