package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// CreateTestTree creates an i18n tree under root from a map of relative
// file paths to contents. Directories are created as needed.
func CreateTestTree(t *testing.T, fsys afero.Fs, root string, files map[string]string) {
	t.Helper()

	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create root directory %s: %v", root, err)
	}

	for rel, content := range files {
		CreateTestFile(t, fsys, filepath.Join(root, rel), []byte(content))
	}
}

// CreateTestDir creates a directory and its parents
func CreateTestDir(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()

	if err := fsys.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, fsys afero.Fs, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := afero.WriteFile(fsys, path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()

	if _, err := fsys.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()

	if _, err := fsys.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, fsys afero.Fs, path string, expected string) {
	t.Helper()

	actual, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if string(actual) != expected {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, fsys afero.Fs, path string, substring string) {
	t.Helper()

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// ReadTree returns every regular file under root keyed by its slash-separated
// path relative to root.
func ReadTree(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk tree %s: %v", root, err)
	}

	return files
}
