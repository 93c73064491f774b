package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource resolves path and returns the program text and its absolute path.
func ReadSource(path string) (src string, fullPath string, err error) {
	fullPath, _, err = GetPathInfo(path)
	if err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fullPath, fmt.Errorf("read %s: %w", fullPath, err)
	}
	return string(data), fullPath, nil
}

// DefaultOutputPath replaces the extension of inPath with ext (".png").
func DefaultOutputPath(inPath, ext string) string {
	old := filepath.Ext(inPath)
	return inPath[:len(inPath)-len(old)] + ext
}
