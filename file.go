package fastscan

import (
	"errors"
	"os"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func openSourceFile(path string) (*os.File, error) {
	if !fileExists(path) {
		return nil, newSourceNotFoundError(path, os.ErrNotExist)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}
