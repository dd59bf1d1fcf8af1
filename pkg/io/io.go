package io

import (
	"os"
)

var _ FileIO = (*MediaFileSystem)(nil)

// MediaFileSystem is the default FileIO implementation, backed by the os package.
type MediaFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *MediaFileSystem) Stat(target string) (os.FileInfo, error) {
	return os.Stat(target)
}

func (o *MediaFileSystem) FileExists(path string) bool {
	_, err := o.Stat(path)
	return err == nil
}
