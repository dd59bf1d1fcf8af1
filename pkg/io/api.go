package io

import (
	"os"
)

// FileIO is the filesystem surface the validator needs: existence and
// regular-file checks against paths already rewritten by the path mapper.
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	FileExists(path string) bool
}
