package core

import (
	"os"

	"github.com/huangsam/repochurn/internal/contract"
)

// withWorkDir runs fn with a fresh temporary directory under root ("" means
// os.TempDir) and removes it afterwards, also when fn panics. Removal errors
// are only logged.
func withWorkDir(root, prefix string, fn func(dir string) error) error {
	dir, err := os.MkdirTemp(root, prefix)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			contract.Log().WithError(rmErr).WithField("dir", dir).Warn("failed to remove work dir")
		}
	}()
	return fn(dir)
}
