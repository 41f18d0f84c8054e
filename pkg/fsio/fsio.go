// Package fsio exposes file operations in continuation style: the caller
// supplies an await.Callback and the operation completes on its own
// goroutine. It exists as the canonical continuation-style counterpart
// to the deferred-result operations elsewhere in the module.
package fsio

import (
	"fmt"
	"os"

	"github.com/ev-ko/await/pkg/await"
)

// ReadFile reads the named file and delivers its contents to cb, which
// is invoked exactly once: with the buffer on success, or with the I/O
// error on the error channel.
func ReadFile(path string, cb await.Callback[[]byte]) {
	done := cb.Once()
	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			done(nil, fmt.Errorf("reading %s: %w", path, err))
			return
		}
		done(data, nil)
	}()
}

// WriteFile writes data to the named file with the given permissions and
// signals completion through cb. The value delivered on success is the
// number of bytes written.
func WriteFile(path string, data []byte, perm os.FileMode, cb await.Callback[int]) {
	done := cb.Once()
	go func() {
		if err := os.WriteFile(path, data, perm); err != nil {
			done(0, fmt.Errorf("writing %s: %w", path, err))
			return
		}
		done(len(data), nil)
	}()
}
