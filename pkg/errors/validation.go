package errors

import (
	"strings"
	"unicode"
)

// ValidateInputPath checks a user-supplied file or directory path before
// the CLI touches the filesystem. The rules are intentionally
// conservative: reject control characters, null bytes, and absurd lengths.
// Relative and absolute paths are both fine; this is a local tool and the
// user owns the machine.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateListenAddr checks a host:port listen address for the serve
// command. Only shape is checked; binding errors surface when the server
// starts.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "listen address cannot be empty")
	}
	if !strings.Contains(addr, ":") {
		return New(ErrCodeInvalidInput, "listen address must be host:port, got %q", addr)
	}
	return nil
}
