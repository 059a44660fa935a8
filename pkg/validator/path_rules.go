package validator

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/optional"
)

// Exists fails when path does not exist. Absent paths pass.
// The stat error is attached as the cause.
func Exists(path optional.Value[string], name string, kind errkind.Kind) error {
	p, ok := path.Get()
	if !ok {
		return nil
	}
	if _, err := os.Stat(p); err != nil {
		return failWithCause(kind, name, "should point to an existing file or directory", err)
	}
	return nil
}

// IsFile fails when path exists but is not a regular file.
// Missing paths pass; combine with Exists to require existence.
func IsFile(path optional.Value[string], name string, kind errkind.Kind) error {
	return checkMode(path, name, kind, "should point to an existing file", func(info fs.FileInfo) bool {
		return info.Mode().IsRegular()
	})
}

// IsDirectory fails when path exists but is not a directory.
// Missing paths pass; combine with Exists to require existence.
func IsDirectory(path optional.Value[string], name string, kind errkind.Kind) error {
	return checkMode(path, name, kind, "should point to an existing directory", fs.FileInfo.IsDir)
}

func checkMode(path optional.Value[string], name string, kind errkind.Kind, phrase string, want func(fs.FileInfo) bool) error {
	p, ok := path.Get()
	if !ok {
		return nil
	}
	info, err := os.Stat(p)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		// Neither existence nor kind can be confirmed.
		return failWithCause(kind, name, phrase, err)
	case !want(info):
		return fail(kind, name, phrase)
	}
	return nil
}
