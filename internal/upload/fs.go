package upload

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// nativeFS is a billy.Filesystem that resolves paths exactly like the os
// package, relative paths included.
type nativeFS struct {
	osfs.ChrootOS
}

// Chroot returns a filesystem rooted at path.
//
//nolint:ireturn // signature is dictated by billy.Chroot.
func (n *nativeFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the filesystem root.
func (n *nativeFS) Root() string {
	return "/"
}
