package slideshow

import (
	"image"
	// register decoders for bundled assets.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A Bundle is a read-only asset store addressed by name.
type Bundle interface {
	// Image returns the decoded image for name or an error wrapping
	// ErrImageNotFound.
	Image(name string) (image.Image, error)
}

// bundleExtensions are tried in order when a name has no known extension.
var bundleExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".webp"}

// scaleSuffixes are the resolution variants looked up after the plain name.
var scaleSuffixes = []string{"", "@2x", "@3x"}

// An FSBundle resolves asset names against a file system such as an
// embed.FS or a directory.
type FSBundle struct {
	fsys fs.FS
}

// NewFSBundle returns a bundle over fsys.
func NewFSBundle(fsys fs.FS) *FSBundle {
	return &FSBundle{fsys: fsys}
}

// NewDirBundle returns a bundle over the directory at dir.
func NewDirBundle(dir string) *FSBundle {
	return NewFSBundle(os.DirFS(dir))
}

// Image resolves name to a decoded image. A name is tried as is, then with
// each known image extension, then with the @2x and @3x scale variants.
func (b *FSBundle) Image(name string) (image.Image, error) {
	candidates, err := bundleCandidates(name)
	if err != nil {
		return nil, newImageNotFoundError(name, err)
	}
	var lastErr error
	for _, candidate := range candidates {
		img, err := b.decode(candidate)
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			lastErr = err
		}
	}
	return nil, newImageNotFoundError(name, lastErr)
}

func (b *FSBundle) decode(name string) (image.Image, error) {
	f, err := b.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "error decoding %q", name)
	}
	return img, nil
}

func bundleCandidates(name string) ([]string, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" || !fs.ValidPath(name) {
		return nil, errors.New("invalid asset name")
	}
	ext := strings.ToLower(path.Ext(name))
	for _, known := range bundleExtensions {
		if ext == known {
			base := strings.TrimSuffix(name, path.Ext(name))
			candidates := make([]string, 0, len(scaleSuffixes))
			for _, scale := range scaleSuffixes {
				candidates = append(candidates, base+scale+path.Ext(name))
			}
			return candidates, nil
		}
	}
	candidates := []string{name}
	for _, scale := range scaleSuffixes {
		for _, known := range bundleExtensions {
			candidates = append(candidates, name+scale+known)
		}
	}
	return candidates, nil
}
