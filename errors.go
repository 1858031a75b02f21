package slideshow

import "github.com/pkg/errors"

var (
	// ErrImageNotFound is returned when a bundle name or file path does not
	// resolve to a decodable image.
	ErrImageNotFound = errors.New("image not found")

	// ErrNilImage is returned when constructing an ImageSource without an image.
	ErrNilImage = errors.New("image must not be nil")
)

func newImageNotFoundError(what string, cause error) error {
	if cause == nil {
		return errors.Wrapf(ErrImageNotFound, "%q", what)
	}
	return errors.Wrapf(ErrImageNotFound, "%q: %v", what, cause)
}
