package slideshow

import "github.com/edaniels/golog"

// Logger is used for debug information about absorbed load failures.
var Logger = golog.Global().Named("slideshow")
