package astipsi

import "github.com/asticode/go-astikit"

// Decoders are pure functions, that's why the logger is global
// It's only used to let the developer know when an unlisted descriptor tag, extension tag or table id has been
// found, or when some text couldn't be decoded
var logger = astikit.AdaptStdLogger(nil)

// SetLogger sets the package logger
func SetLogger(l astikit.StdLogger) { logger = astikit.AdaptStdLogger(l) }
