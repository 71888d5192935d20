package build

import (
	"runtime"
	"time"
)

// Time is the build time.
var Time string = time.Now().Format(time.RFC3339)

// GoVersion is the Go version that built the binary.
var GoVersion string = runtime.Version()
