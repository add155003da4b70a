package drills

import _ "embed"

// Version is the release of the drills module.
//
//go:embed VERSION
var Version string
