package internal

// Version is the tool version (set via -ldflags)
var Version = "1.0.0"
