// Package warebot carries build-level metadata for the warebot CLI.
package warebot

// Version is the warebot release version.
const Version = "0.1.0"
