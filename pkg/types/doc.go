// Package types holds the shared data model of the installer: game and
// layout enumerations, the conflict pair, the injectable filesystem
// interface, and the diagnostic event types.
package types
