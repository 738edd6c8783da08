// Package filesystem provides the concrete implementations of types.FS: one
// backed by the OS, one backed by an afero filesystem for tests.
package filesystem
