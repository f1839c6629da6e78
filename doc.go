// Package augeas provides Go bindings for the Augeas configuration-editing
// library.
//
// Augeas parses configuration files into a tree structure, which it exposes
// through its public API. Changes made through the API are written back to the
// initially read files, preserving comments and formatting details. The
// transformation is controlled by "lens" definitions that describe the file
// format and its mapping into the tree.
//
// All cgo lives in this package; no other package in the module imports "C".
// An [Augeas] value owns exactly one native handle. The handle is created by
// [New], released by [Augeas.Close], and every native call against it is
// serialized by an internal mutex because the underlying library performs no
// locking of its own. Native return codes are converted to Go errors at the
// boundary; callers never see or free native memory.
package augeas
