package augeas

import "errors"

// Error kinds reported by the binding. Every native failure is translated
// into exactly one of these; match them with errors.Is.
var (
	// ErrInit means the native library could not create a handle.
	ErrInit = errors.New("augeas initialization failed")
	// ErrClosed means an operation was attempted after Close.
	ErrClosed = errors.New("augeas handle is closed")
	// ErrAmbiguous means a path expression matched more than one node
	// where exactly one was required.
	ErrAmbiguous = errors.New("path matches more than one node")
	// ErrInvalidArg means an argument had the wrong shape, such as a
	// malformed path expression or an empty include list.
	ErrInvalidArg = errors.New("invalid argument")
	// ErrInvalidOperation means a mutating call was rejected by the
	// native library.
	ErrInvalidOperation = errors.New("operation rejected")
	// ErrMatch means a match call failed.
	ErrMatch = errors.New("match failed")
	// ErrNoSpan means span information is unavailable for the node: it
	// does not exist, is not backed by a file, or spans are disabled.
	ErrNoSpan = errors.New("no span information for node")
	// ErrSave means writing modified files back to disk failed.
	ErrSave = errors.New("save failed")
	// ErrLoad means loading files into the tree failed.
	ErrLoad = errors.New("load failed")
)

// OpError records a failed operation, the path expression involved and the
// error kind, plus any detail the native library reported.
type OpError struct {
	Op     string // native entry point, e.g. "get"
	Path   string // path expression involved, if any
	Err    error  // one of the Err* kinds above
	Detail string // native error message, if available
}

func (e *OpError) Error() string {
	s := "augeas: " + e.Op
	if e.Path != "" {
		s += " " + e.Path
	}
	s += ": " + e.Err.Error()
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

func (e *OpError) Unwrap() error { return e.Err }

// opErr builds an *OpError carrying the native detail message, if any.
// Callers hold the handle lock.
func (a *Augeas) opErr(op, path string, kind error) error {
	return &OpError{Op: op, Path: path, Err: kind, Detail: a.errorDetail()}
}
