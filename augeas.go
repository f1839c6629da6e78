package augeas

/*
#cgo pkg-config: augeas
#include <augeas.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

// Augeas wraps one native handle, created by New and released by Close.
// A zero Augeas is not usable.
//
// The native library is not safe for concurrent use, so every method
// serializes on an internal mutex. Methods other than Close fail with
// ErrClosed once the handle has been released.
type Augeas struct {
	mu     sync.Mutex
	handle *C.augeas
}

// New initializes the library and loads files into the tree, honoring flags.
//
// root is used as the filesystem root. If root is empty, the native library
// falls back to the AUGEAS_ROOT environment variable, or "/" if that is
// unset too.
//
// loadPath is a colon-separated list of directories searched for lens
// modules, in addition to the standard load path and the directories named
// by AUGEAS_LENS_LIB. It may be empty.
func New(root, loadPath string, flags Flag) (*Augeas, error) {
	cRoot := optCString(root)
	defer freeCString(cRoot)
	cLoadPath := optCString(loadPath)
	defer freeCString(cLoadPath)

	handle := C.aug_init(cRoot, cLoadPath, C.uint(flags))
	if handle == nil {
		return nil, &OpError{Op: "init", Err: ErrInit}
	}
	return &Augeas{handle: handle}, nil
}

// Close releases the native handle and all storage associated with it.
// Close is idempotent: the first call releases, later calls are no-ops.
// After Close every other method fails with ErrClosed.
func (a *Augeas) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.handle == nil {
		return nil
	}
	C.aug_close(a.handle)
	a.handle = nil
	return nil
}

// Version reports the version of the loaded native library, taken from the
// /augeas/version node.
func (a *Augeas) Version() (string, error) {
	v, ok, err := a.Get("/augeas/version")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &OpError{Op: "get", Path: "/augeas/version", Err: ErrInvalidOperation}
	}
	return v, nil
}

// guard reports the use-after-close error for op. Callers hold the lock.
func (a *Augeas) guard(op, path string) error {
	if a.handle == nil {
		return &OpError{Op: op, Path: path, Err: ErrClosed}
	}
	return nil
}

// errorDetail returns the native error message for the last failed call, or
// "" when none is recorded. Callers hold the lock with a live handle.
func (a *Augeas) errorDetail() string {
	if a.handle == nil || C.aug_error(a.handle) == C.AUG_NOERROR {
		return ""
	}
	msg := C.GoString(C.aug_error_message(a.handle))
	if minor := C.aug_error_minor_message(a.handle); minor != nil {
		msg += ": " + C.GoString(minor)
	}
	if details := C.aug_error_details(a.handle); details != nil {
		msg += " (" + C.GoString(details) + ")"
	}
	return msg
}

// errorCode returns the native error code for the last failed call.
// Callers hold the lock with a live handle.
func (a *Augeas) errorCode() C.int {
	return C.aug_error(a.handle)
}

// optCString copies s to C memory, mapping "" to NULL for the native
// entry points that treat a null pointer as an omitted argument.
func optCString(s string) *C.char {
	if s == "" {
		return nil
	}
	return C.CString(s)
}

func freeCString(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}
