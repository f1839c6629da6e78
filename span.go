package augeas

/*
#include <augeas.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// Span describes where a node's label and value occur in the file it was
// loaded from, as byte offsets. Offsets are only recorded when the handle
// was created with EnableSpan.
type Span struct {
	Filename   string
	LabelStart uint
	LabelEnd   uint
	ValueStart uint
	ValueEnd   uint
	SpanStart  uint
	SpanEnd    uint
}

// Span returns the source-file span of the node matched by path. It fails
// with ErrNoSpan when the node does not exist, is not associated with a
// file, or the handle was created without EnableSpan.
func (a *Augeas) Span(path string) (Span, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("span", path); err != nil {
		return Span{}, err
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var cFilename *C.char
	var labelStart, labelEnd, valueStart, valueEnd, spanStart, spanEnd C.uint

	ret := C.aug_span(a.handle, cPath, &cFilename,
		&labelStart, &labelEnd,
		&valueStart, &valueEnd,
		&spanStart, &spanEnd)
	if ret < 0 {
		return Span{}, a.opErr("span", path, ErrNoSpan)
	}
	// The filename is allocated by the native side for the caller.
	defer C.free(unsafe.Pointer(cFilename))

	return Span{
		Filename:   C.GoString(cFilename),
		LabelStart: uint(labelStart),
		LabelEnd:   uint(labelEnd),
		ValueStart: uint(valueStart),
		ValueEnd:   uint(valueEnd),
		SpanStart:  uint(spanStart),
		SpanEnd:    uint(spanEnd),
	}, nil
}
