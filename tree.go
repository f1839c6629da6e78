package augeas

/*
#include <augeas.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// Get looks up the value associated with path. It returns ok=false, not an
// error, when no node matches or the matched node carries no value. It
// fails with ErrAmbiguous when more than one node matches, and with
// ErrInvalidArg when the path expression is malformed.
func (a *Augeas) Get(path string) (value string, ok bool, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("get", path); err != nil {
		return "", false, err
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var cValue *C.char
	ret := C.aug_get(a.handle, cPath, &cValue)
	switch {
	case ret == 0:
		return "", false, nil
	case ret < 0:
		if a.errorCode() == C.AUG_EMMATCH {
			return "", false, a.opErr("get", path, ErrAmbiguous)
		}
		return "", false, a.opErr("get", path, ErrInvalidArg)
	}
	// The returned string is owned by the native tree; copy, don't free.
	if cValue == nil {
		return "", false, nil
	}
	return C.GoString(cValue), true, nil
}

// Set sets the value associated with path to value, creating intermediate
// nodes as needed. It fails with ErrInvalidOperation if path matches more
// than one existing node.
func (a *Augeas) Set(path, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("set", path); err != nil {
		return err
	}
	return a.setLocked(path, &value)
}

// Clear removes the value of the node at path, leaving the node in place.
// Like Set, intermediate nodes are created as needed.
func (a *Augeas) Clear(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("set", path); err != nil {
		return err
	}
	return a.setLocked(path, nil)
}

// setLocked performs aug_set with an optional value. A nil value clears the
// node's value. Callers hold the lock with a live handle.
func (a *Augeas) setLocked(path string, value *string) error {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	var cValue *C.char
	if value != nil {
		cValue = C.CString(*value)
		defer C.free(unsafe.Pointer(cValue))
	}

	if C.aug_set(a.handle, cPath, cValue) != 0 {
		return a.opErr("set", path, ErrInvalidOperation)
	}
	return nil
}

// Setm sets the value of multiple nodes in one operation, interpreting sub
// as a path expression relative to each node matching base. An empty sub
// modifies the base matches themselves. It returns the number of modified
// nodes.
func (a *Augeas) Setm(base, sub, value string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("setm", base); err != nil {
		return 0, err
	}

	cBase := C.CString(base)
	defer C.free(unsafe.Pointer(cBase))
	cSub := optCString(sub)
	defer freeCString(cSub)
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))

	ret := C.aug_setm(a.handle, cBase, cSub, cValue)
	if ret < 0 {
		return 0, a.opErr("setm", base, ErrInvalidOperation)
	}
	return int(ret), nil
}

// DefVar defines the variable name as the result of evaluating expr,
// replacing any previous definition. The variable can be used in later path
// expressions as $name. It returns -1 if expr evaluates to something other
// than a nodeset, and the number of nodes in the nodeset otherwise.
func (a *Augeas) DefVar(name, expr string) (int, error) {
	return a.defVar(name, &expr)
}

// UndefVar removes the definition of the variable name. Removing an
// undefined variable is not an error.
func (a *Augeas) UndefVar(name string) error {
	_, err := a.defVar(name, nil)
	return err
}

func (a *Augeas) defVar(name string, expr *string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("defvar", name); err != nil {
		return 0, err
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var cExpr *C.char
	if expr != nil {
		cExpr = C.CString(*expr)
		defer C.free(unsafe.Pointer(cExpr))
	}

	ret := C.aug_defvar(a.handle, cName, cExpr)
	if ret < 0 {
		return 0, a.opErr("defvar", name, ErrInvalidOperation)
	}
	return int(ret), nil
}

// DefNode defines the variable name like DefVar, except that expr must
// evaluate to a nodeset. If the nodeset is empty, a single node is created
// as if by Set(expr, value) and name is bound to it. It returns the number
// of nodes in the resulting nodeset.
func (a *Augeas) DefNode(name, expr, value string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("defnode", name); err != nil {
		return 0, err
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cExpr := C.CString(expr)
	defer C.free(unsafe.Pointer(cExpr))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))

	ret := C.aug_defnode(a.handle, cName, cExpr, cValue, nil)
	if ret < 0 {
		return 0, a.opErr("defnode", expr, ErrInvalidOperation)
	}
	return int(ret), nil
}

// Move moves the node src to dst. src must match exactly one node. dst must
// either match exactly one node, which is deleted together with its
// descendants before the move, or not exist yet, in which case it and any
// missing ancestors are created.
func (a *Augeas) Move(src, dst string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("mv", src); err != nil {
		return err
	}

	cSrc := C.CString(src)
	defer C.free(unsafe.Pointer(cSrc))
	cDst := C.CString(dst)
	defer C.free(unsafe.Pointer(cDst))

	if C.aug_mv(a.handle, cSrc, cDst) != 0 {
		return a.opErr("mv", src, ErrInvalidOperation)
	}
	return nil
}

// Insert creates a new sibling of the single node matched by path, labelled
// label, immediately before it when before is true and immediately after it
// otherwise. label must be a plain label: no '/', no '*', no trailing
// bracketed index.
func (a *Augeas) Insert(path, label string, before bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("ins", path); err != nil {
		return err
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	cLabel := C.CString(label)
	defer C.free(unsafe.Pointer(cLabel))

	cBefore := C.int(0)
	if before {
		cBefore = 1
	}
	if C.aug_insert(a.handle, cPath, cLabel, cBefore) != 0 {
		return a.opErr("ins", path, ErrInvalidOperation)
	}
	return nil
}

// Remove removes all nodes matching path and their descendants, returning
// the number of entries removed.
func (a *Augeas) Remove(path string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("rm", path); err != nil {
		return 0, err
	}
	return a.removeLocked(path)
}

// removeLocked performs aug_rm. Callers hold the lock with a live handle.
func (a *Augeas) removeLocked(path string) (int, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	ret := C.aug_rm(a.handle, cPath)
	if ret < 0 {
		return 0, a.opErr("rm", path, ErrInvalidOperation)
	}
	return int(ret), nil
}

// Match returns the paths matching the path expression, in tree order. Each
// returned path is sufficiently qualified to match exactly one node in the
// current tree. A path expression that matches nothing yields an empty
// slice, not an error.
func (a *Augeas) Match(path string) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("match", path); err != nil {
		return nil, err
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var cMatches **C.char
	ret := C.aug_match(a.handle, cPath, &cMatches)
	if ret < 0 {
		return nil, a.opErr("match", path, ErrMatch)
	}

	// The native side allocates both the array and every string in it;
	// copy them out and free everything before returning.
	matches := make([]string, 0, int(ret))
	for _, cm := range unsafe.Slice(cMatches, int(ret)) {
		if cm == nil {
			continue
		}
		matches = append(matches, C.GoString(cm))
		C.free(unsafe.Pointer(cm))
	}
	C.free(unsafe.Pointer(cMatches))
	return matches, nil
}
