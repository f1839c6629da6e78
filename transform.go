package augeas

import (
	"fmt"
	"strings"
)

// loadPathPrefix is the reserved tree location transforms live under.
const loadPathPrefix = "/augeas/load/"

// AddTransform registers a transform under /augeas/load, binding the lens
// to the files matched by the incl glob patterns minus those matched by the
// excl patterns. name identifies the transform; when empty it is derived
// from the lens name by stripping a leading '@' and any extension. The
// transform takes effect on the next Load.
//
// At least one incl pattern is required.
func (a *Augeas) AddTransform(lens, name string, incl []string, excl ...string) error {
	if len(incl) == 0 {
		return &OpError{Op: "transform", Path: lens, Err: ErrInvalidArg, Detail: "no include patterns"}
	}
	if name == "" {
		name = lensName(lens)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("transform", lens); err != nil {
		return err
	}

	prefix := loadPathPrefix + name + "/"
	lensPath := prefix + "lens"
	if err := a.setLocked(lensPath, &lens); err != nil {
		return err
	}
	for i, pattern := range incl {
		if err := a.setLocked(fmt.Sprintf("%sincl[%d]", prefix, i+1), &pattern); err != nil {
			return err
		}
	}
	for i, pattern := range excl {
		if err := a.setLocked(fmt.Sprintf("%sexcl[%d]", prefix, i+1), &pattern); err != nil {
			return err
		}
	}
	return nil
}

// ClearTransforms removes every transform beneath /augeas/load. A Load
// right after leaves nothing under /files.
func (a *Augeas) ClearTransforms() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("transform", ""); err != nil {
		return err
	}
	_, err := a.removeLocked(loadPathPrefix + "*")
	return err
}

// lensName derives a transform name from a lens reference: "Hosts.lns"
// and "@Hosts" both give "Hosts".
func lensName(lens string) string {
	name := strings.TrimPrefix(lens, "@")
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}
