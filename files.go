package augeas

/*
#include <augeas.h>
*/
import "C"

// Save writes all pending changes to disk. Only files whose tree content
// changed are written.
//
// The constructor flags control how: with SaveNewFile, changed files are
// written as ".augnew" siblings and the originals stay untouched; otherwise
// with SaveBackup, the originals are preserved as ".augsave" siblings before
// being overwritten; with neither, the originals are overwritten in place.
// With SaveNoop, nothing is written and the files that would change are
// listed under /augeas/events/saved.
func (a *Augeas) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("save", ""); err != nil {
		return err
	}
	if C.aug_save(a.handle) != 0 {
		return a.opErr("save", "", ErrSave)
	}
	return nil
}

// Load loads files into the tree according to the transforms under
// /augeas/load: each /augeas/load/NAME has exactly one child "lens" naming
// the lens to apply and any number of "incl" and "excl" children whose
// values are glob patterns. A file is transformed when it matches at least
// one incl pattern and no excl pattern.
//
// Before loading, everything under /augeas/files and /files is removed,
// whether modified or not.
func (a *Augeas) Load() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.guard("load", ""); err != nil {
		return err
	}
	if C.aug_load(a.handle) != 0 {
		return a.opErr("load", "", ErrLoad)
	}
	return nil
}
