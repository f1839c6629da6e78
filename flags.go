package augeas

// Flag is a bitmask of options passed to New. The values mirror the
// aug_flags enumeration of the native library.
type Flag uint

// None requests the default behavior: overwrite changed files on Save and
// load all files on initialization.
const None Flag = 0

const (
	// SaveBackup keeps the original of every changed file as a sibling
	// with the extension ".augsave" before overwriting it.
	SaveBackup Flag = 1 << iota
	// SaveNewFile writes changes to a sibling with the extension
	// ".augnew" and leaves the original file untouched. Takes precedence
	// over SaveBackup.
	SaveNewFile
	// TypeCheck typechecks lenses during initialization. This is
	// expensive and mainly useful when developing lenses.
	TypeCheck
	// NoStdinc skips the standard module search directories. Modules are
	// then found only on the explicit load path.
	NoStdinc
	// SaveNoop makes Save record which files would change under
	// /augeas/events/saved without touching any of them.
	SaveNoop
	// NoLoad skips loading files into the tree during initialization;
	// call Load to load them later.
	NoLoad
	// NoModlAutoload skips both loading modules and files during
	// initialization.
	NoModlAutoload
	// EnableSpan records the position in the source files of every node,
	// making Span available. Loading is slightly slower with spans on.
	EnableSpan
)
