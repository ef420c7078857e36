package gitload

// Tree is the minimal tree surface the loader walks. Production trees are
// backed by a go-git object tree; tests supply in-memory fakes.
type Tree interface {
	// Entries returns the tree's entries in storage order.
	Entries() []Entry
}

// Entry is a single directory or file supplied by the tree. Entries are
// transient; the loader never holds one beyond the current visit.
type Entry interface {
	// Name is the entry's bare name.
	Name() string

	// IsDir reports whether the entry is a directory.
	IsDir() bool

	// Tree returns the entry's subtree. Directories only.
	Tree() (Tree, error)

	// Content reads the entry's payload from the object store. Files
	// only; the read is lazy and happens at most once per dispatch.
	Content() ([]byte, error)
}
