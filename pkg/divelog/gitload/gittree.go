package gitload

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Fatal conditions. Any of these aborts the whole load; everything else is
// reported per-entry and the walk continues.
var (
	// ErrRepoOpen indicates the repository could not be opened.
	ErrRepoOpen = errors.New("unable to open git repository")

	// ErrBranchResolve indicates the branch could not be looked up.
	ErrBranchResolve = errors.New("unable to look up branch")

	// ErrTreePeel indicates the branch could not be peeled to a tree.
	ErrTreePeel = errors.New("could not look up tree of branch")
)

// resolveTree opens the repository at loc and peels the requested branch
// (or HEAD when the location names none) down to its root tree. It returns
// the tree and the commit hash it belongs to.
func resolveTree(loc Location) (*object.Tree, plumbing.Hash, error) {
	repo, err := git.PlainOpen(loc.Path)
	if err != nil {
		return nil, plumbing.ZeroHash, fmt.Errorf("%w at %q: %v", ErrRepoOpen, loc.Path, err)
	}

	var ref *plumbing.Reference
	if loc.Branch == "" {
		ref, err = repo.Head()
	} else {
		ref, err = repo.Reference(plumbing.NewBranchReferenceName(loc.Branch), true)
	}
	if err != nil {
		return nil, plumbing.ZeroHash, fmt.Errorf("%w %q: %v", ErrBranchResolve, loc.Branch, err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, plumbing.ZeroHash, fmt.Errorf("%w %q: %v", ErrTreePeel, loc.Branch, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, plumbing.ZeroHash, fmt.Errorf("%w %q: %v", ErrTreePeel, loc.Branch, err)
	}

	return tree, commit.Hash, nil
}

// gitTree adapts a go-git object tree to the loader's Tree interface.
type gitTree struct {
	tree *object.Tree
}

func (t gitTree) Entries() []Entry {
	entries := make([]Entry, 0, len(t.tree.Entries))
	for i := range t.tree.Entries {
		entries = append(entries, gitEntry{tree: t.tree, entry: &t.tree.Entries[i]})
	}
	return entries
}

// gitEntry adapts a single go-git tree entry.
type gitEntry struct {
	tree  *object.Tree
	entry *object.TreeEntry
}

func (e gitEntry) Name() string { return e.entry.Name }

func (e gitEntry) IsDir() bool { return e.entry.Mode == filemode.Dir }

func (e gitEntry) Tree() (Tree, error) {
	sub, err := e.tree.Tree(e.entry.Name)
	if err != nil {
		return nil, err
	}
	return gitTree{tree: sub}, nil
}

func (e gitEntry) Content() ([]byte, error) {
	file, err := e.tree.TreeEntryFile(e.entry)
	if err != nil {
		return nil, err
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, err
	}
	return []byte(contents), nil
}
