package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"golang.org/x/text/language"

	"codeberg.org/snonux/tolgee-merge-namespaces/internal"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/report"
)

var (
	// ErrRootNotFound means the i18n root directory does not exist
	ErrRootNotFound = errors.New("i18n directory does not exist")
	// ErrRootUnreadable means the i18n root exists but cannot be listed
	ErrRootUnreadable = errors.New("i18n directory cannot be listed")
)

// Tree describes what was found under an i18n root
type Tree struct {
	Root string
	// Languages in first-seen order: root files first, then namespaces
	Languages []string
	// Namespaces are the immediate subdirectories of Root, sorted by name
	Namespaces []string
	// Problems holds recoverable failures met during discovery
	Problems error
}

// RootFile returns the path of the root document for lang
func (t *Tree) RootFile(lang string) string {
	return filepath.Join(t.Root, internal.TranslationFilename(lang))
}

// NamespaceDir returns the directory of namespace ns
func (t *Tree) NamespaceDir(ns string) string {
	return filepath.Join(t.Root, ns)
}

// NamespaceFile returns the path of the lang document inside namespace ns
func (t *Tree) NamespaceFile(ns, lang string) string {
	return filepath.Join(t.Root, ns, internal.TranslationFilename(lang))
}

// Empty reports whether no languages were found
func (t *Tree) Empty() bool {
	return len(t.Languages) == 0
}

// Discover lists the languages and namespaces under root.
//
// A missing or unlistable root is fatal and returned as an error wrapping
// ErrRootNotFound or ErrRootUnreadable. An unreadable namespace directory is
// reported, recorded in Tree.Problems and skipped.
func Discover(fsys afero.Fs, root string, r report.Reporter) (*Tree, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: not a directory", ErrRootUnreadable, root)
	}

	entries, err := afero.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
	}

	tree := &Tree{Root: root}
	seen := make(map[string]bool)
	add := func(lang string) {
		if lang == "" || seen[lang] {
			return
		}
		seen[lang] = true
		tree.Languages = append(tree.Languages, lang)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			tree.Namespaces = append(tree.Namespaces, entry.Name())
			continue
		}
		add(internal.LanguageFromFilename(entry.Name()))
	}

	for _, ns := range tree.Namespaces {
		dir := tree.NamespaceDir(ns)
		nsEntries, err := afero.ReadDir(fsys, dir)
		if err != nil {
			opErr := internal.NewOpError("read namespace directory", dir, err)
			r.Error("Error reading namespace directory", opErr, "namespace", ns)
			tree.Problems = multierr.Append(tree.Problems, opErr)
			continue
		}

		for _, entry := range nsEntries {
			if entry.IsDir() {
				continue
			}
			add(internal.LanguageFromFilename(entry.Name()))
		}
	}

	for _, lang := range tree.Languages {
		if _, err := language.Parse(lang); err != nil {
			r.Warn("Language code is not a valid BCP 47 tag, merging anyway", "lang", lang)
		}
	}

	r.Debug("Discovery finished", "languages", len(tree.Languages), "namespaces", len(tree.Namespaces))
	return tree, nil
}
