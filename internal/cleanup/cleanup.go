package cleanup

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"codeberg.org/snonux/tolgee-merge-namespaces/internal"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/discovery"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/report"
)

// Summary lists what cleanup changed
type Summary struct {
	FilesRemoved []string
	DirsRemoved  []string
	// DirsKept still hold non-translation files
	DirsKept []string
	// Missing namespace directories were gone before cleanup reached them
	Missing  []string
	Problems error
}

// Cleaner deletes namespace translation files
type Cleaner struct {
	fsys     afero.Fs
	reporter report.Reporter
}

// NewCleaner creates a Cleaner
func NewCleaner(fsys afero.Fs, r report.Reporter) *Cleaner {
	return &Cleaner{fsys: fsys, reporter: r}
}

// Clean removes the translation files of every namespace in tree
func (c *Cleaner) Clean(tree *discovery.Tree) Summary {
	var sum Summary

	if len(tree.Namespaces) == 0 {
		c.reporter.Info("No namespace directories found. Nothing to clean up.")
		return sum
	}

	c.reporter.Info("Removing namespace files", "namespaces", len(tree.Namespaces))
	for _, ns := range tree.Namespaces {
		c.cleanNamespace(tree.NamespaceDir(ns), &sum)
	}

	return sum
}

func (c *Cleaner) cleanNamespace(dir string, sum *Summary) {
	exists, err := afero.DirExists(c.fsys, dir)
	if err != nil {
		c.fail(sum, "Error checking namespace directory", internal.NewOpError("stat namespace directory", dir, err))
		return
	}
	if !exists {
		c.reporter.Info("Namespace directory no longer exists, skipping", "dir", dir)
		sum.Missing = append(sum.Missing, dir)
		return
	}

	entries, err := afero.ReadDir(c.fsys, dir)
	if err != nil {
		c.fail(sum, "Error reading namespace directory", internal.NewOpError("read namespace directory", dir, err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !internal.IsTranslationFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := c.fsys.Remove(path); err != nil {
			c.fail(sum, "Error removing file", internal.NewOpError("remove file", path, err))
			continue
		}
		sum.FilesRemoved = append(sum.FilesRemoved, path)
		c.reporter.Info("Removed file", "path", path)
	}

	remaining, err := afero.ReadDir(c.fsys, dir)
	if err != nil {
		c.fail(sum, "Error checking directory contents", internal.NewOpError("check directory contents", dir, err))
		return
	}
	if len(remaining) > 0 {
		c.reporter.Info("Directory not empty, skipping removal", "dir", dir, "entries", len(remaining))
		sum.DirsKept = append(sum.DirsKept, dir)
		return
	}

	if err := c.fsys.Remove(dir); err != nil {
		c.fail(sum, "Error removing directory", internal.NewOpError("remove directory", dir, err))
		return
	}
	sum.DirsRemoved = append(sum.DirsRemoved, dir)
	c.reporter.Info("Removed empty directory", "dir", dir)
}

func (c *Cleaner) fail(sum *Summary, msg string, err *internal.OpError) {
	c.reporter.Error(msg, err)
	sum.Problems = multierr.Append(sum.Problems, err)
}
