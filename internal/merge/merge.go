package merge

import (
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"codeberg.org/snonux/tolgee-merge-namespaces/internal"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/discovery"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/report"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/translation"
)

// Outcome summarises the merge of one language
type Outcome struct {
	Language string
	// Namespaces whose document was merged, in merge order
	Namespaces []string
	// RootMerged is true when a valid root document was merged on top
	RootMerged bool
	// Keys is the number of keys in the written document
	Keys    int
	Written bool
	// Problems holds recoverable failures for this language
	Problems error
}

// Merger merges translation documents on a filesystem
type Merger struct {
	fsys     afero.Fs
	reporter report.Reporter
}

// NewMerger creates a Merger
func NewMerger(fsys afero.Fs, r report.Reporter) *Merger {
	return &Merger{fsys: fsys, reporter: r}
}

// MergeLanguage merges all documents for lang and overwrites the root document.
// Missing files are skipped silently; unreadable or malformed ones are
// reported and skipped. A failed write is reported in the outcome.
func (m *Merger) MergeLanguage(tree *discovery.Tree, lang string) Outcome {
	out := Outcome{Language: lang}
	merged := translation.NewDocument()

	m.reporter.Info("Processing language", "lang", lang)

	for _, ns := range tree.Namespaces {
		path := tree.NamespaceFile(ns, lang)
		doc, err := m.load(path, "namespace file")
		if err != nil {
			m.reporter.Error("Error reading namespace file", err, "lang", lang, "namespace", ns)
			out.Problems = multierr.Append(out.Problems, err)
			continue
		}
		if doc == nil {
			continue
		}

		merged.Merge(doc)
		out.Namespaces = append(out.Namespaces, ns)
		m.reporter.Info("Added translations from namespace", "lang", lang, "namespace", ns, "keys", doc.Len())
	}

	rootPath := tree.RootFile(lang)
	rootDoc, err := m.load(rootPath, "root file")
	switch {
	case err != nil:
		m.reporter.Error("Error reading root file", err, "lang", lang)
		out.Problems = multierr.Append(out.Problems, err)
	case rootDoc != nil:
		merged.Merge(rootDoc)
		out.RootMerged = true
		m.reporter.Info("Added translations from root file", "lang", lang, "keys", rootDoc.Len())
	}

	data, err := merged.Encode()
	if err == nil {
		err = afero.WriteFile(m.fsys, rootPath, data, 0644)
	}
	if err != nil {
		opErr := internal.NewOpError("write root file", rootPath, err)
		m.reporter.Error("Error writing root file", opErr, "lang", lang)
		out.Problems = multierr.Append(out.Problems, opErr)
		return out
	}

	out.Written = true
	out.Keys = merged.Len()
	m.reporter.Info("Merged translations written", "lang", lang, "path", rootPath, "keys", out.Keys)

	return out
}

// load reads and parses the document at path. It returns (nil, nil) when the
// file does not exist.
func (m *Merger) load(path, kind string) (*translation.Document, error) {
	exists, err := afero.Exists(m.fsys, path)
	if err != nil {
		return nil, internal.NewOpError("stat "+kind, path, err)
	}
	if !exists {
		m.reporter.Debug("No document, skipping", "path", path)
		return nil, nil
	}

	data, err := afero.ReadFile(m.fsys, path)
	if err != nil {
		return nil, internal.NewOpError("read "+kind, path, err)
	}

	doc, err := translation.Parse(data)
	if err != nil {
		return nil, internal.NewOpError("parse "+kind, path, err)
	}

	return doc, nil
}
