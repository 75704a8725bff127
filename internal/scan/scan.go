// Package scan enumerates the content documents below a root directory.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

var (
	// ErrRootNotFound indicates the configured root does not exist or is not a directory.
	ErrRootNotFound = errors.New("content root not found")

	// ErrWalkFailed indicates traversal of the content root failed.
	ErrWalkFailed = errors.New("content root walk failed")
)

// DefaultExtensions are the file extensions treated as documents.
var DefaultExtensions = []string{".md"}

// Options control which files count as documents.
type Options struct {
	// Root is the directory scanned; returned paths are relative to it.
	Root string
	// Extensions lists document file extensions (case-insensitive).
	Extensions []string
	// Ignore holds gitignore-style patterns relative to Root.
	Ignore []string
	// SummaryFilename is excluded at the root.
	SummaryFilename string
	// IndexFilename is excluded in every directory: those files are outputs.
	IndexFilename string
}

// Scanner walks a content root.
type Scanner struct {
	opts    Options
	matcher gitignore.Matcher
}

// New compiles the ignore patterns in opts.
func New(opts Options) *Scanner {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	patterns := make([]gitignore.Pattern, 0, len(opts.Ignore))
	for _, raw := range opts.Ignore {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(raw, nil))
	}
	return &Scanner{opts: opts, matcher: gitignore.NewMatcher(patterns)}
}

// Scan returns the slash-separated paths of all documents below the root,
// sorted.
func (s *Scanner) Scan() ([]string, error) {
	root := s.opts.Root
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s is not a directory", root)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRootNotFound, root, err)
	}

	var found []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if s.Ignored(rel, d.IsDir()) {
			slog.Debug("Ignoring path", logfields.Path(rel))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !s.isDocument(rel) {
			return nil
		}
		found = append(found, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWalkFailed, root, err)
	}

	slices.Sort(found)
	slog.Debug("Scanned content root", logfields.Path(root), logfields.Count(len(found)))
	return found, nil
}

// Ignored reports whether the slash-separated relative path matches an
// ignore pattern.
func (s *Scanner) Ignored(rel string, isDir bool) bool {
	return s.matcher.Match(strings.Split(rel, "/"), isDir)
}

func (s *Scanner) isDocument(rel string) bool {
	name := rel[strings.LastIndex(rel, "/")+1:]
	if s.opts.IndexFilename != "" && name == s.opts.IndexFilename {
		return false
	}
	if s.opts.SummaryFilename != "" && rel == s.opts.SummaryFilename {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range s.opts.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
