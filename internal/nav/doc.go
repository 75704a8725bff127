// Package nav derives navigation structure from a flat set of document paths.
//
// It builds three things, all in memory and without touching the filesystem:
//   - an AlphabeticalIndex grouping documents by the upper-cased initial of
//     their title,
//   - a DirectoryIndex grouping documents by containing directory and
//     recording the subdirectories of every ancestor,
//   - a breadcrumb trail per document (Breadcrumbs).
//
// Reading sources and writing the rendered indexes belong to the caller
// (see internal/site).
package nav
