// Package site runs a navigation generation pass over a content root.
//
// A run moves through fixed stages: scan the root for documents, build the
// alphabetical and directory indexes, read author-provided directory index
// overrides, render every output in memory and finally write the outputs.
// Nothing is written until every output has rendered, and each output is
// replaced atomically, so a failed run leaves previously generated files
// intact. The breadcrumb trail of a single page is produced separately by
// Generator.ProcessPage.
package site
