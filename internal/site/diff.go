package site

import (
	"context"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// FileDiff is the change a run would make to one file.
type FileDiff struct {
	Path    string
	Created bool
	// Lines holds the line diff: each line prefixed by "+", "-" or " ".
	Lines string
}

func diffOutputs(ctx context.Context, rs *runState) error {
	for _, out := range rs.outputs {
		var old string
		exists, err := rs.store.Exists(ctx, out.Path)
		if err != nil {
			return readError(err, out.Path)
		}
		if exists {
			data, err := rs.store.Read(ctx, out.Path)
			if err != nil {
				return readError(err, out.Path)
			}
			old = string(data)
		}
		if exists && old == out.Content {
			rs.report.Unchanged++
			continue
		}
		rs.report.Diffs = append(rs.report.Diffs, FileDiff{
			Path:    out.Path,
			Created: !exists,
			Lines:   lineDiff(old, out.Content),
		})
		rs.logger.Debug("Would write navigation document", logfields.Path(out.Path), logfields.Source(string(out.Source)))
	}
	return nil
}

// lineDiff diffs two texts line by line.
func lineDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffEqual:
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
