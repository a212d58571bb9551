package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/zjrosen/extedit/internal/app"
	"github.com/zjrosen/extedit/internal/fileutil"
	"github.com/zjrosen/extedit/internal/log"
)

// output controls where an accepted edit goes.
type output struct {
	path  string // file being edited, empty for --value
	write bool   // write back to path instead of stdout
	diff  bool   // print a diff to stderr
}

// readInput returns the text to edit. A file that does not exist yet starts
// empty; the value flag is only used when no file is given.
//
// Input must be valid UTF-8: the field edits runes, so invalid bytes would
// come back as U+FFFD and the file would be rewritten on accept.
func readInput(path, value string) (string, error) {
	if path == "" {
		if !utf8.ValidString(value) {
			return "", errors.New("--value is not valid UTF-8")
		}
		return value, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8", path)
	}
	return string(data), nil
}

// writeResult sends the accepted text to the file or stdout.
func writeResult(stdout, stderr io.Writer, out output, original, result string) error {
	if out.diff {
		added, removed := app.DiffStats(original, result)
		_, _ = fmt.Fprintln(stderr, app.RenderDiff(original, result))
		_, _ = fmt.Fprintf(stderr, "+%d -%d\n", added, removed)
	}

	if out.write {
		mode := fs.FileMode(0o644)
		if info, err := os.Stat(out.path); err == nil {
			mode = info.Mode().Perm()
		}
		if err := fileutil.WriteAtomic(out.path, []byte(result), mode); err != nil {
			log.ErrorErr(log.CatApp, "Failed to write result", err, "path", out.path)
			return fmt.Errorf("writing %s: %w", out.path, err)
		}
		log.Info(log.CatApp, "Wrote result", "path", out.path, "len", len(result))
		return nil
	}

	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	_, err := io.WriteString(stdout, result)
	return err
}
