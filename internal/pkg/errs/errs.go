package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches a sentinel so callers can classify err with errors.Is while
// the full cause chain stays intact for logging. Join is used rather than
// cockroachdb's Mark: a Mark is only visible to cockroachdb's own Is, and
// the handlers and tests here classify with the stdlib.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Join(markErr, err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
