package ui

import (
	"bytes"
	"io"
	"strings"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/ui/styles"
)

// LineWriter passes every complete line written to it through a format
// function before writing it to the underlying writer.
type LineWriter struct {
	w      io.Writer
	format func(string) string
	buf    []byte
}

// NewLineWriter returns a LineWriter. A nil format writes lines unchanged.
func NewLineWriter(w io.Writer, format func(string) string) *LineWriter {
	return &LineWriter{w: w, format: format}
}

// NewFlagWriter colors flag lines ("pkg flag -flag ?flag") when color is set.
func NewFlagWriter(w io.Writer, color bool) *LineWriter {
	if !color {
		return NewLineWriter(w, nil)
	}
	return NewLineWriter(w, FormatFlagLine)
}

// NewWarningWriter renders warning lines in the warning style when color is set.
func NewWarningWriter(w io.Writer, color bool) *LineWriter {
	if !color {
		return NewLineWriter(w, nil)
	}
	return NewLineWriter(w, func(line string) string {
		return styles.Render(styles.Warning, line)
	})
}

func (lw *LineWriter) Write(p []byte) (int, error) {
	lw.buf = append(lw.buf, p...)
	for {
		i := bytes.IndexByte(lw.buf, '\n')
		if i < 0 {
			break
		}
		line := string(lw.buf[:i])
		lw.buf = lw.buf[i+1:]
		if err := lw.writeLine(line + "\n"); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Flush writes a trailing incomplete line, if any.
func (lw *LineWriter) Flush() error {
	if len(lw.buf) == 0 {
		return nil
	}
	line := string(lw.buf)
	lw.buf = nil
	return lw.writeLine(line)
}

func (lw *LineWriter) writeLine(line string) error {
	if lw.format != nil {
		text, nl := strings.CutSuffix(line, "\n")
		line = lw.format(text)
		if nl {
			line += "\n"
		}
	}
	_, err := io.WriteString(lw.w, line)
	return err
}

// FormatFlagLine styles a "pkg flag -flag ?flag" line.
func FormatFlagLine(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return line
	}

	out := make([]string, len(fields))
	out[0] = styles.Render(styles.Package, fields[0])
	for i, tok := range fields[1:] {
		switch {
		case strings.HasPrefix(tok, "-"):
			out[i+1] = styles.Render(styles.FlagOff, tok)
		case strings.HasPrefix(tok, "?"):
			out[i+1] = styles.Render(styles.Unknown, tok)
		default:
			out[i+1] = styles.Render(styles.FlagOn, tok)
		}
	}
	return strings.Join(out, " ")
}

// FormatError renders err for the terminal. pkgflag errors show their
// message without the code prefix, led by the offending token when known.
func FormatError(err error) string {
	msg := errors.UserMessage(err)
	if pe, ok := errors.AsPkgflagError(err); ok {
		if pe.Wrapped != nil {
			msg += ": " + pe.Wrapped.Error()
		}
		if token, ok := pe.Details["token"].(string); ok && token != "" {
			msg = token + ": " + msg
		}
	}
	return styles.Render(styles.Error, "Error: "+msg)
}
