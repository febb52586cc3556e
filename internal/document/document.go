package document

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FileError reports a path that could not be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// segment is one display line plus the number of source bytes it covers.
// The line terminator is charged to the last segment of its source line,
// so summing Bytes over all segments reproduces the file size exactly.
type segment struct {
	text  string
	bytes int64
}

// Page is one screenful of display lines.
type Page struct {
	Lines []string
	Bytes int64 // source bytes consumed by these lines
	EOF   bool  // nothing remains after this page
}

// Document is a forward-only paged view of a text file.
type Document struct {
	path  string
	size  int64
	f     *os.File
	r     *bufio.Reader
	carry []segment // wrapped but not yet shown
	eof   bool      // underlying reader exhausted
}

// Open opens path for paging. Missing, unreadable or non-regular paths
// yield a *FileError.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &FileError{Path: path, Err: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, &FileError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	return &Document{
		path: path,
		size: info.Size(),
		f:    f,
		r:    bufio.NewReader(f),
	}, nil
}

func (d *Document) Path() string { return d.path }

// Size returns the total file size in bytes.
func (d *Document) Size() int64 { return d.size }

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	return err
}

// NextPage reads up to rows display lines of at most cols cells each.
// Source lines wider than cols are hard-wrapped; a line split by the
// page boundary is carried into the next call. At end of file it
// returns whatever remains, possibly an empty page.
func (d *Document) NextPage(rows, cols int) (Page, error) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	var page Page
	for len(page.Lines) < rows {
		if len(d.carry) == 0 {
			if d.eof {
				break
			}
			if err := d.fill(cols); err != nil {
				return Page{}, &FileError{Path: d.path, Err: err}
			}
			continue
		}
		seg := d.carry[0]
		d.carry = d.carry[1:]
		page.Lines = append(page.Lines, seg.text)
		page.Bytes += seg.bytes
	}

	// A full page can drain the carry with the reader sitting exactly
	// at end of file; peek so the final page reports EOF.
	if !d.eof && len(d.carry) == 0 {
		if _, err := d.r.Peek(1); err == io.EOF {
			d.eof = true
		}
	}

	page.EOF = d.eof && len(d.carry) == 0
	return page, nil
}

// fill reads one source line and appends its wrapped segments to the
// carry buffer.
func (d *Document) fill(cols int) error {
	line, err := d.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	if err == io.EOF {
		d.eof = true
		if line == "" {
			return nil
		}
	}

	text := strings.TrimRight(line, "\r\n")
	term := int64(len(line) - len(text))
	d.carry = append(d.carry, wrapLine(text, term, cols)...)
	return nil
}

// wrapLine hard-wraps one source line at cols display cells. term is
// the byte length of the line terminator, charged to the last segment.
func wrapLine(text string, term int64, cols int) []segment {
	var segs []segment
	var b strings.Builder
	width := 0

	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		if width+w > cols {
			segs = append(segs, segment{text: b.String(), bytes: int64(b.Len())})
			b.Reset()
			width = 0
		}
		b.WriteRune(ru)
		width += w
	}

	segs = append(segs, segment{text: b.String(), bytes: int64(b.Len()) + term})
	return segs
}
