// Package ingest reads whitespace-separated integer streams: a header value
// followed by pairs, the input format of the batch drivers.
package ingest

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pingcap/errors"
)

var (
	// ErrMissingHeader indicates an input with no tokens at all.
	ErrMissingHeader = errors.New("ingest: missing header value")
	// ErrBadToken indicates a token that is not a base-10 integer.
	ErrBadToken = errors.New("ingest: token is not an integer")
	// ErrDanglingToken indicates an odd number of values after the header.
	ErrDanglingToken = errors.New("ingest: last pair is incomplete")
)

// maxToken bounds a single token; integers never come close.
const maxToken = 1 << 16

// Reader tokenizes an input stream into integers.
type Reader struct {
	sc     *bufio.Scanner
	tokens int
}

// NewReader returns a Reader over r. Tokens are separated by any run of
// Unicode white space, line breaks included.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxToken)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Tokens returns the number of tokens consumed so far.
func (r *Reader) Tokens() int {
	return r.tokens
}

// Int returns the next integer. At a clean end of input it returns io.EOF
// unwrapped, so callers may compare with ==.
func (r *Reader) Int() (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, errors.Annotatef(err, "ingest: after token %d", r.tokens)
		}

		return 0, io.EOF
	}
	r.tokens++
	text := r.sc.Text()
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Annotatef(ErrBadToken, "token %d %q", r.tokens, text)
	}

	return v, nil
}

// Header reads the leading value, typically the universe or grid size.
func (r *Reader) Header() (int, error) {
	v, err := r.Int()
	if err == io.EOF {
		return 0, errors.Trace(ErrMissingHeader)
	}

	return v, err
}

// Pair reads the next two integers. It returns io.EOF when the input ends
// between pairs and ErrDanglingToken when it ends in the middle of one.
func (r *Reader) Pair() (p, q int, err error) {
	if p, err = r.Int(); err != nil {
		return 0, 0, err
	}
	q, err = r.Int()
	if err == io.EOF {
		return 0, 0, errors.Annotatef(ErrDanglingToken, "token %d", r.tokens)
	}
	if err != nil {
		return 0, 0, err
	}

	return p, q, nil
}
