// Package seqio reads integer sequences in the judge input format and
// writes results.
//
// An input is a whitespace separated stream of tokens: an optional case
// count t, then for every case a length n followed by n integers.
package seqio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/caio/go-maxxor"
)

var (
	ErrNegativeCount = errors.New("negative count")
	ErrShortInput    = errors.New("input ended early")
	ErrMalformed     = errors.New("malformed integer")
)

// maxTokenSize bounds a single token; int64 needs at most 20 characters.
const maxTokenSize = 1 << 16

// maxPrealloc bounds the slice reserved for a declared length, so a
// bogus header cannot allocate huge amounts of memory up front.
const maxPrealloc = 1 << 16

type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) int64(what string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, errors.Wrapf(err, "reading %s", what)
		}
		return 0, errors.Wrapf(ErrShortInput, "expected %s at token %d", what, t.pos+1)
	}
	t.pos++

	tok := t.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%s at token %d (%q): %v", what, t.pos, tok, err)
	}
	return v, nil
}

func (t *tokenizer) count(what string) (int, error) {
	n, err := t.int64(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrNegativeCount, "%s at token %d is %d", what, t.pos, n)
	}
	if int64(int(n)) != n {
		return 0, errors.Wrapf(ErrMalformed, "%s at token %d is too large: %d", what, t.pos, n)
	}
	return int(n), nil
}

// ReadSequence reads a single case: a length n followed by n integers.
func ReadSequence(r io.Reader) ([]int64, error) {
	cases, err := ReadCases(r, false)
	if err != nil {
		return nil, err
	}
	return cases[0], nil
}

// ReadCases reads every case of an input. When multi is set the input
// starts with the number of cases, otherwise it holds exactly one case.
// Tokens after the last case are ignored.
func ReadCases(r io.Reader, multi bool) ([][]int64, error) {
	tok := newTokenizer(r)

	t := 1
	if multi {
		var err error
		if t, err = tok.count("case count"); err != nil {
			return nil, err
		}
	}

	cases := make([][]int64, 0, min(t, maxPrealloc))
	for c := 0; c < t; c++ {
		values, err := readCase(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "case #%d", c+1)
		}
		cases = append(cases, values)
	}
	return cases, nil
}

func readCase(tok *tokenizer) ([]int64, error) {
	n, err := tok.count("length")
	if err != nil {
		return nil, err
	}

	values := make([]int64, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v, err := tok.int64("value")
		if err != nil {
			return nil, errors.Wrapf(err, "value %d of %d", i+1, n)
		}
		values = append(values, v)
	}
	return values, nil
}

// WriteResult writes the result value on its own line. With span set the
// 0-based inclusive bounds of the witnessing subrange follow the value.
func WriteResult(w io.Writer, res maxxor.Result, span bool) error {
	buf := strconv.AppendInt(nil, res.Value, 10)
	if span {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(res.Start), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(res.End), 10)
	}
	buf = append(buf, '\n')

	_, err := w.Write(buf)
	return errors.Wrap(err, "writing result")
}

// WriteEmpty writes the result of an empty case: 0 on its own line.
func WriteEmpty(w io.Writer) error {
	_, err := io.WriteString(w, "0\n")
	return errors.Wrap(err, "writing result")
}

// WriteSequence writes values in the single case input format.
func WriteSequence(w io.Writer, values []int64) error {
	bw := bufio.NewWriter(w)

	buf := strconv.AppendInt(nil, int64(len(values)), 10)
	buf = append(buf, '\n')
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, v, 10)
		if len(buf) > 4096 {
			if _, err := bw.Write(buf); err != nil {
				return errors.Wrap(err, "writing sequence")
			}
			buf = buf[:0]
		}
	}
	buf = append(buf, '\n')

	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "writing sequence")
	}
	return errors.Wrap(bw.Flush(), "writing sequence")
}
