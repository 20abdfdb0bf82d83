package session

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"unicode"
)

// chunk is one Read result from the underlying input.
type chunk struct {
	b   []byte
	err error
}

// pumpReader moves the blocking reads of src onto a goroutine so that a
// pending read can be abandoned when ctx is done. Data read after the caller
// gave up is kept for the next Read.
type pumpReader struct {
	src  io.Reader
	ch   chan chunk
	stop chan struct{}
	once sync.Once
	halt sync.Once

	ctx     context.Context
	pending []byte
	err     error
}

func newPumpReader(src io.Reader) *pumpReader {
	return &pumpReader{
		src:  src,
		ch:   make(chan chunk),
		stop: make(chan struct{}),
		ctx:  context.Background(),
	}
}

func (p *pumpReader) pump() {
	for {
		buf := make([]byte, 4096)
		n, err := p.src.Read(buf)
		if n == 0 && err == nil {
			continue
		}
		select {
		case p.ch <- chunk{b: buf[:n], err: err}:
		case <-p.stop:
			return
		}
		if err != nil {
			return
		}
	}
}

// Close releases the pump goroutine once its current read returns.
func (p *pumpReader) Close() {
	p.halt.Do(func() { close(p.stop) })
}

func (p *pumpReader) Read(b []byte) (int, error) {
	if len(p.pending) > 0 {
		n := copy(b, p.pending)
		p.pending = p.pending[n:]
		return n, nil
	}
	if p.err != nil {
		return 0, p.err
	}

	p.once.Do(func() { go p.pump() })

	select {
	case <-p.stop:
		return 0, io.ErrClosedPipe
	case <-p.ctx.Done():
		return 0, p.ctx.Err()
	case c := <-p.ch:
		n := copy(b, c.b)
		p.pending = c.b[n:]
		p.err = c.err
		if n == 0 && c.err != nil {
			return 0, c.err
		}
		return n, nil
	}
}

// tokenReader mixes line-oriented and whitespace-token reads over one
// buffered input. Every read gives up when its ctx is done.
type tokenReader struct {
	src *pumpReader
	r   *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	src := newPumpReader(r)
	return &tokenReader{src: src, r: bufio.NewReader(src)}
}

// Close stops reading ahead. Later reads fail with io.ErrClosedPipe.
func (t *tokenReader) Close() {
	t.src.Close()
}

func (t *tokenReader) bind(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.src.ctx = ctx
	return nil
}

// Line returns the next line without its terminator. io.EOF is returned only
// when no bytes remain.
func (t *tokenReader) Line(ctx context.Context) (string, error) {
	if err := t.bind(ctx); err != nil {
		return "", err
	}

	line, err := t.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		} else {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Token skips leading whitespace, newlines included, and returns the next
// run of non-space characters. The delimiter after the token is left unread.
func (t *tokenReader) Token(ctx context.Context) (string, error) {
	if err := t.bind(ctx); err != nil {
		return "", err
	}

	for {
		r, _, err := t.r.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			if err := t.r.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
	}

	var sb strings.Builder
	for {
		r, _, err := t.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			return sb.String(), t.r.UnreadRune()
		}
		sb.WriteRune(r)
	}
}

// DiscardLine drops everything up to and including the next newline.
func (t *tokenReader) DiscardLine(ctx context.Context) error {
	if err := t.bind(ctx); err != nil {
		return err
	}

	_, err := t.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
