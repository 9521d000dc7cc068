// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"

	"github.com/hhrutter/lzw"
)

// hexDecodeReader decodes an ASCIIHexDecode stream: pairs of hex digits
// up to a terminating '>'. Whitespace between digits is ignored, and a
// trailing unpaired digit is treated as if followed by a '0'.
type hexDecodeReader struct {
	src  *bufio.Reader
	done bool
	pend []byte
}

func newHexDecodeReader(r io.Reader) io.Reader {
	return &hexDecodeReader{src: bufio.NewReader(r)}
}

func (r *hexDecodeReader) Read(b []byte) (int, error) {
	n := 0
	for n < len(b) {
		if len(r.pend) > 0 {
			m := copy(b[n:], r.pend)
			n += m
			r.pend = r.pend[m:]
			continue
		}
		if r.done {
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		}
		hi, lo, ok := r.nextPair()
		if !ok {
			r.done = true
			continue
		}
		r.pend = []byte{hi<<4 | lo}
	}
	return n, nil
}

func (r *hexDecodeReader) nextPair() (hi, lo byte, ok bool) {
	var digits [2]byte
	got := 0
	for got < 2 {
		c, err := r.src.ReadByte()
		if err != nil {
			if got == 0 {
				return 0, 0, false
			}
			digits[1] = 0
			got = 2
			break
		}
		if c == '>' {
			if got == 0 {
				return 0, 0, false
			}
			digits[1] = 0
			got = 2
			break
		}
		if isSpace(c) {
			continue
		}
		v := unhex(c)
		if v < 0 {
			continue
		}
		digits[got] = byte(v)
		got++
	}
	return digits[0], digits[1], true
}

// runLengthReader decodes a RunLengthDecode stream: a length byte n
// followed by either n+1 literal bytes (n < 128) or a single byte
// repeated 257-n times (n > 128), terminated by the byte 0x80.
type runLengthReader struct {
	src  *bufio.Reader
	done bool
	pend []byte
}

func newRunLengthReader(r io.Reader) io.Reader {
	return &runLengthReader{src: bufio.NewReader(r)}
}

func (r *runLengthReader) Read(b []byte) (int, error) {
	n := 0
	for n < len(b) {
		if len(r.pend) > 0 {
			m := copy(b[n:], r.pend)
			n += m
			r.pend = r.pend[m:]
			continue
		}
		if r.done {
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		}
		length, err := r.src.ReadByte()
		if err != nil {
			return n, &FilterError{Name: "RunLengthDecode", Cause: io.ErrUnexpectedEOF}
		}
		if length == 0x80 {
			r.done = true
			continue
		}
		if length < 0x80 {
			count := int(length) + 1
			chunk := make([]byte, count)
			if _, err := io.ReadFull(r.src, chunk); err != nil {
				return n, &FilterError{Name: "RunLengthDecode", Cause: err}
			}
			r.pend = chunk
			continue
		}
		count := 257 - int(length)
		c, err := r.src.ReadByte()
		if err != nil {
			return n, &FilterError{Name: "RunLengthDecode", Cause: err}
		}
		r.pend = bytes.Repeat([]byte{c}, count)
	}
	return n, nil
}

// lzwDecodeReader decodes an LZWDecode stream via hhrutter/lzw,
// honouring /EarlyChange (default 1). It does no predictor work of its
// own: applyFilter wraps its output in a pngUpReader for /Predictor 12.
func lzwDecodeReader(rd io.Reader, param Value) io.Reader {
	earlyChange := true
	if ec := param.Key("EarlyChange"); ec.Kind() != Null {
		earlyChange = ec.Int64() != 0
	}
	rc := lzw.NewReader(rd, earlyChange)
	data, err := ioutil.ReadAll(rc)
	rc.Close()
	if err != nil {
		return &errReader{err: &FilterError{Name: "LZWDecode", Cause: err}}
	}
	return bytes.NewReader(data)
}

type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}
