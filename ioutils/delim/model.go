/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package delim

import (
	"bytes"
	"io"
	"sync"

	libsiz "github.com/nabbar/foundation/size"
)

const defaultChunkSize = 4096

// dlm is the internal implementation of the BufferDelim interface.
// It reads ahead into a plain byte buffer and scans it for the delimiter,
// rather than relying on bufio.Reader, so that maxPartSize enforcement and
// discard truncation can inspect and rewrite the buffer directly.
//
// Fields:
//   - i: the underlying io.ReadCloser that provides the input stream
//   - d: the delimiter rune used to separate data chunks
//   - s: the maximum part size (0 means unbounded)
//   - enforceMax: true once New was called with an explicit discard argument
//   - discard: if the max size is reached, discard overflow instead of
//     returning ErrBufferFull
//   - b: bytes already read from i but not yet handed out as a part
//   - pending: leftover bytes from a chunk that still need processing after
//     a discard truncation found the delimiter mid-chunk
type dlm struct {
	m sync.Mutex

	i io.ReadCloser
	d rune
	s libsiz.Size

	enforceMax bool
	discard    bool

	b       []byte
	pending []byte
}

// Delim returns the delimiter rune configured for this BufferDelim instance.
// This value is set during construction via New() and remains constant for the lifetime of the instance.
func (o *dlm) Delim() rune {
	o.m.Lock()
	defer o.m.Unlock()

	return o.d
}

// chunkSize picks how many bytes to request from the underlying reader on
// the next Read call.
func (o *dlm) chunkSize() int {
	if o.enforceMax && !o.discard && o.s > 0 {
		remaining := int(o.s) - len(o.b)
		if remaining <= 0 {
			remaining = 1
		}
		return remaining
	}

	if o.s > 0 {
		return o.s.Int()
	}

	return defaultChunkSize
}

// feedDiscard folds chunk into o.b under the discard+maxPartSize regime:
// bytes are appended only until o.b reaches s, after that they are dropped
// until the delimiter itself is seen, at which point the last retained byte
// is replaced by the delimiter. It reports whether the delimiter was found
// in chunk, and any bytes following it that still need to be processed.
func (o *dlm) feedDiscard(chunk []byte, delimB byte) (found bool, leftover []byte) {
	for idx, c := range chunk {
		if libsiz.Size(len(o.b)) < o.s {
			o.b = append(o.b, c)
		}

		if c == delimB {
			if o.s > 0 && libsiz.Size(len(o.b)) >= o.s {
				o.b[o.s-1] = delimB
			}
			return true, chunk[idx+1:]
		}
	}

	return false, nil
}

// nextPart scans/fills o.b until it can return one delimited part, a
// maxPartSize overflow (ErrBufferFull, non-discard mode), or a terminal
// error from the underlying reader (io.EOF included). Callers must hold o.m.
func (o *dlm) nextPart() ([]byte, error) {
	delimB := byte(o.d)

	for {
		if idx := bytes.IndexByte(o.b, delimB); idx >= 0 {
			part := o.b[:idx+1]
			o.b = o.b[idx+1:]
			return part, nil
		}

		if o.enforceMax && !o.discard && o.s > 0 && libsiz.Size(len(o.b)) >= o.s {
			part := o.b[:o.s]
			o.b = o.b[o.s:]
			return part, ErrBufferFull
		}

		var chunk []byte
		var rerr error

		switch {
		case len(o.pending) > 0:
			chunk = o.pending
			o.pending = nil
		case o.i != nil:
			buf := make([]byte, o.chunkSize())
			n, e := o.i.Read(buf)
			if n > 0 {
				chunk = buf[:n]
			}
			rerr = e
		default:
			rerr = io.EOF
		}

		if len(chunk) > 0 {
			if o.enforceMax && o.discard && o.s > 0 {
				found, leftover := o.feedDiscard(chunk, delimB)
				if found && len(leftover) > 0 {
					o.pending = leftover
				}
			} else {
				o.b = append(o.b, chunk...)
			}
		}

		if rerr != nil {
			if len(o.b) > 0 {
				part := o.b
				o.b = nil
				return part, rerr
			}
			return nil, rerr
		}
	}
}

// fill reads one more chunk from the underlying reader into o.b, bypassing
// discard/maxPartSize handling. Used internally by tests exercising the raw
// buffer-growth path.
func (o *dlm) fill() error {
	if o.i == nil {
		return ErrInstance
	}

	buf := make([]byte, o.chunkSize())
	n, err := o.i.Read(buf)
	if n > 0 {
		o.b = append(o.b, buf[:n]...)
	}

	return err
}

// readBuf drains whatever is currently in o.b into p without touching the
// underlying reader.
func (o *dlm) readBuf(p []byte) (int, error) {
	if len(o.b) == 0 {
		return 0, io.EOF
	}

	n := copy(p, o.b)
	o.b = o.b[n:]
	return n, nil
}
