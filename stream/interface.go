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

// Package stream provides a seekable, flushable read/write wrapper (Stream)
// together with endian-aware integer/float helpers, line splitting, and
// exponential-growth whole-stream reads, in the spirit of the underlying
// buffered-I/O packages of this module (ioutils/iowrapper, ioutils/delim).
package stream

import (
	"io"
	"sync"
)

// Flusher is implemented by underlying read-writers that buffer writes and
// need an explicit flush (e.g. bufio.Writer, os.File on some platforms).
// Stream.Flush delegates to it when present and is a no-op otherwise.
type Flusher interface {
	Flush() error
}

// Stream wraps an io.ReadWriteSeeker with a Flush/Size contract and is the
// argument type accepted by every helper in this package (ReadUint32BE,
// ReadLine, ReadAll, ...).
//
// All methods are safe for concurrent use; a single logical read/write/seek
// position is shared, so concurrent callers still serialize against each
// other the same way concurrent use of the wrapped io.ReadWriteSeeker would.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker

	// Flush flushes any buffered writes on the underlying read-writer, if
	// it implements Flusher. Returns nil when there is nothing to flush.
	Flush() error

	// Size reports the total size of the underlying stream without
	// disturbing the current read/write position.
	Size() (int64, error)
}

// New wraps rw as a Stream.
func New(rw io.ReadWriteSeeker) Stream {
	return &strm{rw: rw}
}

type strm struct {
	m  sync.Mutex
	rw io.ReadWriteSeeker
}

func (s *strm) Read(p []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()

	return s.rw.Read(p)
}

func (s *strm) Write(p []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()

	return s.rw.Write(p)
}

func (s *strm) Seek(offset int64, whence int) (int64, error) {
	s.m.Lock()
	defer s.m.Unlock()

	return s.rw.Seek(offset, whence)
}

func (s *strm) Flush() error {
	s.m.Lock()
	defer s.m.Unlock()

	if f, ok := s.rw.(Flusher); ok {
		return f.Flush()
	}

	return nil
}

func (s *strm) Size() (int64, error) {
	s.m.Lock()
	defer s.m.Unlock()

	cur, err := s.rw.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	end, err := s.rw.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	if _, err = s.rw.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}

	return end, nil
}
