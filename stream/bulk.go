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

package stream

import "io"

const initialReadAllCap = 512

// ReadLine reads from r one byte at a time up to and including the next '\n',
// stripping a preceding '\r' so both LF and CRLF line endings are handled
// uniformly. The delimiter itself is not included in the returned line.
//
// If EOF is reached with data already read but no terminating '\n', that data
// is returned alongside io.EOF, mirroring ioutils/delim's ReadBytes contract.
func ReadLine(r io.Reader) ([]byte, error) {
	var (
		line []byte
		b    [1]byte
	)

	for {
		n, err := r.Read(b[:])

		if n == 1 {
			if b[0] == '\n' {
				if len(line) > 0 && line[len(line)-1] == '\r' {
					line = line[:len(line)-1]
				}
				return line, nil
			}
			line = append(line, b[0])
		}

		if err != nil {
			return line, err
		}
	}
}

// ReadAll reads from r until EOF, growing its buffer geometrically (doubling
// capacity as needed, the same strategy as the standard library's io.ReadAll)
// rather than performing a single fixed-size read.
//
// Unlike io.ReadAll, a non-EOF error is returned alongside whatever data was
// read so far instead of being swallowed.
func ReadAll(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, initialReadAllCap)

	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}

		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]

		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return buf, err
		}
	}
}
