/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

import "io"

// Reader returns the BufferDelim itself as an io.ReadCloser.
// This allows the BufferDelim to be used wherever an io.ReadCloser is expected.
//
// The returned reader respects the delimiter configuration and will read data
// in delimiter-separated chunks when using the Read method.
func (o *dlm) Reader() io.ReadCloser {
	return o
}

// Copy reads data from the BufferDelim and writes it to w until EOF or an error occurs.
// It returns the total number of bytes written and any write error encountered.
//
// Copy is a convenience method that delegates to WriteTo(w).
// The data is read and written in chunks delimited by the configured delimiter character.
// Each chunk includes the delimiter in the written data.
//
// Returns:
//   - n: Total number of bytes successfully written to w
//   - err: The first error encountered (io.EOF when all data has been read and written)
//
// Example:
//
//	bd := delim.New(inputFile, '\n', 0)
//	defer bd.Close()
//	written, err := bd.Copy(outputFile)
//	if err != nil && err != io.EOF {
//	    log.Fatal(err)
//	}
func (o *dlm) Copy(w io.Writer) (n int64, err error) {
	return o.WriteTo(w)
}

// Read reads data up to and including the next delimiter into p.
// It implements the io.Reader interface.
//
// Read returns the number of bytes read into p and any error encountered.
// The data includes the delimiter character if one was found.
//
// If the buffer p is too small to hold the delimited chunk, the excess bytes
// are dropped; only len(p) bytes are copied. Callers needing the whole chunk
// should use ReadBytes instead.
//
// Returns:
//   - n: Number of bytes read (including the delimiter if present)
//   - err: Any error encountered (io.EOF when end of stream is reached, ErrInstance if closed)
//
// Behavior:
//   - If a delimiter is found, returns the data up to and including it
//   - If EOF is reached before a delimiter, returns remaining data with io.EOF
//   - If the instance is closed or invalid, returns ErrInstance
//
// Example:
//
//	buf := make([]byte, 100)
//	n, err := bd.Read(buf)
//	if err != nil && err != io.EOF {
//	    log.Fatal(err)
//	}
//	data := buf[:n]  // data includes the delimiter
func (o *dlm) Read(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()

	if o.i == nil {
		return 0, ErrInstance
	}

	part, e := o.nextPart()
	n = copy(p, part)

	return n, e
}

// UnRead returns the data currently buffered internally that has not yet
// been consumed.
//
// This method is useful for peeking at upcoming data without consuming it
// from the underlying stream. The returned data represents what has already
// been read ahead into the buffer but not yet returned by Read or ReadBytes.
//
// Returns:
//   - []byte: The buffered data, or nil if no data is buffered
//   - error: ErrInstance if the BufferDelim is closed or invalid, io.EOF if
//     nothing is buffered, nil otherwise
//
// Note: Calling UnRead drains the buffered data, so subsequent UnRead calls
// will return different data (or io.EOF) unless more data has been buffered.
//
// Example:
//
//	// Peek at buffered data without fully reading a delimited chunk
//	buffered, err := bd.UnRead()
//	if err != nil && err != io.EOF {
//	    log.Fatal(err)
//	}
//	if len(buffered) > 0 {
//	    fmt.Printf("Next %d bytes: %s\n", len(buffered), buffered)
//	}
func (o *dlm) UnRead() ([]byte, error) {
	o.m.Lock()
	defer o.m.Unlock()

	if o.i == nil {
		return nil, ErrInstance
	}

	if len(o.b) == 0 {
		return nil, io.EOF
	}

	b := o.b
	o.b = nil

	return b, nil
}

// ReadBytes reads until the first occurrence of the delimiter in the input,
// returning a slice containing the data up to and including the delimiter.
//
// Returns:
//   - []byte: A slice containing the data read, including the delimiter if found
//   - error: io.EOF if end of stream reached, ErrInstance if closed,
//     ErrBufferFull if a part exceeds maxPartSize without discard, or any read error
//
// Behavior:
//   - If the delimiter is found, returns all data up to and including it
//   - If EOF is reached before finding a delimiter, returns the remaining data with io.EOF
//   - If maxPartSize is configured and exceeded, the part is truncated to
//     maxPartSize-1 bytes plus the delimiter; with discard disabled, ErrBufferFull
//     is also returned
//   - Returns ErrInstance if the BufferDelim has been closed
//
// Example:
//
//	// Read lines from a file
//	for {
//	    line, err := bd.ReadBytes()
//	    if err == io.EOF {
//	        if len(line) > 0 {
//	            processLine(line)  // Process last line without delimiter
//	        }
//	        break
//	    }
//	    if err != nil && err != delim.ErrBufferFull {
//	        log.Fatal(err)
//	    }
//	    processLine(line)  // line includes '\n'
//	}
func (o *dlm) ReadBytes() ([]byte, error) {
	o.m.Lock()
	defer o.m.Unlock()

	if o.i == nil {
		return nil, ErrInstance
	}

	return o.nextPart()
}

// Close closes the BufferDelim and releases associated resources.
// It implements the io.Closer interface.
//
// After Close is called, all subsequent read/write operations on the
// BufferDelim will return ErrInstance. Calling Close a second time panics,
// since the underlying reader has already been released.
//
// Returns:
//   - error: Any error from closing the underlying reader, or nil on success
//
// Example:
//
//	bd := delim.New(file, '\n', 0)
//	defer bd.Close()  // Ensure resources are released
//
//	// Use bd...
func (o *dlm) Close() error {
	o.m.Lock()
	defer o.m.Unlock()

	c := o.i
	o.i = nil
	o.b = nil
	o.pending = nil

	return c.Close()
}

// WriteTo reads data from the BufferDelim and writes it to w until EOF or an error occurs.
// It implements the io.WriterTo interface.
//
// WriteTo reads the input in delimiter-separated chunks and writes each chunk (including
// the delimiter) to w. This continues until the end of the input stream is reached.
//
// The method handles both read and write errors appropriately:
//   - If a write error occurs, it stops immediately and returns the write error
//   - ErrBufferFull from a truncated part does not stop the copy; the truncated
//     part is written and reading continues
//   - Any other read error (including io.EOF) is returned after writing any
//     remaining buffered data
//
// Returns:
//   - n: Total number of bytes written to w
//   - err: io.EOF when all data has been successfully written, or the first error encountered
//
// Example:
//
//	// Copy all data from input to output, respecting delimiters
//	bd := delim.New(inputFile, '\n', 64*size.KiB)
//	defer bd.Close()
//
//	written, err := bd.WriteTo(outputFile)
//	if err != nil && err != io.EOF {
//	    log.Fatalf("Failed after writing %d bytes: %v", written, err)
//	}
//	fmt.Printf("Successfully wrote %d bytes\n", written)
func (o *dlm) WriteTo(w io.Writer) (n int64, err error) {
	o.m.Lock()
	defer o.m.Unlock()

	if o.i == nil {
		return 0, ErrInstance
	}

	for {
		var part []byte
		part, err = o.nextPart()

		if len(part) > 0 {
			i, werr := w.Write(part)
			n += int64(i)

			if werr != nil {
				return n, werr
			}
		}

		if err == ErrBufferFull {
			continue
		}

		if err != nil {
			return n, err
		}
	}
}
