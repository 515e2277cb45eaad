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

package socket

// DefaultBufferSize is the default read/write scratch buffer size used by socket
// clients and servers when none is configured.
const DefaultBufferSize = 32 * 1024

// EOL is the line terminator used by ReadLine-style framing helpers.
const EOL = '\n'

// closedConnMsg is the exact error text net returns for reads/writes against an
// already-closed connection; this is an expected event at shutdown, not a failure.
const closedConnMsg = "use of closed network connection"

// ErrorFilter returns nil for a nil error or for the exact "use of closed network
// connection" error net produces on a closed socket, and returns err unchanged otherwise.
func ErrorFilter(err error) error {
	if err == nil {
		return nil
	}
	if err.Error() == closedConnMsg {
		return nil
	}
	return err
}
