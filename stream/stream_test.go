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

package stream_test

import (
	"io"
	"os"

	libstm "github.com/nabbar/foundation/stream"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newTempFile() *os.File {
	f, err := os.CreateTemp("", "stream-*.bin")
	Expect(err).ToNot(HaveOccurred())
	return f
}

var _ = Describe("Stream", func() {
	var f *os.File

	BeforeEach(func() {
		f = newTempFile()
	})

	AfterEach(func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	})

	It("should write then read back the same bytes", func() {
		s := libstm.New(f)

		n, err := s.Write([]byte("hello"))
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(5))

		_, err = s.Seek(0, io.SeekStart)
		Expect(err).ToNot(HaveOccurred())

		buf := make([]byte, 5)
		n, err = s.Read(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(buf[:n])).To(Equal("hello"))
	})

	It("should report size without disturbing position", func() {
		s := libstm.New(f)

		_, err := s.Write([]byte("0123456789"))
		Expect(err).ToNot(HaveOccurred())

		_, err = s.Seek(3, io.SeekStart)
		Expect(err).ToNot(HaveOccurred())

		sz, err := s.Size()
		Expect(err).ToNot(HaveOccurred())
		Expect(sz).To(Equal(int64(10)))

		cur, err := s.Seek(0, io.SeekCurrent)
		Expect(err).ToNot(HaveOccurred())
		Expect(cur).To(Equal(int64(3)))
	})

	It("should flush without error when underlying type has no Flush method", func() {
		s := libstm.New(f)
		Expect(s.Flush()).ToNot(HaveOccurred())
	})
})
