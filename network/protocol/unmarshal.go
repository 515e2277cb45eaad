/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package protocol

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalJSON decodes a lowercase or mixed-case quoted protocol name.
// An empty payload or empty string value decodes to NetworkEmpty without error.
func (n *NetworkProtocol) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		*n = NetworkEmpty
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	*n = Parse(s)
	return nil
}

// UnmarshalYAML decodes the scalar node's value as a protocol name.
func (n *NetworkProtocol) UnmarshalYAML(node *yaml.Node) error {
	*n = Parse(node.Value)
	return nil
}

// UnmarshalTOML decodes a TOML scalar (string or anything stringifiable) as a protocol name.
func (n *NetworkProtocol) UnmarshalTOML(v interface{}) error {
	switch t := v.(type) {
	case string:
		*n = Parse(t)
	default:
		*n = Parse(fmt.Sprintf("%v", t))
	}
	return nil
}
