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

package size

import (
	"reflect"
)

var sizeType = reflect.TypeOf(Size(0))

// ViperDecoderHook returns a mapstructure-compatible decode hook (registered
// via viper.DecodeHook/mapstructure.DecodeHookFunc) that converts strings and
// integer/float kinds into Size when the destination field's type is Size.
// Any other destination type, or a source value whose dynamic type doesn't
// match from, is passed through unchanged rather than erroring - mapstructure
// runs every registered hook against every field, so unrelated conversions
// must be harmless no-ops.
func ViperDecoderHook() func(reflect.Type, reflect.Type, interface{}) (interface{}, error) {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != sizeType {
			return data, nil
		}

		switch from.Kind() {
		case reflect.String:
			if v, ok := data.(string); ok {
				return Parse(v)
			}
		case reflect.Int:
			if v, ok := data.(int); ok {
				return ParseInt64(int64(v)), nil
			}
		case reflect.Int8:
			if v, ok := data.(int8); ok {
				return ParseInt64(int64(v)), nil
			}
		case reflect.Int16:
			if v, ok := data.(int16); ok {
				return ParseInt64(int64(v)), nil
			}
		case reflect.Int32:
			if v, ok := data.(int32); ok {
				return ParseInt64(int64(v)), nil
			}
		case reflect.Int64:
			if v, ok := data.(int64); ok {
				return ParseInt64(v), nil
			}
		case reflect.Uint:
			if v, ok := data.(uint); ok {
				return ParseUint64(uint64(v)), nil
			}
		case reflect.Uint8:
			if v, ok := data.(uint8); ok {
				return ParseUint64(uint64(v)), nil
			}
		case reflect.Uint16:
			if v, ok := data.(uint16); ok {
				return ParseUint64(uint64(v)), nil
			}
		case reflect.Uint32:
			if v, ok := data.(uint32); ok {
				return ParseUint64(uint64(v)), nil
			}
		case reflect.Uint64:
			if v, ok := data.(uint64); ok {
				return ParseUint64(v), nil
			}
		case reflect.Float32:
			if v, ok := data.(float32); ok {
				return ParseFloat64(float64(v)), nil
			}
		case reflect.Float64:
			if v, ok := data.(float64); ok {
				return ParseFloat64(v), nil
			}
		case reflect.Slice:
			if v, ok := data.([]byte); ok {
				return ParseByte(v)
			}
		}

		return data, nil
	}
}
