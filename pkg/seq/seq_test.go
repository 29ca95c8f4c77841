// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package seq_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/seqbuf/pkg/seq"
)

// render converts a byte buffer to a string for assertions.
func render(b *seq.Buffer[byte]) string {
	return string(b.Slice())
}

func TestConstructors(t *testing.T) {
	t.Run("default is empty", func(t *testing.T) {
		b := seq.New[byte]()
		assert.True(t, b.Empty())
		assert.Equal(t, 0, b.Len())
	})

	t.Run("fill", func(t *testing.T) {
		b := seq.Fill(3, byte('x'))
		assert.Equal(t, "xxx", render(b))
	})

	t.Run("fill non-positive count", func(t *testing.T) {
		assert.True(t, seq.Fill(0, byte('x')).Empty())
		assert.True(t, seq.Fill(-1, byte('x')).Empty())
	})

	t.Run("from slice does not alias", func(t *testing.T) {
		src := []byte("abc")
		b := seq.FromSlice(src)
		src[0] = 'z'
		assert.Equal(t, "abc", render(b))
	})

	t.Run("bytes and runes", func(t *testing.T) {
		assert.Equal(t, "hola", render(seq.Bytes("hola")))
		assert.Equal(t, 4, seq.Runes("hola").Len())
	})
}

func TestFromTerminated(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want string
	}{
		{name: "terminator mid-sequence", src: []byte{'a', 'b', 0, 'c'}, want: "ab"},
		{name: "no terminator", src: []byte("abc"), want: "abc"},
		{name: "leading terminator", src: []byte{0, 'a'}, want: ""},
		{name: "empty source", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seq.FromTerminated(tt.src)
			assert.Equal(t, tt.want, render(got))
		})
	}
}

func TestFromRange(t *testing.T) {
	src := []byte("abcdef")

	t.Run("valid range copies half-open interval", func(t *testing.T) {
		b, err := seq.FromRange(src, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, "bcd", render(b))
	})

	t.Run("empty range", func(t *testing.T) {
		b, err := seq.FromRange(src, 2, 2)
		require.NoError(t, err)
		assert.True(t, b.Empty())
	})

	t.Run("begin after end is invalid", func(t *testing.T) {
		_, err := seq.FromRange(src, 4, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, seq.ErrInvalidRange))
	})

	t.Run("range outside source is invalid", func(t *testing.T) {
		_, err := seq.FromRange(src, -1, 2)
		assert.True(t, errors.Is(err, seq.ErrInvalidRange))

		_, err = seq.FromRange(src, 0, len(src)+1)
		assert.True(t, errors.Is(err, seq.ErrInvalidRange))
	})
}

func TestConvert(t *testing.T) {
	src := seq.Bytes("abc")
	got := seq.Convert(src, func(e byte) rune { return rune(e) })

	require.Equal(t, src.Len(), got.Len())
	assert.Equal(t, []rune{'a', 'b', 'c'}, got.Slice())

	// Conversion must not alias: mutating the result leaves src intact.
	require.NoError(t, got.Set(0, 'z'))
	assert.Equal(t, "abc", render(src))
}

func TestCopyIndependence(t *testing.T) {
	a := seq.Bytes("shared")
	b := a.Clone()

	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 'X'))
	b.Append('!')

	assert.Equal(t, "shared", render(a), "mutating the clone must not touch the original")
	assert.Equal(t, "Xhared!", render(b))
}

func TestCopyFrom(t *testing.T) {
	t.Run("deep copy replaces contents", func(t *testing.T) {
		dst := seq.Bytes("old")
		src := seq.Bytes("new contents")
		dst.CopyFrom(src)

		require.True(t, dst.Equal(src))
		require.NoError(t, dst.Set(0, 'N'))
		assert.Equal(t, "new contents", render(src))
	})

	t.Run("self copy is a no-op", func(t *testing.T) {
		b := seq.Bytes("same")
		b.CopyFrom(b)
		assert.Equal(t, "same", render(b))
	})

	t.Run("copy from empty empties", func(t *testing.T) {
		dst := seq.Bytes("full")
		dst.CopyFrom(seq.New[byte]())
		assert.True(t, dst.Empty())
	})
}

func TestMoveTransfer(t *testing.T) {
	t.Run("move leaves source empty", func(t *testing.T) {
		a := seq.Bytes("payload")
		b := a.Move()

		assert.Equal(t, "payload", render(b))
		assert.Equal(t, 0, a.Len())
	})

	t.Run("moved-from buffer stays usable", func(t *testing.T) {
		a := seq.Bytes("gone")
		_ = a.Move()

		a.Append('k')
		assert.Equal(t, "k", render(a))
	})

	t.Run("move assignment", func(t *testing.T) {
		dst := seq.Bytes("old")
		src := seq.Bytes("taken")
		dst.MoveFrom(src)

		assert.Equal(t, "taken", render(dst))
		assert.True(t, src.Empty())
	})

	t.Run("self move assignment is a no-op", func(t *testing.T) {
		b := seq.Bytes("kept")
		b.MoveFrom(b)
		assert.Equal(t, "kept", render(b))
	})
}

func TestIndexedAccess(t *testing.T) {
	b := seq.Bytes("abc")

	v, err := b.At(1)
	require.NoError(t, err)
	assert.Equal(t, byte('b'), v)

	require.NoError(t, b.Set(1, 'B'))
	assert.Equal(t, "aBc", render(b))

	// The out-of-range contract: Len() itself is already invalid.
	_, err = b.At(b.Len())
	assert.True(t, errors.Is(err, seq.ErrOutOfRange))

	_, err = b.At(-1)
	assert.True(t, errors.Is(err, seq.ErrOutOfRange))

	err = b.Set(b.Len(), 'x')
	assert.True(t, errors.Is(err, seq.ErrOutOfRange))

	// A failed access leaves the buffer untouched.
	assert.Equal(t, "aBc", render(b))
}

func TestSubstring(t *testing.T) {
	b := seq.Bytes("hello world")

	tests := []struct {
		name    string
		start   int
		n       int
		want    string
		wantErr bool
	}{
		{name: "interior", start: 6, n: 5, want: "world"},
		{name: "overlong length clamps", start: 6, n: 100, want: "world"},
		{name: "zero length", start: 3, n: 0, want: ""},
		{name: "negative length clamps to empty", start: 3, n: -2, want: ""},
		{name: "start at end is allowed", start: 11, n: 4, want: ""},
		{name: "start past end fails", start: 12, n: 1, wantErr: true},
		{name: "negative start fails", start: -1, n: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Substring(tt.start, tt.n)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, seq.ErrOutOfRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(got))
		})
	}

	t.Run("round trip", func(t *testing.T) {
		got, err := b.Substring(0, b.Len())
		require.NoError(t, err)
		assert.True(t, got.Equal(b))
	})
}

func TestConcat(t *testing.T) {
	a := seq.Bytes("hello")
	b := seq.Bytes(" world")

	c := a.Concat(b)
	assert.Equal(t, a.Len()+b.Len(), c.Len())
	assert.Equal(t, "hello world", render(c))

	// Operands are untouched.
	assert.Equal(t, "hello", render(a))
	assert.Equal(t, " world", render(b))

	t.Run("empty operands", func(t *testing.T) {
		empty := seq.New[byte]()
		assert.Equal(t, "hello", render(a.Concat(empty)))
		assert.Equal(t, "hello", render(empty.Concat(a)))
		assert.True(t, empty.Concat(empty).Empty())
	})
}

func TestAppend(t *testing.T) {
	b := seq.New[byte]()
	for _, c := range []byte("abc") {
		b.Append(c)
	}
	assert.Equal(t, "abc", render(b))

	b.Clear()
	assert.True(t, b.Empty())
	b.Clear() // idempotent
	assert.True(t, b.Empty())
}

func TestRepeat(t *testing.T) {
	s := seq.Bytes("ab")

	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "twice", n: 2, want: "abab"},
		{name: "once", n: 1, want: "ab"},
		{name: "zero", n: 0, want: ""},
		{name: "negative", n: -3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Repeat(tt.n)
			assert.Equal(t, tt.want, render(got))
			if tt.n > 0 {
				assert.Equal(t, s.Len()*tt.n, got.Len())
			}
		})
	}
}

func TestLexicographicOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "abc", b: "abc", want: 0},
		{name: "element order", a: "abc", b: "abd", want: -1},
		{name: "prefix sorts first", a: "ab", b: "abc", want: -1},
		{name: "longer but smaller head", a: "az", b: "b", want: -1},
		{name: "empty sorts before anything", a: "", b: "a", want: -1},
		{name: "both empty", a: "", b: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := seq.Bytes(tt.a), seq.Bytes(tt.b)

			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))

			// Derived operators agree with Compare.
			assert.Equal(t, tt.want < 0, a.Less(b))
			assert.Equal(t, tt.want <= 0, a.LessOrEqual(b))
			assert.Equal(t, tt.want > 0, a.Greater(b))
			assert.Equal(t, tt.want >= 0, a.GreaterOrEqual(b))
			assert.Equal(t, tt.want == 0, a.Equal(b))

			// Trichotomy: exactly one relation holds.
			n := 0
			for _, v := range []bool{a.Less(b), a.Equal(b), a.Greater(b)} {
				if v {
					n++
				}
			}
			assert.Equal(t, 1, n)
		})
	}

	t.Run("transitivity", func(t *testing.T) {
		a, b, c := seq.Bytes("ab"), seq.Bytes("abc"), seq.Bytes("b")
		require.True(t, a.Less(b))
		require.True(t, b.Less(c))
		assert.True(t, a.Less(c))
	})
}

func TestWriteTo(t *testing.T) {
	b := seq.Runes("ok")

	var sb strings.Builder
	n, err := b.WriteTo(&sb)
	require.NoError(t, err)

	// Each element serializes with its own textual representation;
	// a rune renders as its code point value.
	assert.Equal(t, "111107", sb.String())
	assert.Equal(t, int64(len(sb.String())), n)
}

func TestEndToEndScenario(t *testing.T) {
	s1 := seq.Bytes("hello")
	s2 := seq.Bytes(" world")

	s3 := s1.Concat(s2)
	require.Equal(t, "hello world", render(s3))

	s3.Append('!')
	require.Equal(t, "hello world!", render(s3))

	s4 := s3.Repeat(2)
	require.Equal(t, "hello world!hello world!", render(s4))

	s4.Apply(seq.TransformFunc[byte](func(e byte) byte {
		if e >= 'a' && e <= 'z' {
			return e - 'a' + 'A'
		}
		return e
	}))
	require.Equal(t, "HELLO WORLD!HELLO WORLD!", render(s4))

	sub, err := s4.Substring(6, 5)
	require.NoError(t, err)
	assert.Equal(t, "WORLD", render(sub))
}
