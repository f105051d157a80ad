package sexpr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/sexpr-parser/lexer"
	"github.com/xiam/sexpr-parser/parser"
)

func TestParseString(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{``, `[]`},
		{`42`, `42`},
		{`foo`, `"foo"`},
		{`(foo bar)`, `["foo", "bar"]`},
		{`(+ 1 2)`, `["+", 1, 2]`},
		{`(first (list 1 (+ 2 3) 9))`, `["first", ["list", 1, ["+", 2, 3], 9]]`},
	}

	for i := range testCases {
		out, err := ParseString(testCases[i].In)
		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, out)
	}
}

func TestParseStringErrors(t *testing.T) {
	testCases := []string{
		`(foo`,
		`)`,
	}

	for i := range testCases {
		out, err := ParseString(testCases[i])
		assert.Empty(t, out)
		assert.ErrorIs(t, err, parser.ErrUnexpectedToken)
	}
}

func TestParse(t *testing.T) {
	root, err := Parse([]byte(`(a 1)`))
	require.NoError(t, err)
	assert.Len(t, root.List(), 2)
}

func TestReaderOptions(t *testing.T) {
	r := NewReader(strings.NewReader(`(a) ?`))
	r.SetOptions(parser.Options{
		Strict: true,
		Lexer:  lexer.Options{Unknown: lexer.RejectUnknown},
	})

	root, err := r.Parse()
	assert.Nil(t, root)
	assert.ErrorIs(t, err, lexer.ErrUnknownCharacter)

	r = NewReader(strings.NewReader(`(a) b`))
	r.SetOptions(parser.Options{Strict: true})

	_, err = r.Parse()
	assert.ErrorIs(t, err, parser.ErrTrailingTokens)
}
