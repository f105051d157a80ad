package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEncode(t *testing.T) {
	testCases := []struct {
		In   Valuer
		Type NodeType
		Out  string
	}{
		{NewNumberValue(0), NodeTypeNumber, `0`},
		{NewNumberValue(42), NodeTypeNumber, `42`},
		{NewNumberValue(18446744073709551615), NodeTypeNumber, `18446744073709551615`},
		{NewStringValue("foo"), NodeTypeString, `"foo"`},
		{NewStringValue("+"), NodeTypeString, `"+"`},
		{NewStringValue(`a"b`), NodeTypeString, `"a"b"`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Type, testCases[i].In.Type())
		assert.Equal(t, testCases[i].Out, testCases[i].In.Encode())
	}
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "number", NodeTypeNumber.String())
	assert.Equal(t, "string", NodeTypeString.String())
	assert.Equal(t, "list", NodeTypeList.String())
	assert.Equal(t, "", NodeType(0).String())
}
