package scripts

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var functionNamePattern = regexp.MustCompile(`^f_[0-9]+$`)

func TestNewFunctionName_IsSafeIdentifier(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := NewFunctionName()
		require.Regexp(t, functionNamePattern, name)

		n, err := strconv.ParseUint(strings.TrimPrefix(name, FunctionPrefix), 10, 64)
		require.NoError(t, err)
		assert.Less(t, n, uint64(1)<<63)
	}
}

func TestNewFunctionName_Distinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		name := NewFunctionName()
		_, dup := seen[name]
		require.False(t, dup, "duplicate function name %s", name)
		seen[name] = struct{}{}
	}
}

func TestWrap_KeepsBodyVerbatim(t *testing.T) {
	code := "console.log('a');\n/* not closed"
	wrapped := Wrap(code)

	assert.Regexp(t, functionNamePattern, wrapped.FunctionName)
	assert.Equal(t, "function "+wrapped.FunctionName+" () { "+code+" };", wrapped.Code)
}

func TestWrapAs(t *testing.T) {
	wrapped := WrapAs("f_42", "x++;")
	assert.Equal(t, WrappedScript{FunctionName: "f_42", Code: "function f_42 () { x++; };"}, wrapped)
}
