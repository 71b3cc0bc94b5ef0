package errs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(Position{File: "foo", Line: 3}, InvalidRegister)
	assert.Equal(t, "foo:3: invalid register", err.Error())
	assert.Equal(t, InvalidRegister, err.Kind())
}

func TestErrorSetAccumulates(t *testing.T) {
	var set ErrorSet
	require.Nil(t, set.Err())

	set.Append(New(Position{File: "a", Line: 1}, InvalidLabel))
	set.Append(nil)
	set.Append(New(Position{File: "a", Line: 2}, TooManyOperands))

	require.Equal(t, 2, set.Len())
	err := set.Err()
	require.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid label"))
	assert.True(t, strings.Contains(err.Error(), "too many operands"))
}
