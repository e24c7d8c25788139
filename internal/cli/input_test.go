package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArray_Valid(t *testing.T) {
	values, err := ParseArray("5,2,8,1,9")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 8, 1, 9}, values)
}

func TestParseArray_TrimsWhitespace(t *testing.T) {
	values, err := ParseArray(" 3 , 1 , 2 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, values)
}

func TestParseArray_NotAnInteger(t *testing.T) {
	_, err := ParseArray("3,banana,2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
}

func TestParseArray_TooFewElements(t *testing.T) {
	_, err := ParseArray("2,1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 3 and 30")
}

func TestParseArray_TooManyElements(t *testing.T) {
	spec := "1"
	for i := 0; i < 30; i++ {
		spec += ",1"
	}
	_, err := ParseArray(spec)
	require.Error(t, err)
}

func TestValidateRandomSize(t *testing.T) {
	assert.NoError(t, ValidateRandomSize(5))
	assert.NoError(t, ValidateRandomSize(30))
	assert.Error(t, ValidateRandomSize(4))
	assert.Error(t, ValidateRandomSize(31))
}
