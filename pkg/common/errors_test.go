package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := &PathError{
			Path: "offset 4",
			Err:  errors.New("invalid value"),
		}

		assert.Equal(t, "at offset 4: invalid value", err.Error())
	})

	t.Run("empty path", func(t *testing.T) {
		err := &PathError{
			Path: "",
			Err:  errors.New("some error"),
		}

		assert.Equal(t, "some error", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		innerErr := errors.New("inner error")
		err := &PathError{
			Path: "offset 0",
			Err:  innerErr,
		}

		assert.Equal(t, innerErr, err.Unwrap())
		assert.True(t, errors.Is(err, innerErr))
	})
}

func TestWrapPath(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		result := WrapPath("some.path", nil)
		assert.Nil(t, result)
	})

	t.Run("wraps error", func(t *testing.T) {
		innerErr := errors.New("something failed")
		result := WrapPath("offset 12", innerErr)

		assert.NotNil(t, result)
		assert.Contains(t, result.Error(), "offset 12")
		assert.Contains(t, result.Error(), "something failed")
	})
}

func TestWrapPathf(t *testing.T) {
	err := WrapPathf("offset 3", "expected %s, got %s", "atom", "number")

	assert.Contains(t, err.Error(), "offset 3")
	assert.Contains(t, err.Error(), "expected atom, got number")
}

func TestIsPathError(t *testing.T) {
	t.Run("is PathError", func(t *testing.T) {
		err := WrapPath("some.path", errors.New("error"))
		assert.True(t, IsPathError(err))
	})

	t.Run("wrapped PathError", func(t *testing.T) {
		inner := WrapPath("some.path", errors.New("error"))
		wrapped := fmt.Errorf("outer: %w", inner)
		assert.True(t, IsPathError(wrapped))
	})

	t.Run("not PathError", func(t *testing.T) {
		err := errors.New("plain error")
		assert.False(t, IsPathError(err))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.False(t, IsPathError(nil))
	})
}

func TestGetPath(t *testing.T) {
	t.Run("from PathError", func(t *testing.T) {
		err := WrapPath("offset 7", errors.New("error"))
		assert.Equal(t, "offset 7", GetPath(err))
	})

	t.Run("from wrapped PathError", func(t *testing.T) {
		inner := WrapPath("offset 9", errors.New("error"))
		wrapped := fmt.Errorf("outer: %w", inner)
		assert.Equal(t, "offset 9", GetPath(wrapped))
	})

	t.Run("not PathError", func(t *testing.T) {
		err := errors.New("plain error")
		assert.Equal(t, "", GetPath(err))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", GetPath(nil))
	})
}
