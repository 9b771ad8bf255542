package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/kuniv/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "university",
			ID:       "466",
		}
		assert.Equal(t, "university with ID 466 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("university", "1")
		wrapped := fmt.Errorf("lookup: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("directory", nil, "required")
		assert.Equal(t, "validation failed for field directory: required", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad seed"}
		assert.Equal(t, "validation failed: bad seed", err.Error())
	})
}

func TestMissingInputError(t *testing.T) {
	err := pkgerrors.NewMissingInputError("accredited", "data/accredited.json")
	assert.Equal(t, "missing accredited input: data/accredited.json", err.Error())
	assert.True(t, pkgerrors.IsMissingInput(err))
	assert.False(t, pkgerrors.IsNotFound(err))

	bare := &pkgerrors.MissingInputError{Input: "universities"}
	assert.Equal(t, "missing universities input", bare.Error())
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected end of JSON input")
	err := pkgerrors.NewParseError("json", "universities.json", base.Error(), base)
	assert.Equal(t, "parse error in json file universities.json: unexpected end of JSON input", err.Error())
	assert.ErrorIs(t, err, base)

	noFile := &pkgerrors.ParseError{Format: "json", Message: "boom"}
	assert.Equal(t, "json parse error: boom", noFile.Error())
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/out.json", base)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "/tmp/out.json")
	assert.ErrorIs(t, err, base)
}

func TestResourceError(t *testing.T) {
	base := errors.New("corrupt")
	err := pkgerrors.NewResourceError("load", "snapshot", "", base)
	assert.Equal(t, "failed to load snapshot: corrupt", err.Error())

	withID := pkgerrors.NewResourceError("write", "metadata", "metadata.json", base)
	assert.Equal(t, "failed to write metadata metadata.json: corrupt", withID.Error())
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("load", "snapshot", "", nil))

	base := errors.New("boom")

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, pkgerrors.WrapIO("read", "x", base), &ioErr)
	assert.Equal(t, "read", ioErr.Operation)

	var parseErr *pkgerrors.ParseError
	require.ErrorAs(t, pkgerrors.WrapParse("json", "x", base), &parseErr)
	assert.Equal(t, "json", parseErr.Format)

	var resErr *pkgerrors.ResourceError
	require.ErrorAs(t, pkgerrors.WrapResource("load", "snapshot", "", base), &resErr)
	assert.ErrorIs(t, resErr, base)
}
