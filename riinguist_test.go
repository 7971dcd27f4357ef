package riinguist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/riinguist"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := riinguist.Errorf(riinguist.EINVALID, "term table %d: missing bold term", 3)

	assert.Equal(t, riinguist.EINVALID, riinguist.ErrorCode(err))
	assert.Equal(t, "term table 3: missing bold term", riinguist.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract terms: %w", riinguist.Errorf(riinguist.EINVALID, "bad layout"))

	assert.Equal(t, riinguist.EINVALID, riinguist.ErrorCode(err))
	assert.Equal(t, "bad layout", riinguist.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, riinguist.EINTERNAL, riinguist.ErrorCode(err))
	assert.Equal(t, "Internal error.", riinguist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, riinguist.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, riinguist.ErrorMessage(nil))
}
