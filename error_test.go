package serp_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/serp"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := serp.Errorf(serp.EMALFORMED, "malformed character reference %q", "&#xZZ;")

	assert.Equal(t, serp.EMALFORMED, serp.ErrorCode(err))
	assert.Equal(t, "malformed character reference \"&#xZZ;\"", serp.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("parsing page: %w", serp.Errorf(serp.EBLOCKED, "captcha"))

	assert.Equal(t, serp.EBLOCKED, serp.ErrorCode(err))
	assert.Equal(t, "captcha", serp.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, serp.EINTERNAL, serp.ErrorCode(err))
	assert.Equal(t, "Internal error.", serp.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, serp.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, serp.ErrorMessage(nil))
}
