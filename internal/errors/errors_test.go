package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrap_PreservesIdentity(t *testing.T) {
	wrapped := Wrap(errSentinel, "loading plan")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "loading plan: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errors_test.go")
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAs_FindsWrappedType(t *testing.T) {
	err := Wrapf(&codedError{code: "X"}, "step %d", 2)

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, "X", target.code)
}

func TestOrigin_PointsAtInnermostWrap(t *testing.T) {
	inner := WithStack(errSentinel)
	outer := Wrap(inner, "saving plan")

	origin := Origin(outer)
	assert.Contains(t, origin, "errors_test.go:")
	assert.Equal(t, Origin(inner), origin)
}

func TestOrigin_EmptyWithoutStack(t *testing.T) {
	assert.Empty(t, Origin(errSentinel))
	assert.Empty(t, Origin(nil))
}

func TestOrigin_ReportsCallerLine(t *testing.T) {
	_, _, line, _ := runtime.Caller(0)
	err := Wrapf(New("rollback"), "transaction rollback failed: %v", "x")

	assert.Equal(t, "errors_test.go:"+strconv.Itoa(line+1), Origin(err))
}
