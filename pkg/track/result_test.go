package track

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResult_States(t *testing.T) {
	t.Parallel()

	ok := Success(5)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.False(t, ok.IsCancel())
	assert.Equal(t, 5, ok.Value())
	assert.NotEqual(t, uuid.Nil, ok.ID())
	assert.False(t, ok.CreatedAt().IsZero())

	boom := errors.New("boom")
	failed := Fail[int](boom)
	assert.True(t, failed.IsFailure())
	assert.ErrorIs(t, failed.Err(), boom)

	cancelled := Cancel[int](context.Canceled)
	assert.True(t, cancelled.IsCancel())
	assert.False(t, cancelled.IsFailure())
	assert.False(t, cancelled.IsSuccess())
}

func TestResult_CarryKeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Success(int64(3))
	out := carry(in, "three")

	assert.Equal(t, in.ID(), out.ID())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
	assert.Equal(t, "three", out.Value())
	assert.True(t, out.IsSuccess())
}
