package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapErr(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"foreign key", gorm.ErrForeignKeyViolated, ErrConflict},
		{"duplicate key", gorm.ErrDuplicatedKey, ErrConflict},
		{"already classified", fmt.Errorf("artist 3: %w", ErrConflict), ErrConflict},
		{"anything else", cause, ErrPersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapErr("op", tt.err)
			assert.ErrorIs(t, got, tt.kind)
			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), "op: ")
		})
	}
}

func TestWrapErr_Nil(t *testing.T) {
	assert.NoError(t, wrapErr("op", nil))
}

func TestWrapErr_KindsAreExclusive(t *testing.T) {
	got := wrapErr("op", gorm.ErrRecordNotFound)
	assert.NotErrorIs(t, got, ErrConflict)
	assert.NotErrorIs(t, got, ErrPersistence)
}
