package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsBusiness(t *testing.T) {
	err := ErrConflict("time_conflict", "Conflito de horário.")

	be, ok := AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, be.Kind)
	assert.Equal(t, "time_conflict", be.Code)

	_, ok = AsBusiness(errors.New("qualquer coisa"))
	assert.False(t, ok)
}

func TestAsBusinessWrapped(t *testing.T) {
	err := fmt.Errorf("salvando agendamento: %w", ErrValidation("too_soon", "Horário inválido."))

	be, ok := AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "too_soon", be.Code)
	assert.True(t, IsBusiness(err, "too_soon"))
	assert.True(t, IsKind(err, KindValidation))
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(ErrNotFound("x", "y"), KindNotFound))
	assert.True(t, IsKind(ErrInvalidTransition("x", "y"), KindInvalidTransition))
	assert.False(t, IsKind(ErrNotFound("x", "y"), KindConflict))
	assert.False(t, IsKind(errors.New("raw"), KindNotFound))
}
