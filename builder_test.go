package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BuildRegistersAndFreezes(t *testing.T) {
	r, err := NewBuilder().
		Add(Define[*person, *personDTO](personSpec()), Define[*address, *addressDTO](addressSpec()), nil).
		Warm().
		Build()
	require.NoError(t, err)
	assert.True(t, r.Frozen())
	assert.Len(t, r.Pairs(), 2)

	out, err := Map[*person, *personDTO](r, &person{Name: "built", Home: &address{City: "c"}})
	require.NoError(t, err)
	assert.Equal(t, "c", out.Home.City)

	_, err = Register[*reading, *readingDTO](r, MemberInit[*reading, *readingDTO]())
	require.ErrorIs(t, err, ErrRegistryFrozen)
}

func TestBuilder_FirstFailureAborts(t *testing.T) {
	r, err := NewBuilder().
		Add(Define[*address, *addressDTO](addressSpec()), Define[*address, *addressDTO](addressSpec())).
		Build()
	require.ErrorIs(t, err, ErrDuplicateRegistration)
	assert.Nil(t, r)
}

func TestBuilder_WithOptions(t *testing.T) {
	b := NewBuilder().WithOptions(WithLogger(nil))
	r, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, r.logger(), "a nil logger falls back to a discarding one")
	assert.Empty(t, r.Pairs())
}
