package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-bestiary/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("roll")
	first := gen.Generate()
	second := gen.Generate()

	assert.NotEqual(t, first, second)
	raw, found := strings.CutPrefix(first, "roll_")
	require.True(t, found)
	_, err := uuid.Parse(raw)
	assert.NoError(t, err)

	_, err = uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("roll")
	assert.Equal(t, "roll_1", gen.Generate())
	assert.Equal(t, "roll_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
