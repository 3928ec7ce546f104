package size_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input    string
		expected size.Category
	}{
		{"Fine", size.Fine},
		{"large", size.Large},
		{" GARGANTUAN ", size.Gargantuan},
		{"Colossal", size.Colossal},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := size.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := size.Parse("enormous")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestShift(t *testing.T) {
	got, ok := size.Medium.Shift(1)
	assert.True(t, ok)
	assert.Equal(t, size.Large, got)

	got, ok = size.Small.Shift(-2)
	assert.True(t, ok)
	assert.Equal(t, size.Diminutive, got)

	_, ok = size.Colossal.Shift(1)
	assert.False(t, ok)

	_, ok = size.Fine.Shift(-1)
	assert.False(t, ok)

	_, ok = size.Unknown.Shift(1)
	assert.False(t, ok)
}

func TestTypicalValues(t *testing.T) {
	assert.Equal(t, 20, size.Gargantuan.Reach(size.ShapeTall))
	assert.Equal(t, 30, size.Colossal.Reach(size.ShapeTall))
	assert.Equal(t, 20, size.Colossal.Reach(size.ShapeLong))
	assert.Equal(t, 0, size.Tiny.Reach(size.ShapeTall))
	assert.Equal(t, 5, size.Small.Reach(""))
	assert.Equal(t, 2.5, size.Tiny.Space())
	assert.Equal(t, -1, size.Large.Modifier())
	assert.Equal(t, 1, size.Large.SpecialModifier())
	assert.Equal(t, -4, size.Large.StealthModifier())
	assert.Equal(t, 30, size.Large.ConstructHitPoints())
}

func TestTextRoundTrip(t *testing.T) {
	type wrapper struct {
		Size size.Category `json:"size"`
	}

	data, err := json.Marshal(wrapper{Size: size.Huge})
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":"Huge"}`, string(data))

	var decoded wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"size":"diminutive"}`), &decoded))
	assert.Equal(t, size.Diminutive, decoded.Size)

	require.NoError(t, json.Unmarshal([]byte(`{"size":""}`), &decoded))
	assert.Equal(t, size.Unknown, decoded.Size)
}
