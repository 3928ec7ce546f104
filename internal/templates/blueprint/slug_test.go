package blueprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates/blueprint"
)

func TestEncodeSlug(t *testing.T) {
	testCases := []struct {
		name       string
		selections []blueprint.Selection
		expected   string
	}{
		{"empty", nil, "original"},
		{"zero counts", []blueprint.Selection{{Kind: templates.KindGiant, Count: 0}}, "original"},
		{
			"mixed",
			[]blueprint.Selection{
				{Kind: templates.KindAdvanced, Count: 1},
				{Kind: templates.KindGiant, Count: 3},
				{Kind: templates.KindYoung, Count: 2},
			},
			"advanced-giant-x3-young-x2",
		},
		{"clamped", []blueprint.Selection{{Kind: templates.KindYoung, Count: 7}}, "young-x3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, blueprint.EncodeSlug(tc.selections))
		})
	}
}

func TestDecodeSlug(t *testing.T) {
	got, err := blueprint.DecodeSlug("advanced-giant-x3-young-x2")
	require.NoError(t, err)
	assert.Equal(t, []blueprint.Selection{
		{Kind: templates.KindAdvanced, Count: 1},
		{Kind: templates.KindGiant, Count: 3},
		{Kind: templates.KindYoung, Count: 2},
	}, got)

	got, err = blueprint.DecodeSlug("original")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = blueprint.DecodeSlug("Giant-x9-giant")
	require.NoError(t, err)
	assert.Equal(t, []blueprint.Selection{
		{Kind: templates.KindGiant, Count: 3},
		{Kind: templates.KindGiant, Count: 1},
	}, got)
}

func TestDecodeSlugErrors(t *testing.T) {
	for _, slug := range []string{"celestial", "giant-x0", "x2-giant", "giant--young"} {
		t.Run(slug, func(t *testing.T) {
			_, err := blueprint.DecodeSlug(slug)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestSlugRoundTrip(t *testing.T) {
	selections := []blueprint.Selection{
		{Kind: templates.KindYoung, Count: 1},
		{Kind: templates.KindAdvanced, Count: 2},
	}
	decoded, err := blueprint.DecodeSlug(blueprint.EncodeSlug(selections))
	require.NoError(t, err)
	assert.Equal(t, selections, decoded)
}
