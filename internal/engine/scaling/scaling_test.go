package scaling_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

type ScalingTestSuite struct {
	suite.Suite
}

func TestScalingSuite(t *testing.T) {
	suite.Run(t, new(ScalingTestSuite))
}

func d(count, die int) scaling.Dice {
	return scaling.Dice{Count: count, Die: die}
}

func (s *ScalingTestSuite) TestStepUp() {
	testCases := []struct {
		name     string
		size     size.Category
		dice     scaling.Dice
		expected scaling.Dice
	}{
		{"small die moves one rung", size.Medium, d(1, 6), d(1, 8)},
		{"1d4 moves one rung", size.Large, d(1, 4), d(1, 6)},
		{"large die at medium moves two rungs", size.Medium, d(1, 8), d(2, 6)},
		{"small creature moves one rung", size.Small, d(1, 8), d(1, 10)},
		{"2d6 at large", size.Large, d(2, 6), d(3, 6)},
		{"d10 multiples double", size.Huge, d(2, 10), d(4, 10)},
		{"odd d4 multiple converts to d6", size.Medium, d(3, 4), d(3, 6)},
		{"even d4 multiple converts to d8", size.Medium, d(4, 4), d(3, 8)},
		{"d12 converts to 2d6", size.Large, d(1, 12), d(3, 6)},
		{"d6 off the table maps to nearest d8", size.Medium, d(5, 6), d(6, 8)},
		{"no damage steps to the first rung", size.Medium, scaling.NoDamage, d(1, 1)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := scaling.StepUp(tc.size, tc.dice)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, got)
		})
	}
}

func (s *ScalingTestSuite) TestStepUpPastTopFails() {
	_, err := scaling.StepUp(size.Gargantuan, d(32, 6))
	s.Require().Error(err)
	s.Assert().True(errors.IsOutOfRange(err))

	_, err = scaling.StepUp(size.Gargantuan, d(32, 8))
	s.Assert().True(errors.IsOutOfRange(err))
}

func (s *ScalingTestSuite) TestStepDown() {
	testCases := []struct {
		name     string
		size     size.Category
		dice     scaling.Dice
		expected scaling.Dice
	}{
		{"small die moves one rung", size.Large, d(1, 6), d(1, 4)},
		{"medium creature moves one rung", size.Medium, d(2, 6), d(1, 10)},
		{"large creature moves two rungs", size.Large, d(2, 6), d(1, 8)},
		{"even d10 multiple halves", size.Huge, d(4, 10), d(2, 10)},
		{"bottom rung yields no damage", size.Medium, d(1, 1), scaling.NoDamage},
		{"no damage stays no damage", size.Small, scaling.NoDamage, scaling.NoDamage},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := scaling.StepDown(tc.size, tc.dice)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, got)
		})
	}
}

func (s *ScalingTestSuite) TestStepRejectsInvalidDice() {
	_, err := scaling.StepUp(size.Medium, d(1, 0))
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = scaling.StepDown(size.Medium, d(-1, 6))
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ScalingTestSuite) TestSpace() {
	space, err := scaling.Space(size.Large, 0)
	s.Require().NoError(err)
	s.Assert().Equal(10.0, space)

	space, err = scaling.Space(size.Large, 1)
	s.Require().NoError(err)
	s.Assert().Equal(15.0, space)

	space, err = scaling.Space(size.Small, -1)
	s.Require().NoError(err)
	s.Assert().Equal(2.5, space)

	_, err = scaling.Space(size.Colossal, 1)
	s.Assert().True(errors.IsOutOfRange(err))
}

func (s *ScalingTestSuite) TestReach() {
	testCases := []struct {
		name     string
		from     size.Category
		to       size.Category
		reach    int
		shape    size.Shape
		expected int
	}{
		{"atypical reach scales proportionally", size.Gargantuan, size.Colossal, 10, size.ShapeTall, 15},
		{"tiny to small adds the small reach", size.Tiny, size.Small, 5, size.ShapeTall, 10},
		{"small to tiny subtracts the small reach", size.Small, size.Tiny, 10, size.ShapeTall, 5},
		{"small to tiny never goes negative", size.Small, size.Tiny, 0, size.ShapeTall, 0},
		{"typical reach follows the new size", size.Large, size.Huge, 10, size.ShapeTall, 15},
		{"long creatures use the long column", size.Large, size.Huge, 5, size.ShapeLong, 10},
		{"equal typical reach is unchanged", size.Small, size.Medium, 10, size.ShapeTall, 10},
		{"proportional result rounds down to 5 feet", size.Huge, size.Large, 20, size.ShapeTall, 10},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, scaling.Reach(tc.from, tc.to, tc.reach, tc.shape))
		})
	}
}

func (s *ScalingTestSuite) TestParseDice() {
	got, err := scaling.ParseDice("2d6")
	s.Require().NoError(err)
	s.Assert().Equal(d(2, 6), got)

	got, err = scaling.ParseDice("D8")
	s.Require().NoError(err)
	s.Assert().Equal(d(1, 8), got)

	got, err = scaling.ParseDice("0")
	s.Require().NoError(err)
	s.Assert().Equal(scaling.NoDamage, got)
	s.Assert().Equal("0", got.String())

	_, err = scaling.ParseDice("2dx")
	s.Assert().True(errors.IsInvalidArgument(err))
}
