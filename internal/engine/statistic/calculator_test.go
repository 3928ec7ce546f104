package statistic_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine/statistic"
)

type sheet struct {
	values map[string]int
}

func lookup(s *sheet, args ...string) int {
	total := 0
	for _, key := range args {
		total += s.values[key]
	}
	return total
}

func constant(_ *sheet, args ...string) int {
	if len(args) == 0 {
		return 0
	}
	n, _ := strconv.Atoi(args[0])
	return n
}

type CalculatorTestSuite struct {
	suite.Suite
	sheet *sheet
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}

func (s *CalculatorTestSuite) SetupTest() {
	s.sheet = &sheet{values: map[string]int{"bab": 3, "str": 2, "size": -1}}
}

func (s *CalculatorTestSuite) TestEmptyCalculatesZero() {
	calc := statistic.New(s.sheet)
	s.Assert().Equal(0, calc.Calculate())
	s.Assert().Empty(calc.Components())
}

func (s *CalculatorTestSuite) TestSumsComponents() {
	calc := statistic.New(s.sheet).
		SetComponent("bab", lookup, "bab").
		SetComponent("ability", lookup, "str").
		SetComponent("size", lookup, "size")

	s.Assert().Equal(4, calc.Calculate())
	s.Assert().Equal([]string{"bab", "ability", "size"}, calc.Components())
	s.Assert().Equal([]statistic.Term{
		{Name: "bab", Value: 3},
		{Name: "ability", Value: 2},
		{Name: "size", Value: -1},
	}, calc.Terms())
}

func (s *CalculatorTestSuite) TestReplaceKeepsPositionAndDropsArgs() {
	calc := statistic.New(s.sheet).
		SetComponent("ability", lookup, "str").
		SetComponent("bonus", constant, "2")

	calc.SetComponent("ability", lookup)
	s.Assert().Equal(2, calc.Calculate())
	s.Assert().Equal([]string{"ability", "bonus"}, calc.Components())

	calc.SetComponent("ability", lookup, "bab", "str")
	s.Assert().Equal(7, calc.Calculate())
}

func (s *CalculatorTestSuite) TestRemoveComponent() {
	calc := statistic.New(s.sheet).
		SetComponent("bab", lookup, "bab").
		SetComponent("size", lookup, "size")

	calc.RemoveComponent("size").RemoveComponent("missing")
	s.Assert().False(calc.Has("size"))
	s.Assert().True(calc.Has("bab"))
	s.Assert().Equal(3, calc.Calculate())
}

func (s *CalculatorTestSuite) TestReadsReceiverAtCallTime() {
	calc := statistic.New(s.sheet).SetComponent("ability", lookup, "str")
	s.Assert().Equal(2, calc.Calculate())

	s.sheet.values["str"] = 5
	s.Assert().Equal(5, calc.Calculate())
}

func (s *CalculatorTestSuite) TestArgsAreCopied() {
	args := []string{"bab"}
	calc := statistic.New(s.sheet).SetComponent("attack", lookup, args...)
	args[0] = "size"
	s.Assert().Equal(3, calc.Calculate())
}

func (s *CalculatorTestSuite) TestCalculateDiscrepancy() {
	calc := statistic.New(s.sheet).
		SetComponent("bab", lookup, "bab").
		SetComponent("ability", lookup, "str")

	s.Assert().Equal(2, calc.CalculateDiscrepancy(7))
	s.Assert().Equal(-5, calc.CalculateDiscrepancy(0))
}
