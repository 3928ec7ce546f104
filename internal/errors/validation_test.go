package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("size", "is invalid")
	ve.AddFieldErrorf("hit_dice", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: hit_dice: must be at least 1; name: is required; size: is invalid",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("hit_dice", "must be between %d and %d", 1, 99).
		RequiredField("challenge_rating").
		InvalidField("type", "unknown creature type")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Ogre", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Ogre  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRangeAndMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("count", 4, 1, 3, vb)
	errors.ValidateMin("hit_dice", 0, 1, vb)
	errors.ValidateMin("natural_armor", 0, 0, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "count: must be between 1 and 3")
	s.Assert().Contains(err.Error(), "hit_dice: must be at least 1")
	s.Assert().NotContains(err.Error(), "natural_armor")
}
