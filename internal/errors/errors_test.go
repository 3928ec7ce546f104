package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "monster not found",
			expected: "NOT_FOUND: monster not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "size cannot grow past colossal",
			expected: "OUT_OF_RANGE: size cannot grow past colossal",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("monster not found").
		WithMeta("name", "Ogre").
		WithMeta("source", "Bestiary")

	s.Assert().Equal("Ogre", err.Meta["name"])
	s.Assert().Equal("Bestiary", err.Meta["source"])

	err2 := errors.Internal("store error").
		WithMetaMap(map[string]interface{}{
			"key":   "monster:ogre",
			"index": "monster:names",
		})

	s.Assert().Equal("monster:ogre", err2.Meta["key"])
	s.Assert().Equal("monster:names", err2.Meta["index"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to get monster")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to get monster", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndCopiesMeta() {
	baseErr := errors.OutOfRange("no larger damage dice").WithMeta("dice", "32d8")
	wrapped := errors.Wrap(baseErr, "giant template failed")

	s.Assert().Equal(errors.CodeOutOfRange, wrapped.Code)
	s.Assert().Equal("giant template failed", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())

	wrapped.WithMeta("template", "giant")
	s.Assert().NotContains(baseErr.Meta, "template")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.OutOfRange("size shift left the scale")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeFailedPrecondition, "template incompatible")

	s.Assert().Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Assert().True(errors.IsFailedPrecondition(wrapped))
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"AlreadyExists", func() *errors.Error { return errors.AlreadyExists("test") }, errors.CodeAlreadyExists},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"OutOfRange", func() *errors.Error { return errors.OutOfRange("test") }, errors.CodeOutOfRange},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("other")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.FailedPrecondition("multiple sources").
		WithMeta("sources", []interface{}{"Bestiary", "Bestiary 2"})

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())
	s.Assert().Equal("multiple sources", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().True(errors.IsFailedPrecondition(back))
	s.Assert().Equal([]interface{}{"Bestiary", "Bestiary 2"}, errors.GetMeta(back)["sources"])

	plain := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(plain))
	s.Assert().Equal("invalid input", errors.GetMessage(plain))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
