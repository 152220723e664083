package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
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
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
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
	err := errors.NotFound("character not found").
		WithMeta("character_id", "123").
		WithMeta("user_id", "456")

	s.Assert().Equal("123", err.Meta["character_id"])
	s.Assert().Equal("456", err.Meta["user_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("database connection failed")
	wrapped := errors.Wrap(baseErr, "failed to get character")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to get character", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "character not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("character not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "service unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("service unavailable", wrapped.Message)
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
		{"InvalidState", func() *errors.Error { return errors.InvalidState("test") }, errors.CodeInvalidState},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"Unauthenticated", func() *errors.Error { return errors.Unauthenticated("test") }, errors.CodeUnauthenticated},
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
	err2 := errors.NotFound("test")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestWrapfKeepsMeta() {
	err := errors.NotFound("spell slot not found").WithMeta("level", int32(3))
	wrapped := errors.Wrapf(err, "failed to expend level %d slot", 3)

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("failed to expend level 3 slot", wrapped.Message)
	s.Assert().Equal(int32(3), wrapped.Meta["level"])
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().True(errors.IsNotFound(wrappedErr))
	s.Assert().False(errors.IsNotFound(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(notFoundErr))
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

func (s *ErrorsTestSuite) TestToGraphQLKeepsClientVisibleErrors() {
	err := errors.NotFound("character not found").WithMeta("character_id", "char-1")
	wrapped := errors.Wrap(err, "failed to toggle inspiration")

	out := errors.ToGraphQL(wrapped)

	var gqlErr *errors.Error
	s.Require().True(errors.As(out, &gqlErr))
	s.Assert().Equal(errors.CodeNotFound, gqlErr.Code)
	s.Assert().Equal("failed to toggle inspiration", gqlErr.Message)
	s.Assert().Nil(gqlErr.Cause)
	s.Assert().Equal("NOT_FOUND", gqlErr.Extensions()["code"])
	s.Assert().Equal("char-1", gqlErr.Extensions()["character_id"])
}

func (s *ErrorsTestSuite) TestToGraphQLUnauthenticated() {
	out := errors.ToGraphQL(errors.Unauthenticated("authentication required"))

	s.Assert().Contains(out.Error(), "UNAUTHENTICATED")
	s.Assert().True(errors.IsUnauthenticated(out))
}

func (s *ErrorsTestSuite) TestToGraphQLHidesInternalDetails() {
	testCases := []struct {
		name string
		err  error
	}{
		{"plain error", fmt.Errorf("pq: relation \"characters\" does not exist")},
		{"wrapped plain error", errors.Wrap(fmt.Errorf("connection reset"), "failed to list characters")},
		{"internal error", errors.Internal("db exploded").WithMeta("dsn", "postgres://secret")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out := errors.ToGraphQL(tc.err)

			var gqlErr *errors.Error
			s.Require().True(errors.As(out, &gqlErr))
			s.Assert().Equal(errors.CodeInternal, gqlErr.Code)
			s.Assert().Equal("internal error", gqlErr.Message)
			s.Assert().Equal(map[string]interface{}{"code": "INTERNAL"}, gqlErr.Extensions())
		})
	}
}

func (s *ErrorsTestSuite) TestToGraphQLContextErrors() {
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(errors.ToGraphQL(context.Canceled)))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(
		errors.ToGraphQL(errors.Wrap(context.DeadlineExceeded, "failed to list spells")),
	))
}

func (s *ErrorsTestSuite) TestToGraphQLNil() {
	s.Assert().NoError(errors.ToGraphQL(nil))
}
