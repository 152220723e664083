package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderWithNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", "char-1", vb)
	errors.ValidateRange("level", int32(3), 1, 9, vb)

	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderReturnsInvalidArgument() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("characterID")
	vb.InvalidField("successes", "must not exceed 3")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	var e *errors.Error
	s.Require().True(errors.As(err, &e))
	fields, ok := e.Meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Equal([]string{"is required"}, fields["characterID"])
	s.Equal([]string{"is invalid: must not exceed 3"}, fields["successes"])
}

func (s *ValidationTestSuite) TestMessageIsOrderedByField() {
	for i := 0; i < 10; i++ {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("spellID")
		vb.RequiredField("characterID")
		vb.Field("level", "must be between 1 and 9")

		s.EqualError(vb.Build(),
			"INVALID_ARGUMENT: validation failed: characterID: is required; level: must be between 1 and 9; spellID: is required")
	}
}

func (s *ValidationTestSuite) TestMultipleErrorsOnOneField() {
	vb := errors.NewValidationBuilder()
	vb.Field("skills", "is required")
	vb.Field("skills", "must name a known skill")

	var e *errors.Error
	s.Require().True(errors.As(vb.Build(), &e))
	s.Len(e.Meta["validation_errors"].(map[string][]string)["skills"], 2)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", "   ", vb)
	errors.ValidateRequired("spellID", "fireball", vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "characterID: is required")
	s.NotContains(err.Error(), "spellID")
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name    string
		level   int32
		wantErr bool
	}{
		{name: "below first level", level: 0, wantErr: true},
		{name: "first level", level: 1},
		{name: "ninth level", level: 9},
		{name: "above ninth level", level: 10, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("level", tc.level, 1, 9, vb)

			if tc.wantErr {
				s.EqualError(vb.Build(), "INVALID_ARGUMENT: validation failed: level: must be between 1 and 9")
				return
			}
			s.NoError(vb.Build())
		})
	}
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("successes", int32(0), vb)
	errors.ValidateNonNegative("failures", int32(-1), vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "failures: must not be negative")
	s.NotContains(err.Error(), "successes")
}

type direction string

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []direction{"EXPEND", "RESTORE"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("direction", direction("RESTORE"), allowed, vb)
	s.NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("direction", direction("SPEND"), allowed, vb)
	s.EqualError(vb.Build(), "INVALID_ARGUMENT: validation failed: direction: must be one of: EXPEND, RESTORE")
}
