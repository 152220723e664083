package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type LoggerTestSuite struct {
	suite.Suite
	logs   *observer.ObservedLogs
	logger *Logger
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) SetupTest() {
	core, logs := observer.New(zap.DebugLevel)
	s.logs = logs
	s.logger = NewFromZap(zap.New(core))
}

func (s *LoggerTestSuite) lastFields() map[string]interface{} {
	entries := s.logs.All()
	s.Require().NotEmpty(entries)
	return entries[len(entries)-1].ContextMap()
}

func (s *LoggerTestSuite) TestRedactsCredentialKeys() {
	s.logger.Info("login", "access_token", "abc", "Authorization", "Bearer abc", "character_id", "char-1")

	fields := s.lastFields()
	s.Equal(redacted, fields["access_token"])
	s.Equal(redacted, fields["Authorization"])
	s.Equal("char-1", fields["character_id"])
}

func (s *LoggerTestSuite) TestRedactsJWTShapedValues() {
	jwt := "eyJhbGciOiJSUzI1NiJ9.eyJzdWIiOiJ1c2VyLTEifQ.signature"
	s.logger.Debug("verify failed", "value", jwt)

	s.Equal(redacted, s.lastFields()["value"])
}

func (s *LoggerTestSuite) TestHashesUserIDs() {
	s.logger.Warn("denied", "user_id", "user-1")

	hashed, ok := s.lastFields()["user_id"].(string)
	s.Require().True(ok)
	s.Contains(hashed, "hash:")
	s.NotContains(hashed, "user-1")
}

func (s *LoggerTestSuite) TestWithCarriesSanitizedFields() {
	child := s.logger.With("secret", "shh")
	child.Error("boom")

	s.Equal(redacted, s.lastFields()["secret"])
}

func (s *LoggerTestSuite) TestNewRejectsUnknownLevel() {
	_, err := New(Options{Level: "loud"})
	s.Error(err)
}
