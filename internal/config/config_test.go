package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := LoadFrom(map[string]string{
		"SUPABASE_URL": "https://abc.supabase.co/",
	})
	s.Require().NoError(err)

	s.Equal(8080, cfg.Server.Port)
	s.Equal(DriverSQLite, cfg.Database.Driver)
	s.Equal("authenticated", cfg.Supabase.Audience)
	s.Equal(time.Hour, cfg.Redis.SpellTTL)
	s.Equal([]string{"*"}, cfg.Server.AllowedOrigins)
	s.Equal("https://abc.supabase.co/auth/v1", cfg.Supabase.Issuer())
	s.Equal("https://abc.supabase.co/auth/v1/.well-known/jwks.json", cfg.Supabase.JWKSURL())
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := LoadFrom(map[string]string{
		"PORT":                 "9090",
		"DB_DRIVER":            "postgres",
		"DATABASE_URL":         "postgres://localhost/rpg",
		"SUPABASE_JWT_SECRET":  "secret",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
	})
	s.Require().NoError(err)

	s.Equal(9090, cfg.Server.Port)
	s.Equal(DriverPostgres, cfg.Database.Driver)
	s.Equal([]string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	s.Empty(cfg.Supabase.JWKSURL())
}

func (s *ConfigTestSuite) TestValidation() {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "no token verification configured",
			env:  map[string]string{},
		},
		{
			name: "unknown driver",
			env:  map[string]string{"SUPABASE_JWT_SECRET": "x", "DB_DRIVER": "mysql"},
		},
		{
			name: "port out of range",
			env:  map[string]string{"SUPABASE_JWT_SECRET": "x", "PORT": "70000"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := LoadFrom(tc.env)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
