package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock_verifier.go -package=authmock github.com/KirkDiggler/rpg-sheet-api/internal/auth Verifier

// Verifier turns a bearer token into a verified identity
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

const defaultLeeway = 30 * time.Second

// SupabaseConfig configures a SupabaseVerifier
type SupabaseConfig struct {
	// Issuer is "<project url>/auth/v1"; empty skips the issuer check
	Issuer string
	// JWKSURL enables asymmetric (RS256, ES256) tokens
	JWKSURL string
	// JWTSecret enables HS256 tokens signed with the legacy project secret
	JWTSecret string
	Audience  string
	JWKSTTL   time.Duration

	HTTPClient *http.Client
	Clock      clock.Clock
}

// Validate validates the config
func (c *SupabaseConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.JWKSURL == "" && c.JWTSecret == "" {
		vb.Field("JWKSURL", "or JWTSecret is required")
	}
	if c.Audience == "" {
		vb.RequiredField("Audience")
	}

	return vb.Build()
}

// SupabaseVerifier verifies Supabase Auth access tokens
type SupabaseVerifier struct {
	issuer   string
	audience string
	secret   []byte
	methods  []string
	jwks     *jwksCache
	clock    clock.Clock
}

var _ Verifier = (*SupabaseVerifier)(nil)

// NewSupabaseVerifier creates a verifier from config
func NewSupabaseVerifier(cfg *SupabaseConfig) (*SupabaseVerifier, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	v := &SupabaseVerifier{
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		clock:    clk,
	}

	if cfg.JWKSURL != "" {
		httpClient := cfg.HTTPClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: 10 * time.Second}
		}
		ttl := cfg.JWKSTTL
		if ttl <= 0 {
			ttl = 10 * time.Minute
		}
		v.jwks = newJWKSCache(httpClient, cfg.JWKSURL, ttl, clk)
		v.methods = append(v.methods, jwt.SigningMethodRS256.Alg(), jwt.SigningMethodES256.Alg())
	}
	if cfg.JWTSecret != "" {
		v.secret = []byte(cfg.JWTSecret)
		v.methods = append(v.methods, jwt.SigningMethodHS256.Alg())
	}

	return v, nil
}

type supabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Verify checks signature, lifetime, issuer, audience and subject
func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.Unauthenticated("token is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(v.methods),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(defaultLeeway),
		jwt.WithTimeFunc(v.clock.Now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &supabaseClaims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.key(ctx, t)
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnauthenticated, "invalid token")
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errors.Unauthenticated("token has no subject")
	}

	return &Identity{
		UserID: UserID(claims.Subject),
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

func (v *SupabaseVerifier) key(ctx context.Context, t *jwt.Token) (any, error) {
	switch t.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if v.secret == nil {
			return nil, fmt.Errorf("hmac tokens are not accepted")
		}
		return v.secret, nil
	case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
		if v.jwks == nil {
			return nil, fmt.Errorf("asymmetric tokens are not accepted")
		}
		kid, _ := t.Header["kid"].(string)
		if strings.TrimSpace(kid) == "" {
			return nil, fmt.Errorf("missing kid")
		}
		return v.jwks.getKey(ctx, kid)
	default:
		return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
	}
}
