package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"opendom.xyz/home-automation-service/pkg/common"
)

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

const (
	ScopeUser = "user"
	ScopeRoot = "root"

	DefaultUserTokenTTL = 24 * time.Hour
	DefaultRootTokenTTL = 30 * time.Minute
)

// Claims is the signed token payload. Scope separates a logged-in dashboard
// session from an elevated config-mutation session.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Service issues and checks HMAC-signed session tokens. The privileged
// credential is exchanged once for a root-scoped token; the credential itself
// never leaves this package. Revocation is an in-memory denylist of token ids
// pruned as entries expire, which fits a single-process hub.
type Service struct {
	secret       []byte
	username     string
	password     string
	rootPassword string
	userTTL      time.Duration
	rootTTL      time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry
}

func NewService(secret, username, password, rootPassword string) *Service {
	return &Service{
		secret:       []byte(secret),
		username:     username,
		password:     password,
		rootPassword: rootPassword,
		userTTL:      DefaultUserTokenTTL,
		rootTTL:      DefaultRootTokenTTL,
		revoked:      map[string]time.Time{},
	}
}

// Login exchanges the dashboard username/password for a user-scoped token.
func (s *Service) Login(username, password string) (string, error) {
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOk || !passOk {
		return "", ErrInvalidCredential
	}
	return s.issue(ScopeUser, s.userTTL)
}

// Elevate exchanges the privileged credential for a root-scoped token.
func (s *Service) Elevate(credential string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(s.rootPassword)) != 1 {
		return "", ErrInvalidCredential
	}
	return s.issue(ScopeRoot, s.rootTTL)
}

// Verify checks a root-scoped token: signature, expiry, scope, revocation.
func (s *Service) Verify(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	if claims.Scope != ScopeRoot {
		return fmt.Errorf("%w: scope %q cannot authorize config writes", ErrInvalidToken, claims.Scope)
	}
	return nil
}

// VerifyUser accepts any live session token, user or root scoped.
func (s *Service) VerifyUser(token string) error {
	_, err := s.parse(token)
	return err
}

// Revoke denylists a token until its natural expiry. Unparseable tokens are
// ignored, they cannot authorize anything anyway.
func (s *Service) Revoke(token string) {
	claims, err := s.parse(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for jti, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, jti)
		}
	}
	s.revoked[claims.ID] = claims.ExpiresAt.Time

	common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubAuth),
	).Info("Session token revoked", zap.String("scope", claims.Scope))
}

func (s *Service) issue(scope string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	s.mu.Lock()
	_, denied := s.revoked[claims.ID]
	s.mu.Unlock()
	if denied {
		return nil, fmt.Errorf("%w: token revoked", ErrInvalidToken)
	}

	return claims, nil
}
