package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cx-platform/projects-dashboard/internal/api/metrics"
	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// AuthService wraps the external credential provider. The CMS verifies
// passwords and issues the bearer token; this service only stores that token
// server-side and hands the browser a signed cookie naming the session.
type AuthService struct {
	gateway    ports.ResourceGateway
	sessions   ports.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(gateway ports.ResourceGateway, sessions ports.SessionStore, jwtSecret string, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{gateway: gateway, sessions: sessions, jwtSecret: jwtSecret, sessionTTL: sessionTTL}
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	auth, err := s.gateway.SignIn(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Token:     auth.JWT,
		UserID:    auth.User.ID.String(),
		Username:  auth.User.Username,
		Email:     auth.User.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, "", err
	}

	cookie, err := s.signCookie(session)
	if err != nil {
		return nil, "", err
	}
	return session, cookie, nil
}

func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (json.RawMessage, error) {
	return s.gateway.Register(ctx, username, email, password)
}

// Resolve verifies the cookie signature and loads the named session record.
// Any failure along the way collapses to ErrUnauthenticated: a bad cookie is
// a routing decision, not an error to recover from.
func (s *AuthService) Resolve(ctx context.Context, cookie string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		metrics.SessionLookups.WithLabelValues("invalid").Inc()
		return nil, domain.ErrUnauthenticated
	}

	sessionID, _ := claims["sid"].(string)
	if sessionID == "" {
		metrics.SessionLookups.WithLabelValues("invalid").Inc()
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			metrics.SessionLookups.WithLabelValues("expired").Inc()
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	metrics.SessionLookups.WithLabelValues("ok").Inc()
	return session, nil
}

func (s *AuthService) signCookie(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      session.ID,
		"username": session.Username,
		"exp":      time.Now().Add(s.sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

var _ ports.AuthService = (*AuthService)(nil)
