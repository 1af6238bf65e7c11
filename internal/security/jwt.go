package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "food-ordering-backend"

type Claims struct {
	UserID int64  `json:"-"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier : проверка access токена.
// Одна реализация используется и HTTP middleware, и websocket рукопожатием.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

type JWTService struct {
	cfg *config.JWTConfig
	now func() time.Time
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg: cfg, now: time.Now}
}

// WithClock : подмена часов для тестов
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) RefreshTTL() time.Duration {
	return s.cfg.RefreshTokenTTL
}

// IssueAccessToken : короткоживущий токен {sub, email, iat, exp}
func (s *JWTService) IssueAccessToken(user *model.User) (string, error) {
	now := s.now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.AccessSecret))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи access токена: %w", err)
	}
	return token, nil
}

// IssueRefreshToken : долгоживущий токен {sub, jti, iat, exp}, подписанный отдельным секретом.
// Сохранять его в БД должен вызывающий.
func (s *JWTService) IssueRefreshToken(user *model.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.RefreshTokenTTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatInt(user.ID, 10),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.RefreshSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("ошибка подписи refresh токена: %w", err)
	}
	return token, expiresAt, nil
}

func (s *JWTService) VerifyAccessToken(token string) (*Claims, error) {
	return s.parse(token, s.cfg.AccessSecret)
}

func (s *JWTService) VerifyRefreshToken(token string) (*Claims, error) {
	return s.parse(token, s.cfg.RefreshSecret)
}

// Verify : реализация TokenVerifier
func (s *JWTService) Verify(token string) (*Claims, error) {
	return s.VerifyAccessToken(token)
}

func (s *JWTService) parse(tokenStr, secret string) (*Claims, error) {
	if tokenStr == "" {
		return nil, apperror.ErrMissingToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrTokenExpired.Wrap(err)
		}
		return nil, apperror.ErrInvalidToken.Wrap(err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, apperror.ErrInvalidToken.Wrap(fmt.Errorf("некорректный subject %q", claims.Subject))
	}
	claims.UserID = userID

	return claims, nil
}
