package service

import (
	"context"
	"strings"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/ports"
	"food-ordering-backend/internal/security"
	"food-ordering-backend/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type AuthenticationService struct {
	db                *config.Database
	tokenIssuer       ports.TokenIssuer
	refreshTokenRepo  ports.RefreshTokenRepository
	userRepository    ports.UserRepository
	addressRepository ports.AddressRepository
	now               func() time.Time
}

func NewAuthenticationService(
	db *config.Database,
	issuer ports.TokenIssuer,
	refreshTokenRepo ports.RefreshTokenRepository,
	userRepository ports.UserRepository,
	addressRepository ports.AddressRepository,
) *AuthenticationService {
	return &AuthenticationService{
		db:                db,
		tokenIssuer:       issuer,
		refreshTokenRepo:  refreshTokenRepo,
		userRepository:    userRepository,
		addressRepository: addressRepository,
		now:               time.Now,
	}
}

// Login : проверяет email и пароль, выдаёт access и refresh токены.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	user, err := s.userRepository.FindByEmail(ctx, s.db, normalizeEmail(email))
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueSession(ctx, s.db, user)
}

// Refresh : ротация refresh токена.
//
// Порядок проверок:
//  1. токен есть в БД, иначе ErrInvalidToken;
//  2. срок строки не истёк, иначе ErrTokenExpired;
//  3. подпись валидна;
//  4. subject токена совпадает с владельцем строки, иначе ErrTokenUserMismatch.
//
// Удаление старого и вставка нового токена идут одной транзакцией. Если DELETE
// не затронул строк, токен уже использован параллельным запросом.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.Session, error) {
	if refreshToken == "" {
		return nil, apperror.ErrInvalidToken
	}

	stored, err := s.refreshTokenRepo.FindByToken(ctx, s.db, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Expired(s.now()) {
		return nil, apperror.ErrTokenExpired
	}

	claims, err := s.tokenIssuer.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.UserID != stored.UserID {
		logrus.WithFields(logrus.Fields{
			"token_user_id":  claims.UserID,
			"stored_user_id": stored.UserID,
		}).Warn("subject refresh токена не совпадает с владельцем")
		return nil, apperror.ErrTokenUserMismatch
	}

	user, err := s.userRepository.FindByID(ctx, s.db, stored.UserID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, apperror.ErrInvalidToken
		}
		return nil, err
	}

	var session *model.Session
	err = s.db.WithTx(ctx, func(tx sqlx.ExtContext) error {
		deleted, err := s.refreshTokenRepo.Delete(ctx, tx, refreshToken)
		if err != nil {
			return err
		}
		if !deleted {
			return apperror.ErrInvalidToken
		}

		session, err = s.issueSession(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Logout : удаляет refresh токен. Неизвестный токен не ошибка.
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	deleted, err := s.refreshTokenRepo.Delete(ctx, s.db, refreshToken)
	if err != nil {
		return err
	}
	if !deleted {
		logrus.Debug("logout с неизвестным refresh токеном")
	}
	return nil
}

// Profile : пользователь вместе с адресами
func (s *AuthenticationService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepository.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addressRepository.ListByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	user.Addresses = addresses

	return user, nil
}

// PurgeExpiredTokens : удаляет просроченные refresh токены
func (s *AuthenticationService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.refreshTokenRepo.DeleteExpired(ctx, s.db, s.now())
}

func (s *AuthenticationService) issueSession(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.Session, error) {
	accessToken, err := s.tokenIssuer.IssueAccessToken(user)
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка генерации access токена", err)
	}

	refreshToken, expiresAt, err := s.tokenIssuer.IssueRefreshToken(user)
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка генерации refresh токена", err)
	}

	err = s.refreshTokenRepo.Save(ctx, exec, &model.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, err
	}

	return &model.Session{
		User:             user,
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
