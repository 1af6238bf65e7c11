package service

import (
	"context"
	"strings"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
	"food-ordering-backend/internal/security"
	"food-ordering-backend/internal/util"
)

type UserService struct {
	db                *config.Database
	userRepository    ports.UserRepository
	addressRepository ports.AddressRepository
}

func NewUserService(
	db *config.Database,
	userRepository ports.UserRepository,
	addressRepository ports.AddressRepository,
) *UserService {
	return &UserService{
		db:                db,
		userRepository:    userRepository,
		addressRepository: addressRepository,
	}
}

// Register : публичная регистрация, всегда создаёт клиента
func (s *UserService) Register(ctx context.Context, req requestresponse.RegisterRequest) (*model.User, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return nil, apperror.Validation("invalid request", map[string]string{"name": "min"})
	}

	if err := security.ValidatePassword(req.Password); err != nil {
		return nil, apperror.Validation("invalid request", map[string]string{"password": err.Error()})
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, util.LogError("[UserService] не удалось создать хэш пароля", err)
	}

	user := &model.User{
		Name:         name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Type:         model.UserTypeClient,
	}

	return s.userRepository.CreateUser(ctx, s.db, user)
}

// GetUser : владелец или администратор
func (s *UserService) GetUser(ctx context.Context, actor *model.User, id int64) (*model.User, error) {
	if !actor.CanAccess(id) {
		return nil, apperror.ErrForbidden
	}
	return s.userRepository.FindByID(ctx, s.db, id)
}

func (s *UserService) GetUserWithAddresses(ctx context.Context, actor *model.User, id int64) (*model.User, error) {
	user, err := s.GetUser(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addressRepository.ListByUser(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	user.Addresses = addresses

	return user, nil
}

// UpdateUser : пользователь меняет только себя, nil поля не трогаются
func (s *UserService) UpdateUser(ctx context.Context, actorID int64, req requestresponse.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepository.FindByID(ctx, s.db, actorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 {
			return nil, apperror.Validation("invalid request", map[string]string{"name": "min"})
		}
		user.Name = name
	}
	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Password != nil {
		if err := security.ValidatePassword(*req.Password); err != nil {
			return nil, apperror.Validation("invalid request", map[string]string{"password": err.Error()})
		}
		hash, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, util.LogError("[UserService] не удалось создать хэш пароля", err)
		}
		user.PasswordHash = hash
	}

	return s.userRepository.UpdateUser(ctx, s.db, user)
}

func (s *UserService) DeleteUser(ctx context.Context, actorID int64) error {
	return s.userRepository.DeleteUser(ctx, s.db, actorID)
}

// ResolveUser : реализация security.UserResolver
func (s *UserService) ResolveUser(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepository.FindByID(ctx, s.db, id)
}

func (s *UserService) ListAdmins(ctx context.Context) ([]model.User, error) {
	return s.userRepository.ListAdmins(ctx, s.db)
}
