package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/logger"
	"taskboard/internal/models"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	users UserRepository
	auth  *auth.Service
}

func NewUserService(users UserRepository, authService *auth.Service) UserService {
	return UserService{
		users: users,
		auth:  authService,
	}
}

func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	fields := map[string]any{}
	if username == "" {
		fields["username"] = "не может быть пустым"
	} else if !models.ValidUsername(username) {
		fields["username"] = "3-24 символа, только буквы, цифры, подчёркивания и дефисы"
	}
	if password == "" {
		fields["password"] = "не может быть пустым"
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("хэширование пароля: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, NewAlreadyExists("пользователь", username)
		}
		return nil, fmt.Errorf("создание пользователя: %w", err)
	}

	logger.Info("Service: Пользователь зарегистрирован", zap.String("username", username))
	return user, nil
}

// Login - неверное имя и неверный пароль неразличимы для клиента
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", NewUnauthorized("неверное имя пользователя или пароль")
		}
		return "", fmt.Errorf("получение пользователя: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", NewUnauthorized("неверное имя пользователя или пароль")
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		return "", fmt.Errorf("выпуск токена: %w", err)
	}
	return token, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("пользователь", username)
		}
		return nil, fmt.Errorf("получение пользователя: %w", err)
	}
	return user, nil
}

// UsernameByID - разрешение ссылки для слоя отображения
func (s *UserService) UsernameByID(ctx context.Context, id uuid.UUID) (string, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
