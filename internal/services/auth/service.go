package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/divin-k/guessquest/internal/dependencies/clock"
	"github.com/divin-k/guessquest/internal/model"
	"github.com/divin-k/guessquest/internal/storage"
	"github.com/divin-k/guessquest/internal/validation"
)

// Errors
var (
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles account registration and login
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// UsernameTaken reports whether a player with the given username exists
func (s *Service) UsernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.storage.GetPlayerByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, model.ErrPlayerNotFound) {
		return false, nil
	}
	return false, err
}

// Register creates a player account with a bcrypt-hashed password
func (s *Service) Register(ctx context.Context, username, password string) (*model.Player, error) {
	if !validation.IsNonEmptyText(username) {
		return nil, ErrEmptyUsername
	}
	if !validation.IsNonEmptyText(password) {
		return nil, ErrEmptyPassword
	}

	taken, err := s.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("username", username))
	return player, nil
}

// Login authenticates a player. Unknown username and wrong password both
// fail with ErrInvalidCredentials; the caller cannot tell which happened.
func (s *Service) Login(ctx context.Context, username, password string) (*model.Player, error) {
	player, err := s.storage.GetPlayerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			s.logger.Info("login failed", slog.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login failed", slog.String("username", username))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("player logged in", slog.String("username", username))
	return player, nil
}
