package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mealcart/list-keeper/internal/config"
	"github.com/mealcart/list-keeper/internal/logger"
	"github.com/mealcart/list-keeper/internal/store"
	"github.com/mealcart/list-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and credential changes
// using a UserRepository for persistence and bcrypt for password hashing.
// Only salted one-way hashes ever reach the repository; verification uses
// bcrypt's constant-time comparison.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	// Values below bcrypt.MinCost fall back to bcrypt.DefaultCost.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// Username uniqueness is enforced by the storage layer, so two concurrent
// registrations of the same name cannot both succeed.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped store.ErrUsernameTaken if the name is already registered.
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both username and password are non-empty, looks up the
// account by username, and verifies the password against the stored bcrypt
// hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if the username is unknown or the password does
//     not match. The two cases are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// ChangePassword replaces the user's password after re-verifying the current
// one.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrInvalidCredentials if the user does not exist or oldPassword does not
//     match the stored hash.
func (a *authService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if oldPassword == "" || newPassword == "" {
		log.Error().Int64("id", userID).Msg("invalid password change data provided")
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Int64("id", userID).Msg("password change attempt for unknown user")
			return ErrInvalidCredentials
		}
		log.Err(err).Int64("id", userID).Msg("user search by ID failed")
		return fmt.Errorf("user search by ID failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(oldPassword)); err != nil {
		log.Warn().Int64("id", userID).Msg("wrong current password")
		return ErrInvalidCredentials
	}

	newHash, err := a.hashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// UpdateProfile renames the user's account.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided if username is empty.
//   - A wrapped store.ErrUsernameTaken if another account holds the name.
//   - A wrapped store.ErrUserNotFound if the user does not exist.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, username string) error {
	log := logger.FromContext(ctx)

	if username == "" {
		log.Error().Int64("id", userID).Msg("invalid profile data provided")
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.UpdateUsername(ctx, userID, username); err != nil {
		log.Err(err).Int64("id", userID).Str("username", username).Msg("username update ended with error")
		return fmt.Errorf("username update ended with error: %w", err)
	}

	return nil
}

// hashPassword runs password through bcrypt with the configured work factor.
// bcrypt generates a fresh random salt per call, so equal passwords never
// share a stored hash.
func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
