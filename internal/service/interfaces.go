package service

import (
	"context"

	"github.com/mealcart/list-keeper/models"
)

// AuthService covers the account lifecycle: registration, credential
// verification, and in-place credential or profile changes.
type AuthService interface {
	// Register creates a new account with the given plain-text password.
	// Returns store.ErrUsernameTaken (wrapped) when the name is occupied.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Login verifies the credentials and returns the account record.
	// Any mismatch, including an unknown username, yields
	// ErrInvalidCredentials so callers cannot probe for registered names.
	Login(ctx context.Context, username, password string) (models.User, error)

	// ChangePassword re-verifies the current password before storing a hash
	// of the new one. A wrong current password yields ErrInvalidCredentials.
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error

	// UpdateProfile renames the account. Returns store.ErrUsernameTaken
	// (wrapped) when the new name is occupied.
	UpdateProfile(ctx context.Context, userID int64, username string) error
}

// ListService covers per-user grocery list persistence. Every operation is
// scoped by the owning user's ID.
type ListService interface {
	SaveList(ctx context.Context, ownerID int64, items []models.ListItem) (int64, error)

	GetLists(ctx context.Context, ownerID int64) ([][]models.ListItem, error)
	GetListsWithIDs(ctx context.Context, ownerID int64) ([]models.GroceryList, error)

	UpdateList(ctx context.Context, ownerID, listID int64, items []models.ListItem) error
	DeleteList(ctx context.Context, ownerID, listID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
