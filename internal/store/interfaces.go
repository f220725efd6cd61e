package store

import (
	"context"

	"github.com/mealcart/list-keeper/models"
)

// UserRepository is the persistence contract for the users table.
// Username uniqueness is enforced by the storage layer itself (unique
// constraint), never by a read-then-write pre-check, so concurrent
// registrations cannot race past each other.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// server-assigned ID. Returns [ErrUsernameTaken] when the username
	// already exists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the user with the given ID or [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdatePasswordHash replaces the stored password hash for the user.
	// Returns [ErrUserNotFound] when no row matched.
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error

	// UpdateUsername renames the user in place. Returns [ErrUsernameTaken]
	// when another user already holds the name, [ErrUserNotFound] when no
	// row matched.
	UpdateUsername(ctx context.Context, userID int64, username string) error
}

// ListRepository is the persistence contract for the grocery_lists table.
// Every read and mutation is scoped by the owning user's ID so a caller can
// never observe or modify another user's rows, even with a valid list ID.
type ListRepository interface {
	// CreateList encodes the item sequence and inserts a new row owned by
	// list.OwnerID. Saving always appends a fresh row; it never merges with
	// prior lists.
	CreateList(ctx context.Context, list models.GroceryList) (int64, error)

	// GetLists returns the decoded item sequences of every list owned by
	// ownerID. Rows whose stored blob cannot be decoded are skipped with a
	// logged warning; one corrupt row never fails the whole call.
	GetLists(ctx context.Context, ownerID int64) ([][]models.ListItem, error)

	// GetListsWithIDs is like GetLists but preserves each row's identity so
	// clients can address individual lists for update or delete.
	GetListsWithIDs(ctx context.Context, ownerID int64) ([]models.GroceryList, error)

	// UpdateList replaces the item sequence of the row matching both listID
	// and ownerID. Returns [ErrListNotFound] when zero rows matched; the
	// store deliberately cannot tell "no such list" from "owned by someone
	// else".
	UpdateList(ctx context.Context, ownerID, listID int64, items []models.ListItem) error

	// DeleteList removes the row matching both keys, with the same
	// [ErrListNotFound] semantics as UpdateList.
	DeleteList(ctx context.Context, ownerID, listID int64) error
}
