package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mealcart/list-keeper/internal/logger"
	"github.com/mealcart/list-keeper/models"
)

// listRepository is the SQL-backed implementation of [ListRepository].
// It executes all grocery-list operations against the "grocery_lists" table
// using the embedded [*DB] connection and its squirrel statement builder.
//
// Every query is scoped by owner_id: a list ID alone is never enough to read
// or mutate a row.
type listRepository struct {
	*DB
	logger *logger.Logger
}

// NewListRepository constructs a [ListRepository] backed by the provided
// database connection and logger.
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateList encodes the item sequence to its persisted text form and inserts
// a new row owned by list.OwnerID. A save is always an append; existing rows
// are never merged or overwritten.
func (r *listRepository) CreateList(ctx context.Context, list models.GroceryList) (int64, error) {
	log := logger.FromContext(ctx)

	encoded, err := models.EncodeItems(list.Items)
	if err != nil {
		log.Err(err).Str("func", "listRepository.CreateList").Int64("owner_id", list.OwnerID).
			Msg("failed to encode list items")
		return 0, err
	}

	query, args, err := r.builder.
		Insert(list.TableName()).
		Columns("owner_id", "items").
		Values(list.OwnerID, encoded).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "listRepository.CreateList").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var listID int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&listID); err != nil {
		log.Err(err).Str("func", "listRepository.CreateList").Int64("owner_id", list.OwnerID).
			Msg("failed to insert grocery list")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return listID, nil
}

// GetLists reads every list owned by ownerID and decodes each stored blob.
//
// A row whose blob fails to decode, or whose decoded value is not an item
// sequence, is skipped with a warning log entry; the remaining rows are still
// returned. One corrupt row must not hide a user's other valid lists.
func (r *listRepository) GetLists(ctx context.Context, ownerID int64) ([][]models.ListItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.queryListRows(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([][]models.ListItem, 0, 8)

	for rows.Next() {
		var listID int64
		var encoded string

		if scanErr := rows.Scan(&listID, &encoded); scanErr != nil {
			log.Err(scanErr).Str("func", "listRepository.GetLists").Int64("owner_id", ownerID).
				Msg("failed to scan grocery list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items, decodeErr := models.DecodeItems(encoded)
		if decodeErr != nil {
			// skip-and-continue is the contract for corrupt rows
			log.Warn().Err(decodeErr).Str("func", "listRepository.GetLists").
				Int64("owner_id", ownerID).Int64("list_id", listID).
				Msg("skipping undecodable grocery list row")
			continue
		}

		results = append(results, items)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "listRepository.GetLists").Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetListsWithIDs reads every list owned by ownerID, preserving each row's
// identity alongside its decoded items. The decode-skip contract matches
// [listRepository.GetLists].
func (r *listRepository) GetListsWithIDs(ctx context.Context, ownerID int64) ([]models.GroceryList, error) {
	log := logger.FromContext(ctx)

	rows, err := r.queryListRows(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.GroceryList, 0, 8)

	for rows.Next() {
		var listID int64
		var encoded string

		if scanErr := rows.Scan(&listID, &encoded); scanErr != nil {
			log.Err(scanErr).Str("func", "listRepository.GetListsWithIDs").Int64("owner_id", ownerID).
				Msg("failed to scan grocery list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items, decodeErr := models.DecodeItems(encoded)
		if decodeErr != nil {
			log.Warn().Err(decodeErr).Str("func", "listRepository.GetListsWithIDs").
				Int64("owner_id", ownerID).Int64("list_id", listID).
				Msg("skipping undecodable grocery list row")
			continue
		}

		results = append(results, models.GroceryList{
			ID:      listID,
			OwnerID: ownerID,
			Items:   items,
		})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "listRepository.GetListsWithIDs").Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateList encodes the new item sequence and overwrites the items column of
// the row matching both listID and ownerID.
//
// Returns [ErrListNotFound] when zero rows matched: either the list does not
// exist or it belongs to another user, and the caller is not told which.
func (r *listRepository) UpdateList(ctx context.Context, ownerID, listID int64, items []models.ListItem) error {
	log := logger.FromContext(ctx)

	encoded, err := models.EncodeItems(items)
	if err != nil {
		log.Err(err).Str("func", "listRepository.UpdateList").Int64("owner_id", ownerID).
			Msg("failed to encode list items")
		return err
	}

	query, args, err := r.builder.
		Update("grocery_lists").
		Set("items", encoded).
		Where(sq.Eq{"id": listID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "listRepository.UpdateList").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "listRepository.UpdateList").
			Int64("owner_id", ownerID).Int64("list_id", listID).
			Msg("failed to update grocery list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrListNotFound
	}

	return nil
}

// DeleteList removes the row matching both listID and ownerID, with the same
// zero-rows-affected semantics as [listRepository.UpdateList].
func (r *listRepository) DeleteList(ctx context.Context, ownerID, listID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("grocery_lists").
		Where(sq.Eq{"id": listID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "listRepository.DeleteList").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "listRepository.DeleteList").
			Int64("owner_id", ownerID).Int64("list_id", listID).
			Msg("failed to delete grocery list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrListNotFound
	}

	return nil
}

// queryListRows runs the shared owner-scoped SELECT used by both read paths.
func (r *listRepository) queryListRows(ctx context.Context, ownerID int64) (*sql.Rows, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("id", "items").
		From("grocery_lists").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "listRepository.queryListRows").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "listRepository.queryListRows").Int64("owner_id", ownerID).
			Msg("failed to execute query for grocery lists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rows, nil
}
