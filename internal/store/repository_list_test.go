package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mealcart/list-keeper/models"
)

func newTestListRepo(t *testing.T) (*listRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &listRepository{
		DB:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func TestCreateList_Success(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()
	list := models.GroceryList{
		OwnerID: 1,
		Items:   []models.ListItem{{Name: "milk", Quantity: 1}},
	}

	mock.ExpectQuery("INSERT INTO grocery_lists").
		WithArgs(int64(1), `[{"name":"milk","quantity":1}]`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	listID, err := repo.CreateList(ctx, list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listID != 10 {
		t.Errorf("expected list ID=10, got %d", listID)
	}
}

func TestCreateList_DBError(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO grocery_lists").
		WillReturnError(errors.New("db down"))

	_, err := repo.CreateList(ctx, models.GroceryList{OwnerID: 1, Items: []models.ListItem{}})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetLists_Success(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "items"}).
		AddRow(10, `[{"name":"milk","quantity":1}]`).
		AddRow(11, `[{"name":"eggs","quantity":12},{"name":"bread","quantity":2}]`)

	mock.ExpectQuery("SELECT id, items FROM grocery_lists").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	lists, err := repo.GetLists(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0][0].Name != "milk" {
		t.Errorf("expected first item milk, got %s", lists[0][0].Name)
	}
	if len(lists[1]) != 2 {
		t.Errorf("expected second list with 2 items, got %d", len(lists[1]))
	}
}

func TestGetLists_SkipsCorruptRows(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "items"}).
		AddRow(10, `[{"name":"milk","quantity":1}]`).
		AddRow(11, `{not json at all`).
		AddRow(12, `{"name":"object not array"}`).
		AddRow(13, `[{"name":"eggs","quantity":2}]`)

	mock.ExpectQuery("SELECT id, items FROM grocery_lists").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	lists, err := repo.GetLists(ctx, 1)
	if err != nil {
		t.Fatalf("one corrupt row must not fail the call, got: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 decodable lists, got %d", len(lists))
	}
	if lists[1][0].Name != "eggs" {
		t.Errorf("expected surviving list with eggs, got %+v", lists[1])
	}
}

func TestGetLists_Empty(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, items FROM grocery_lists").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "items"}))

	lists, err := repo.GetLists(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("expected no lists, got %d", len(lists))
	}
}

func TestGetLists_QueryError(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, items FROM grocery_lists").
		WithArgs(int64(1)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetLists(ctx, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetLists_ScanError(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	// intentionally wrong shape → scan error
	rows := sqlmock.NewRows([]string{"id"}).AddRow(10)

	mock.ExpectQuery("SELECT id, items FROM grocery_lists").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	_, err := repo.GetLists(ctx, 1)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestGetListsWithIDs_Success(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "items"}).
		AddRow(10, `[{"name":"milk","quantity":1}]`).
		AddRow(11, `[{"name":"eggs","quantity":2}]`)

	mock.ExpectQuery("SELECT id, items FROM grocery_lists").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	lists, err := repo.GetListsWithIDs(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].ID != 10 || lists[1].ID != 11 {
		t.Errorf("expected row identities preserved, got %d and %d", lists[0].ID, lists[1].ID)
	}
	if lists[0].OwnerID != 1 {
		t.Errorf("expected owner ID 1, got %d", lists[0].OwnerID)
	}
}

func TestGetListsWithIDs_SkipsCorruptRows(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "items"}).
		AddRow(10, `broken`).
		AddRow(11, `[{"name":"eggs","quantity":2}]`)

	mock.ExpectQuery("SELECT id, items FROM grocery_lists").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	lists, err := repo.GetListsWithIDs(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 1 {
		t.Fatalf("expected 1 decodable list, got %d", len(lists))
	}
	if lists[0].ID != 11 {
		t.Errorf("expected surviving list ID=11, got %d", lists[0].ID)
	}
}

func TestUpdateList_Success(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()
	items := []models.ListItem{{Name: "eggs", Quantity: 2}}

	mock.ExpectExec("UPDATE grocery_lists").
		WithArgs(`[{"name":"eggs","quantity":2}]`, int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateList(ctx, 1, 10, items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateList_NotOwnedOrMissing(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE grocery_lists").
		WithArgs(sqlmock.AnyArg(), int64(10), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateList(ctx, 2, 10, []models.ListItem{{Name: "x", Quantity: 1}})
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestUpdateList_DBError(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE grocery_lists").
		WillReturnError(errors.New("db down"))

	err := repo.UpdateList(ctx, 1, 10, []models.ListItem{})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestDeleteList_Success(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM grocery_lists").
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteList(ctx, 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteList_NotOwnedOrMissing(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM grocery_lists").
		WithArgs(int64(10), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteList(ctx, 2, 10)
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestDeleteList_MissingEntirely(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM grocery_lists").
		WithArgs(int64(9999), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteList(ctx, 1, 9999)
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}
