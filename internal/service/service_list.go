package service

import (
	"context"

	"github.com/mealcart/list-keeper/internal/logger"
	"github.com/mealcart/list-keeper/internal/store"
	"github.com/mealcart/list-keeper/models"
)

type listService struct {
	listRepository store.ListRepository

	logger *logger.Logger
}

func NewListService(listRepository store.ListRepository, logger *logger.Logger) ListService {
	return &listService{
		listRepository: listRepository,
		logger:         logger,
	}
}

// SaveList stores items as a brand-new list owned by ownerID and returns the
// assigned list ID. Saving never merges with or replaces an existing list.
func (l *listService) SaveList(ctx context.Context, ownerID int64, items []models.ListItem) (int64, error) {
	if items == nil {
		return 0, ErrInvalidDataProvided
	}

	return l.listRepository.CreateList(ctx, models.GroceryList{
		OwnerID: ownerID,
		Items:   items,
	})
}

func (l *listService) GetLists(ctx context.Context, ownerID int64) ([][]models.ListItem, error) {
	return l.listRepository.GetLists(ctx, ownerID)
}

func (l *listService) GetListsWithIDs(ctx context.Context, ownerID int64) ([]models.GroceryList, error) {
	return l.listRepository.GetListsWithIDs(ctx, ownerID)
}

func (l *listService) UpdateList(ctx context.Context, ownerID, listID int64, items []models.ListItem) error {
	if items == nil {
		return ErrInvalidDataProvided
	}

	return l.listRepository.UpdateList(ctx, ownerID, listID, items)
}

func (l *listService) DeleteList(ctx context.Context, ownerID, listID int64) error {
	return l.listRepository.DeleteList(ctx, ownerID, listID)
}
