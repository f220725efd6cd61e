package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mealcart/list-keeper/internal/logger"
	"github.com/mealcart/list-keeper/internal/utils"
	"github.com/mealcart/list-keeper/models"
)

func (h *Handler) saveList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SaveListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	listID, err := h.services.ListService.SaveList(ctx, req.UserID, req.Items)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int64("user_id", req.UserID).Msg("list saving ended with error")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.ListSavedResponse{ListID: listID}, http.StatusCreated)
}

func (h *Handler) getLists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathID(r, "userID")
	if err != nil {
		log.Err(err).Msg("invalid user ID in path")
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	lists, err := h.services.ListService.GetLists(ctx, userID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int64("user_id", userID).Msg("list fetching ended with error")
		http.Error(w, http.StatusText(status), status)
		return
	}
	if lists == nil {
		lists = [][]models.ListItem{}
	}

	utils.WriteJSON(w, models.ListsResponse{Lists: lists}, http.StatusOK)
}

func (h *Handler) getListsDetailed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathID(r, "userID")
	if err != nil {
		log.Err(err).Msg("invalid user ID in path")
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	lists, err := h.services.ListService.GetListsWithIDs(ctx, userID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int64("user_id", userID).Msg("list fetching ended with error")
		http.Error(w, http.StatusText(status), status)
		return
	}

	detailed := make([]models.ListWithID, 0, len(lists))
	for _, list := range lists {
		detailed = append(detailed, models.ListWithID{
			ListID: list.ID,
			Items:  list.Items,
		})
	}

	utils.WriteJSON(w, models.ListsDetailedResponse{Lists: detailed}, http.StatusOK)
}

func (h *Handler) updateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	listID, err := pathID(r, "listID")
	if err != nil {
		log.Err(err).Msg("invalid list ID in path")
		http.Error(w, "invalid list ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ListService.UpdateList(ctx, req.UserID, listID, req.Items); err != nil {
		status := statusFromError(err)
		log.Err(err).Int64("user_id", req.UserID).Int64("list_id", listID).Msg("list update ended with error")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "list updated"}, http.StatusOK)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	listID, err := pathID(r, "listID")
	if err != nil {
		log.Err(err).Msg("invalid list ID in path")
		http.Error(w, "invalid list ID", http.StatusBadRequest)
		return
	}

	var req models.DeleteListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ListService.DeleteList(ctx, req.UserID, listID); err != nil {
		status := statusFromError(err)
		log.Err(err).Int64("user_id", req.UserID).Int64("list_id", listID).Msg("list deletion ended with error")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "list deleted"}, http.StatusOK)
}

// pathID extracts an integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
