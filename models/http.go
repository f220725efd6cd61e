package models

// RegisterRequest is the JSON body of POST /api/user/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/user/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the JSON body of POST /api/user/password.
type ChangePasswordRequest struct {
	UserID      int64  `json:"user_id"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateProfileRequest is the JSON body of POST /api/user/profile.
//
// FamilySize is accepted for forward compatibility with the profile screen
// but is not persisted anywhere yet.
type UpdateProfileRequest struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	FamilySize int    `json:"family_size,omitempty"`
}

// SaveListRequest is the JSON body of POST /api/lists.
type SaveListRequest struct {
	UserID int64      `json:"user_id"`
	Items  []ListItem `json:"items"`
}

// UpdateListRequest is the JSON body of PUT /api/lists/{listID}.
type UpdateListRequest struct {
	UserID int64      `json:"user_id"`
	Items  []ListItem `json:"items"`
}

// DeleteListRequest is the JSON body of DELETE /api/lists/{listID}.
type DeleteListRequest struct {
	UserID int64 `json:"user_id"`
}

// UserResponse carries the identity of a registered or authenticated user.
type UserResponse struct {
	UserID int64 `json:"user_id"`
}

// ListSavedResponse carries the identity of a newly created list row.
type ListSavedResponse struct {
	ListID int64 `json:"list_id"`
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListsResponse is the payload of GET /api/lists/{userID}.
type ListsResponse struct {
	Lists [][]ListItem `json:"lists"`
}

// ListWithID is one entry of ListsDetailedResponse.
type ListWithID struct {
	ListID int64      `json:"list_id"`
	Items  []ListItem `json:"items"`
}

// ListsDetailedResponse is the payload of GET /api/lists/{userID}/detailed.
type ListsDetailedResponse struct {
	Lists []ListWithID `json:"lists"`
}
