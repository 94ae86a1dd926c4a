package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"unitsync-backend/internal/middleware"
)

// pathID parses the {id} path variable
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	return id, err == nil && id > 0
}

// canAccess reports whether the caller may touch a resource owned by
// landlordID. Admins may touch anything.
func canAccess(ctx context.Context, landlordID int) bool {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return false
	}
	if userID == landlordID {
		return true
	}
	role, _ := middleware.GetRoleFromContext(ctx)
	return role == "admin"
}
