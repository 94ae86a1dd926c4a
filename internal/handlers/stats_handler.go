package handlers

import (
	"net/http"

	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/services"
	"unitsync-backend/internal/timeutil"
	"unitsync-backend/pkg/utils"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard returns the caller's portfolio summary for one month
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = timeutil.CurrentMonth()
	}

	stats, err := h.stats.LandlordStats(r.Context(), userID, month)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}
