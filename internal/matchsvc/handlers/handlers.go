package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
	"github.com/nrdev/scrim-services/internal/matchsvc/service"
)

type Handler struct {
	progressService *service.ProgressService
	gameService     *service.GameService
}

func NewHandler(progressService *service.ProgressService, gameService *service.GameService) *Handler {
	return &Handler{
		progressService: progressService,
		gameService:     gameService,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "match service is running at port " + os.Getenv("MATCH_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}

// SaveResultHandler accepts a result submission for one game.
func (h *Handler) SaveResultHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	gameID := chi.URLParam(r, "gameID")

	result := &models.MatchResult{}
	if err := json.NewDecoder(r.Body).Decode(result); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid result payload"})
		return
	}
	result.MatchID = matchID
	result.GameID = gameID

	out, err := h.progressService.SaveResult(r.Context(), gameID, result)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusUnprocessableEntity, Error: err.Error()})
		return
	}
	h.CreateResponse(w, Response{Message: "result saved", Code: http.StatusOK, Data: out})
}

// ListGamesHandler returns the match's games in round order with map metadata.
func (h *Handler) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	games, err := h.gameService.ListGames(r.Context(), matchID)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: err.Error()})
		return
	}
	h.CreateResponse(w, Response{Message: "ok", Code: http.StatusOK, Data: games})
}

// InitGamesHandler creates the match's game rows from its map list.
func (h *Handler) InitGamesHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	if err := h.gameService.InitializeGames(r.Context(), matchID); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusUnprocessableEntity, Error: err.Error()})
		return
	}
	h.CreateResponse(w, Response{Message: "games initialized", Code: http.StatusOK})
}
