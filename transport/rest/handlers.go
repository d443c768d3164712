package rest

import (
	"encoding/json"
	"net/http"

	"github.com/ninecell/tictactoe-solo-backend/internal/entity"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleCurrentGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleCurrentGame")

	game, err := that.session.CurrentGame(r.Context())
	if err != nil {
		log.Error("failed to get current game", "error", err)
		that.writeError(w, http.StatusInternalServerError, "failed to get current game")

		return
	}

	that.writeGame(w, game)
}

// handleTurn - applies a player move. An invalid move is not a failure: the
// unchanged snapshot comes back with 200, mirroring a disabled cell in the UI.
func (that *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleTurn")

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Cell == nil {
		that.writeError(w, http.StatusBadRequest, "cell is required")
		return
	}

	game, err := that.session.SubmitMove(r.Context(), *req.Cell)
	if err != nil {
		log.Error("failed to submit move", "cell", *req.Cell, "error", err)
		that.writeError(w, http.StatusInternalServerError, "failed to submit move")

		return
	}

	that.writeGame(w, game)
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleReset")

	game, err := that.session.Reset(r.Context())
	if err != nil {
		log.Error("failed to reset game", "error", err)
		that.writeError(w, http.StatusInternalServerError, "failed to reset game")

		return
	}

	that.writeGame(w, game)
}

func (that *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleDemo")

	game, err := that.session.StartOpponentDemo(r.Context())
	if err != nil {
		log.Error("failed to start opponent demo", "error", err)
		that.writeError(w, http.StatusInternalServerError, "failed to start opponent demo")

		return
	}

	that.writeGame(w, game)
}

func (that *Server) writeGame(w http.ResponseWriter, game *entity.Game) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(newGameResponse(game)); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		that.logger.Error("failed to encode error response", "error", err)
	}
}
