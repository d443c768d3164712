package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninecell/tictactoe-solo-backend/internal/entity"
)

var errStorageDown = errors.New("storage down")

// fakeSession serves a canned game and records the submitted cell.
type fakeSession struct {
	game *entity.Game
	err  error

	submittedCell int
	resetCalled   bool
	demoCalled    bool
}

func (that *fakeSession) CurrentGame(_ context.Context) (*entity.Game, error) {
	return that.game, that.err
}

func (that *fakeSession) SubmitMove(_ context.Context, cell int) (*entity.Game, error) {
	that.submittedCell = cell
	return that.game, that.err
}

func (that *fakeSession) Reset(_ context.Context) (*entity.Game, error) {
	that.resetCalled = true
	return that.game, that.err
}

func (that *fakeSession) StartOpponentDemo(_ context.Context) (*entity.Game, error) {
	that.demoCalled = true
	return that.game, that.err
}

func newTestServer(session *fakeSession) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(logger, session)
}

func decodeGameResponse(t *testing.T, body io.Reader) GameResponse {
	t.Helper()

	var resp GameResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))

	return resp
}

func TestServer_HandlePing(t *testing.T) {
	// Given: a server with no session behind it
	server := newTestServer(&fakeSession{game: entity.NewGame()})

	// When: GET /ping
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Then: pong
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_HandleCurrentGame(t *testing.T) {
	t.Run("Returns the snapshot of a fresh game", func(t *testing.T) {
		// Given: a fresh game behind the server
		server := newTestServer(&fakeSession{game: entity.NewGame()})

		// When: GET /game
		rec := httptest.NewRecorder()
		server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/game", nil))

		// Then: 9 empty cells, all playable, not terminal
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeGameResponse(t, rec.Body)
		assert.Equal(t, []string{"", "", "", "", "", "", "", "", ""}, resp.Board)
		assert.Equal(t, entity.StateInProgress, resp.State)
		assert.Equal(t, entity.MessageYourTurn, resp.Message)
		assert.False(t, resp.Terminal)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, resp.PlayableCells)
	})

	t.Run("Returns the terminal flag for a finished game", func(t *testing.T) {
		// Given: a won game
		game := entity.NewGame()
		game.State = entity.StatePlayerWon
		game.Message = entity.MessageVictory
		server := newTestServer(&fakeSession{game: game})

		// When: GET /game
		rec := httptest.NewRecorder()
		server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/game", nil))

		// Then: terminal with no playable cells
		resp := decodeGameResponse(t, rec.Body)
		assert.True(t, resp.Terminal)
		assert.Empty(t, resp.PlayableCells)
	})

	t.Run("Returns 500 when the session cannot be loaded", func(t *testing.T) {
		// Given: a failing session
		server := newTestServer(&fakeSession{err: errStorageDown})

		// When: GET /game
		rec := httptest.NewRecorder()
		server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/game", nil))

		// Then: internal server error
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_HandleTurn(t *testing.T) {
	t.Run("Submits the cell from the request body", func(t *testing.T) {
		// Given: a server and a turn request for cell 4
		session := &fakeSession{game: entity.NewGame()}
		server := newTestServer(session)

		// When: POST /game/turn
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/game/turn", strings.NewReader(`{"cell": 4}`))
		server.Routes().ServeHTTP(rec, req)

		// Then: the cell reached the session layer
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 4, session.submittedCell)
	})

	t.Run("Cell 0 is a valid cell", func(t *testing.T) {
		// Given: a turn request for cell 0
		session := &fakeSession{game: entity.NewGame()}
		server := newTestServer(session)

		// When: POST /game/turn
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/game/turn", strings.NewReader(`{"cell": 0}`))
		server.Routes().ServeHTTP(rec, req)

		// Then: accepted, not mistaken for a missing field
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, session.submittedCell)
	})

	t.Run("Returns 400 on a malformed body", func(t *testing.T) {
		server := newTestServer(&fakeSession{game: entity.NewGame()})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/game/turn", strings.NewReader(`{"cell": `))
		server.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Returns 400 when cell is missing", func(t *testing.T) {
		server := newTestServer(&fakeSession{game: entity.NewGame()})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/game/turn", strings.NewReader(`{}`))
		server.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Returns 500 when the session fails", func(t *testing.T) {
		server := newTestServer(&fakeSession{err: errStorageDown})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/game/turn", strings.NewReader(`{"cell": 4}`))
		server.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_HandleReset(t *testing.T) {
	// Given: a server
	session := &fakeSession{game: entity.NewGame()}
	server := newTestServer(session)

	// When: POST /game/reset
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/game/reset", nil))

	// Then: the reset reached the session layer and a snapshot came back
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, session.resetCalled)

	resp := decodeGameResponse(t, rec.Body)
	assert.Equal(t, entity.StateInProgress, resp.State)
}

func TestServer_HandleDemo(t *testing.T) {
	// Given: a demo game with one O placed
	game := entity.NewGame()
	game.Board[2] = entity.OpponentMark
	session := &fakeSession{game: game}
	server := newTestServer(session)

	// When: POST /game/demo
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/game/demo", nil))

	// Then: the demo reached the session layer and cell 2 is out of play
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, session.demoCalled)

	resp := decodeGameResponse(t, rec.Body)
	assert.Equal(t, entity.OpponentMark, resp.Board[2])
	assert.NotContains(t, resp.PlayableCells, 2)
}
