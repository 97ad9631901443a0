package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectfour/agent"
	"connectfour/communication"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/stretchr/testify/require"
)

func newSearchServer(t *testing.T) *Server {
	t.Helper()
	first, err := agent.NewSearchAgent(searcher.KindAlphaBetaCutoff, 2, game.First)
	require.NoError(t, err)
	second, err := agent.NewSearchAgent(searcher.KindAlphaBetaCutoff, 2, game.Second)
	require.NoError(t, err)
	return NewServer(first, second)
}

func TestNewServerPanicsWithoutAgents(t *testing.T) {
	require.Panics(t, func() { NewServer(agent.NewRandomAgent(1), nil) })
}

func TestHandleFindMove(t *testing.T) {
	t.Run("answers with the agent's column", func(t *testing.T) {
		body := `{"board":{"width":7,"height":6,"columns":[[],[],[],[1,1,1],[2,2,2],[],[]]}}`
		req := httptest.NewRequest(http.MethodPost, communication.FindMovePath, strings.NewReader(body))
		rec := httptest.NewRecorder()

		newSearchServer(t).Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var resp communication.FindMoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, 3, resp.Column)
	})

	t.Run("answers for the side to move", func(t *testing.T) {
		// Second wins in column 4 before First can complete the bottom row.
		body := `{"board":{"width":7,"height":6,"columns":[[1],[1],[1],[],[2,2,2],[],[1]]}}`
		req := httptest.NewRequest(http.MethodPost, communication.FindMovePath, strings.NewReader(body))
		rec := httptest.NewRecorder()

		newSearchServer(t).Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp communication.FindMoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, 4, resp.Column)
	})

	t.Run("rejects other methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, communication.FindMovePath, nil)
		rec := httptest.NewRecorder()

		newSearchServer(t).Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("rejects malformed boards", func(t *testing.T) {
		for _, body := range []string{
			`not json`,
			`{}`,
			`{"board":{"width":2,"height":2,"columns":[[2],[2]]}}`,
		} {
			req := httptest.NewRequest(http.MethodPost, communication.FindMovePath, strings.NewReader(body))
			rec := httptest.NewRecorder()

			newSearchServer(t).Handler().ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})
}
