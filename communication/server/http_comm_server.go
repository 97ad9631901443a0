package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"connectfour/agent"
	"connectfour/communication"
	"connectfour/game"

	"github.com/rs/zerolog/log"
)

type Server struct {
	mu     sync.Mutex
	agents [2]agent.Agent
}

// NewServer answers move requests with the choice of first or second,
// whichever is to move on the requested board. Requests are served one at a
// time since agents are not required to be safe for concurrent use.
func NewServer(first, second agent.Agent) *Server {
	if first == nil || second == nil {
		panic("need an agent for both players")
	}
	return &Server{agents: [2]agent.Agent{first, second}}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(communication.FindMovePath, s.handleFindMove)
	return mux
}

// ListenAndServe starts an agent server on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s ...", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload communication.FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Board == nil {
		http.Error(w, "bad request: missing board", http.StatusBadRequest)
		return
	}

	current := s.agents[0]
	if payload.Board.ToMove() == game.Second {
		current = s.agents[1]
	}
	s.mu.Lock()
	column := current.FindMove(payload.Board)
	s.mu.Unlock()
	log.Debug().Int("column", column).Int("discs", payload.Board.Discs()).Msg("served move")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(communication.FindMoveResponse{Column: column}); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
