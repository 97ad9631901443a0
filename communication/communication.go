package communication

import "connectfour/game"

// FindMovePath is the agent server endpoint that picks a column.
const FindMovePath = "/findmove"

type FindMoveRequest struct {
	Board *game.Board `json:"board"`
}

type FindMoveResponse struct {
	Column int `json:"column"`
}
