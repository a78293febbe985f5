package main

import (
	"encoding/json"
	"fmt"
)

// Outbound commands. Every message carries an "action" discriminator; the
// server ignores unknown fields, so each command is its own struct rather
// than one kitchen-sink shape.

type joinCommand struct {
	Action   string `json:"action"`
	Username string `json:"username"`
}

type moveCommand struct {
	Action    string   `json:"action"`
	Direction string   `json:"direction,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
}

type stopCommand struct {
	Action string `json:"action"`
}

// wireActor mirrors a full actor record as the server sends it in join
// replies and player_joined broadcasts.
type wireActor struct {
	ID             string  `json:"id"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Facing         string  `json:"facing"`
	IsMoving       bool    `json:"isMoving"`
	AnimationFrame int     `json:"animationFrame"`
	Username       string  `json:"username"`
	Avatar         string  `json:"avatar"`
}

// actorUpdate is a partial actor record from players_moved. Pointer fields
// distinguish "absent" from zero so merges never clobber prior values.
type actorUpdate struct {
	X              *float64 `json:"x"`
	Y              *float64 `json:"y"`
	Facing         *string  `json:"facing"`
	IsMoving       *bool    `json:"isMoving"`
	AnimationFrame *int     `json:"animationFrame"`
}

// wireAvatar is one avatar definition: per-direction ordered frame refs.
// Sequences may differ in length per direction and "west" may be absent
// entirely; rendering mirrors east in that case.
type wireAvatar struct {
	Name   string              `json:"name"`
	Frames map[string][]string `json:"frames"`
}

type joinGameReply struct {
	Success  bool                  `json:"success"`
	PlayerID string                `json:"playerId"`
	Players  map[string]wireActor  `json:"players"`
	Avatars  map[string]wireAvatar `json:"avatars"`
	Error    string                `json:"error"`
}

type playerJoined struct {
	Player wireActor  `json:"player"`
	Avatar wireAvatar `json:"avatar"`
}

type playersMoved struct {
	Players map[string]actorUpdate `json:"players"`
}

type playerLeft struct {
	PlayerID string `json:"playerId"`
}

// decodeServerMessage validates the action discriminator and decodes the
// full message for it. Anything unrecognized or malformed is returned as an
// error so the caller can drop the single message without touching state.
func decodeServerMessage(data []byte) (interface{}, error) {
	var probe struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse message: %w", err)
	}
	switch probe.Action {
	case "join_game":
		var m joinGameReply
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("join_game: %w", err)
		}
		return m, nil
	case "player_joined":
		var m playerJoined
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("player_joined: %w", err)
		}
		return m, nil
	case "players_moved":
		var m playersMoved
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("players_moved: %w", err)
		}
		return m, nil
	case "player_left":
		var m playerLeft
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("player_left: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown action %q", probe.Action)
	}
}
