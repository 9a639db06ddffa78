package ports

import (
	"bytes"
	"encoding/json"
	"fmt"

	"westscore/internal/domain"
)

// GameBlob is the stored representation of a game list. It is a JSON object
// rather than a bare array because the Nakama storage engine only accepts objects.
type GameBlob struct {
	Games []domain.Game `json:"games"`
}

// EncodeGames serializes games into a blob value.
func EncodeGames(games []domain.Game) ([]byte, error) {
	if games == nil {
		games = []domain.Game{}
	}
	data, err := json.Marshal(GameBlob{Games: games})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal games: %w", err)
	}
	return data, nil
}

// DecodeGames parses a blob value. Bare arrays written by the mobile app are
// accepted too. An empty value decodes to an empty list.
func DecodeGames(data []byte) ([]domain.Game, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []domain.Game{}, nil
	}

	var games []domain.Game
	if data[0] == '[' {
		if err := json.Unmarshal(data, &games); err != nil {
			return nil, fmt.Errorf("failed to unmarshal games: %w", err)
		}
	} else {
		var blob GameBlob
		if err := json.Unmarshal(data, &blob); err != nil {
			return nil, fmt.Errorf("failed to unmarshal games: %w", err)
		}
		games = blob.Games
	}
	if games == nil {
		games = []domain.Game{}
	}
	for i := range games {
		if games[i].Rounds == nil {
			games[i].Rounds = []domain.Round{}
		}
	}
	return games, nil
}
