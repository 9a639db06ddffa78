package nakama

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"westscore/internal/app"
	"westscore/internal/domain"
)

type gameRequest struct {
	GameID string `json:"gameId"`
}

type gameInfoRequest struct {
	GameID string `json:"gameId"`
	app.GameInfo
}

type roundRequest struct {
	GameID  string            `json:"gameId"`
	RoundID string            `json:"roundId"`
	Round   domain.RoundInput `json:"round"`
}

type settingsRequest struct {
	GameID   string               `json:"gameId"`
	Settings domain.SettingsPatch `json:"settings"`
}

type sharedGameRequest struct {
	Token string `json:"token"`
}

type gameListResponse struct {
	Games []domain.Game `json:"games"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

var errBadPayload = errors.New("invalid payload")

// decodePayload unmarshals an RPC payload. An empty payload leaves v untouched.
func decodePayload(payload string, v interface{}) error {
	if strings.TrimSpace(payload) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("%w: %v", errBadPayload, err)
	}
	return nil
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", errBadPayload, name)
	}
	return nil
}

func encodeResponse(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
