package nakama

import (
	"context"
	"fmt"

	"westscore/internal/domain"
	"westscore/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// storageEngine is the slice of runtime.NakamaModule the game store needs.
type storageEngine interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// NakamaGameStore keeps one user's game list in a single storage object.
// Clients may read the object directly; only the server writes it.
type NakamaGameStore struct {
	nk         storageEngine
	collection string
	key        string
	userID     string
}

// NewNakamaGameStore creates a store bound to userID.
func NewNakamaGameStore(nk storageEngine, collection, key, userID string) *NakamaGameStore {
	return &NakamaGameStore{
		nk:         nk,
		collection: collection,
		key:        key,
		userID:     userID,
	}
}

// Load reads the user's games. A missing object is an empty list.
func (s *NakamaGameStore) Load(ctx context.Context) ([]domain.Game, error) {
	if s.userID == "" {
		return nil, fmt.Errorf("userID is required")
	}

	objects, err := s.nk.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: s.collection,
			Key:        s.key,
			UserID:     s.userID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read games for user %s: %w", s.userID, err)
	}
	if len(objects) == 0 {
		return []domain.Game{}, nil
	}
	return ports.DecodeGames([]byte(objects[0].Value))
}

// Save overwrites the user's games.
func (s *NakamaGameStore) Save(ctx context.Context, games []domain.Game) error {
	if s.userID == "" {
		return fmt.Errorf("userID is required")
	}

	value, err := ports.EncodeGames(games)
	if err != nil {
		return err
	}

	_, err = s.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      s.collection,
			Key:             s.key,
			UserID:          s.userID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write games for user %s: %w", s.userID, err)
	}
	return nil
}

var _ ports.GameStore = (*NakamaGameStore)(nil)
