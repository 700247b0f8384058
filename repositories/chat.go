//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"

	"guest-push/domain"
	"guest-push/errors"

	"github.com/dgraph-io/badger/v4"
)

type IChatRepository interface {
	GetChat(id string) (domain.Chat, error)
	SaveChat(chat domain.Chat) error
}

type ChatRepository struct {
	db *badger.DB
}

func NewChatRepository(db *badger.DB) IChatRepository {
	return &ChatRepository{db: db}
}

func chatKey(id string) []byte {
	return []byte("chat:" + id)
}

// GetChat retrieves a chat and its participant list.
// Returns ErrChatNotFound when no record exists under the key.
func (c ChatRepository) GetChat(id string) (domain.Chat, error) {
	var chat domain.Chat

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chatKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &chat)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Chat{}, errors.ErrChatNotFound
	}
	if err != nil {
		return domain.Chat{}, fmt.Errorf("reading chat %s: %w", id, err)
	}

	return chat, nil
}

// SaveChat persists the chat record, overwriting any previous participant list.
func (c ChatRepository) SaveChat(chat domain.Chat) error {
	data, err := json.Marshal(chat)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chatKey(chat.ID), data)
	})
}
