//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"

	"guest-push/domain"
	"guest-push/errors"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	GetUser(id string) (domain.User, error)
	SaveUser(user domain.User) error
	SetPushToken(id, token string) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

func userKey(id string) []byte {
	return []byte("user:" + id)
}

// GetUser retrieves a user record by ID.
// Returns ErrUserNotFound when no record exists under the key.
func (u UserRepository) GetUser(id string) (domain.User, error) {
	var user domain.User

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("reading user %s: %w", id, err)
	}

	return user, nil
}

// SaveUser persists the full user record, overwriting any previous state.
func (u UserRepository) SaveUser(user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(user.ID), data)
	})
}

// SetPushToken registers the push-delivery token of a device.
// The record is created on the fly when the user is unknown, so token
// registration never depends on profile creation order.
func (u UserRepository) SetPushToken(id, token string) error {
	user, err := u.GetUser(id)
	if errors.Is(err, errors.ErrUserNotFound) {
		user = domain.User{ID: id}
	} else if err != nil {
		return err
	}

	user.PushToken = token
	return u.SaveUser(user)
}
