//go:generate go run go.uber.org/mock/mockgen -source=staff.go -destination=../mocks/mock_staff_directory.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"

	"guest-push/errors"

	"github.com/dgraph-io/badger/v4"
)

type IStaffDirectory interface {
	Receptionist(hotelID string) (string, error)
	SetReceptionist(hotelID, userID string) error
}

// StaffDirectory maps a hotel to the user account of its receptionist.
// It replaces the legacy convention where receptionist accounts were
// keyed directly by hotel ID.
type StaffDirectory struct {
	db *badger.DB
}

func NewStaffDirectory(db *badger.DB) IStaffDirectory {
	return &StaffDirectory{db: db}
}

func staffKey(hotelID string) []byte {
	return []byte("staff:" + hotelID)
}

// staffEntry is the stored mapping value. A struct rather than a bare
// string so the record can grow (shifts, multiple desks) without a
// key-format migration.
type staffEntry struct {
	UserID string `json:"userId"`
}

// Receptionist returns the user ID handling service requests for a hotel.
// Returns ErrStaffNotFound when no mapping has been registered.
func (s StaffDirectory) Receptionist(hotelID string) (string, error) {
	var entry staffEntry

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(staffKey(hotelID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", errors.ErrStaffNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading staff mapping for hotel %s: %w", hotelID, err)
	}

	return entry.UserID, nil
}

func (s StaffDirectory) SetReceptionist(hotelID, userID string) error {
	data, err := json.Marshal(staffEntry{UserID: userID})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(staffKey(hotelID), data)
	})
}
