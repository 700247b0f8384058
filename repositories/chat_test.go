package repositories

import (
	"testing"

	"guest-push/domain"
	"guest-push/errors"

	"github.com/stretchr/testify/require"
)

func TestChatRepository_SaveAndGet(t *testing.T) {
	req := require.New(t)
	repo := NewChatRepository(setupTestDB(t))

	chat := domain.Chat{ID: "c1", Participants: []string{"A", "B", "C"}}
	req.NoError(repo.SaveChat(chat))

	stored, err := repo.GetChat("c1")
	req.NoError(err)
	req.Equal(chat, stored)
}

func TestChatRepository_GetMissingChat(t *testing.T) {
	req := require.New(t)
	repo := NewChatRepository(setupTestDB(t))

	_, err := repo.GetChat("ghost")
	req.ErrorIs(err, errors.ErrChatNotFound)
}

func TestChatRepository_SaveOverwritesParticipants(t *testing.T) {
	req := require.New(t)
	repo := NewChatRepository(setupTestDB(t))

	req.NoError(repo.SaveChat(domain.Chat{ID: "c1", Participants: []string{"A", "B"}}))
	req.NoError(repo.SaveChat(domain.Chat{ID: "c1", Participants: []string{"A", "B", "C"}}))

	stored, err := repo.GetChat("c1")
	req.NoError(err)
	req.Equal([]string{"A", "B", "C"}, stored.Participants)
}
