//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=../mocks/mock_resolver.go -package=mocks

// Package notify maps domain events to push notifications: it resolves
// recipients, renders payloads and hands them to the push transport.
package notify

import (
	"fmt"

	"guest-push/errors"
	"guest-push/repositories"
)

type IResolver interface {
	Resolve(userID string) (string, error)
}

// Resolver turns a user ID into that user's current push token.
type Resolver struct {
	users repositories.IUserRepository
}

func NewResolver(users repositories.IUserRepository) IResolver {
	return &Resolver{users: users}
}

// Resolve returns the push token on file for a user, or "" when the user
// is unknown or never registered a device. Both absences are expected
// states, not errors; only store I/O failures are returned as errors.
func (r *Resolver) Resolve(userID string) (string, error) {
	user, err := r.users.GetUser(userID)
	if errors.Is(err, errors.ErrUserNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("resolving recipient %s: %w", userID, err)
	}

	return user.PushToken, nil
}
