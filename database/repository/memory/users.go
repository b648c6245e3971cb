package memoryRepo

import (
	"context"
	"fmt"

	"bookingschedule/models"

	"github.com/google/uuid"
)

type userStore struct{ s *Store }

func (u *userStore) GetByUsername(_ context.Context, username string) (*models.MerchantUser, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	user, ok := u.s.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (u *userStore) Create(_ context.Context, user *models.MerchantUser) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, exists := u.s.users[user.Username]; exists {
		return fmt.Errorf("user %s already exists", user.Username)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	u.s.users[user.Username] = *user
	return nil
}

func (u *userStore) EnsureIndexes(context.Context) error { return nil }
