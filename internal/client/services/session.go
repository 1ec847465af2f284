package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
)

// Session is the current-user pointer. The zero value is anonymous.
type Session struct {
	Email string
}

// Anonymous reports whether nobody is logged in.
func (s Session) Anonymous() bool {
	return s.Email == ""
}

func readSession(ctx context.Context, store kvstore.Store) (Session, error) {
	v, err := store.Get(ctx, models.KeyCurrentUser)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	return Session{Email: string(v)}, nil
}

func writeSession(ctx context.Context, store kvstore.Store, email string) (Session, error) {
	if err := store.Set(ctx, models.KeyCurrentUser, []byte(email)); err != nil {
		return Session{}, fmt.Errorf("write session: %w", err)
	}
	return Session{Email: email}, nil
}

func clearSession(ctx context.Context, store kvstore.Store) error {
	if err := store.Delete(ctx, models.KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
