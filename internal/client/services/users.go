// Package services contains the habitkeeper application services: accounts
// and the session pointer, profiles, chapter progress, the daily quote,
// habit check-ins and store backups.
//
// Every operation reloads the record it touches from the key-value store,
// mutates it and writes the whole record back. There is no caching between
// calls and no locking: the last writer wins.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
	"github.com/dmitrijs2005/habitkeeper/internal/common"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

// usersTable loads and saves the whole users table.
type usersTable struct {
	store kvstore.Store
	log   logging.Logger
}

// load returns the current table. An unreadable table is logged and
// treated as empty. Damaged records are logged and kept, so saving the
// table back never drops other accounts.
func (u usersTable) load(ctx context.Context) (models.UsersTable, error) {
	raw, err := u.store.Get(ctx, models.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	users, err := models.DecodeUsers(raw)
	switch {
	case errors.Is(err, common.ErrorMalformedStoredData):
		u.log.Warn(ctx, "discarding unreadable users table", "error", err)
		return users, nil
	case errors.Is(err, common.ErrorDamagedRecord):
		u.log.Warn(ctx, "users table has damaged records", "error", err)
		return users, nil
	}
	return users, err
}

func (u usersTable) save(ctx context.Context, users models.UsersTable) error {
	b, err := models.EncodeUsers(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := u.store.Set(ctx, models.KeyUsers, b); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// upsert returns the record for email, creating an empty one (no password)
// when the session points at an account that does not exist or whose
// record is unreadable.
func (u usersTable) upsert(ctx context.Context, users models.UsersTable, email string) *models.UserRecord {
	r, ok := users[email]
	switch {
	case !ok:
		u.log.Warn(ctx, "creating record for unknown account", "email", email)
	case r.Unreadable():
		u.log.Warn(ctx, "replacing unreadable record", "email", email)
	default:
		return r
	}
	r = models.NewUserRecord("")
	users[email] = r
	return r
}
