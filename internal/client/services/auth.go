package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
	"github.com/dmitrijs2005/habitkeeper/internal/common"
	"github.com/dmitrijs2005/habitkeeper/internal/cryptox"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

// PasswordMode decides how SignUp stores new passwords.
type PasswordMode string

const (
	// PasswordPlain stores the password verbatim, matching the browser layout.
	PasswordPlain PasswordMode = "plain"
	// PasswordArgon2id stores an argon2id hash (see cryptox.HashPassword).
	PasswordArgon2id PasswordMode = "argon2id"
)

// AccountService creates accounts and moves the session pointer.
//
// Contract:
//   - SignUp: ErrorValidation on empty email or password, ErrorAlreadyExists
//     when the email is taken; otherwise stores a fresh record and logs in.
//   - Login: ErrorInvalidCredentials for an unknown email or wrong password;
//     the session is left alone on failure.
//   - Logout: clears the session, never the account data.
//   - Current: the persisted session, which may point at a missing account.
type AccountService interface {
	SignUp(ctx context.Context, email string, password []byte) (Session, error)
	Login(ctx context.Context, email string, password []byte) (Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (Session, error)
}

type accountService struct {
	store kvstore.Store
	users usersTable
	mode  PasswordMode
	log   logging.Logger
}

// NewAccountService constructs an AccountService over store.
func NewAccountService(store kvstore.Store, log logging.Logger, mode PasswordMode) AccountService {
	return &accountService{
		store: store,
		users: usersTable{store: store, log: log},
		mode:  mode,
		log:   log,
	}
}

func (a *accountService) SignUp(ctx context.Context, email string, password []byte) (Session, error) {
	if email == "" || len(password) == 0 {
		return Session{}, common.ErrorValidation
	}

	users, err := a.users.load(ctx)
	if err != nil {
		return Session{}, err
	}
	if _, ok := users[email]; ok {
		return Session{}, common.ErrorAlreadyExists
	}

	users[email] = models.NewUserRecord(a.encodePassword(password))
	if err := a.users.save(ctx, users); err != nil {
		return Session{}, err
	}

	s, err := writeSession(ctx, a.store, email)
	if err != nil {
		return Session{}, err
	}
	a.log.Info(ctx, "account created", "email", email, "password_mode", string(a.mode))
	return s, nil
}

func (a *accountService) encodePassword(password []byte) string {
	if a.mode == PasswordArgon2id {
		return cryptox.HashPassword(password)
	}
	return string(password)
}

func (a *accountService) Login(ctx context.Context, email string, password []byte) (Session, error) {
	users, err := a.users.load(ctx)
	if err != nil {
		return Session{}, err
	}

	r, ok := users[email]
	if !ok || r.Unreadable() || !a.passwordMatches(ctx, email, r.Password, password) {
		a.log.Debug(ctx, "login rejected", "email", email)
		return Session{}, common.ErrorInvalidCredentials
	}

	s, err := writeSession(ctx, a.store, email)
	if err != nil {
		return Session{}, err
	}
	a.log.Info(ctx, "logged in", "email", email)
	return s, nil
}

// passwordMatches accepts hashed records regardless of the current mode so
// that switching modes never locks anybody out.
func (a *accountService) passwordMatches(ctx context.Context, email, stored string, password []byte) bool {
	if cryptox.IsHashed(stored) {
		ok, err := cryptox.VerifyPassword(stored, password)
		if err != nil {
			a.log.Warn(ctx, "unreadable password hash", "email", email, "error", err)
			return false
		}
		return ok
	}
	return subtle.ConstantTimeCompare([]byte(stored), password) == 1
}

func (a *accountService) Logout(ctx context.Context) error {
	if err := clearSession(ctx, a.store); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *accountService) Current(ctx context.Context) (Session, error) {
	s, err := readSession(ctx, a.store)
	if err != nil {
		return Session{}, fmt.Errorf("current session: %w", err)
	}
	return s, nil
}
