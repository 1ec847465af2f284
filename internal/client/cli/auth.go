package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/habitkeeper/internal/client/services"
	"github.com/dmitrijs2005/habitkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// credentials prompts for an email and a password. The caller wipes the password.
func (a *App) credentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// SignUp prompts for credentials, creates the account and logs it in.
//
// On success the dashboard is rendered. Service errors (ErrorValidation,
// ErrorAlreadyExists) are returned unchanged and the session is not touched.
func (a *App) SignUp(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.accountService.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	a.session = s
	a.log.Info(ctx, "signed up", "email", s.Email)

	return a.Dashboard(ctx)
}

// Login prompts for credentials and switches the session on success.
// A failed attempt returns ErrorInvalidCredentials and leaves the current
// session as it was.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.accountService.Login(ctx, email, password)
	if err != nil {
		a.log.Info(ctx, "login unsuccessful", "email", email)
		return err
	}
	a.session = s
	a.log.Info(ctx, "logged in", "email", s.Email)

	return a.Dashboard(ctx)
}

// Logout forgets the current user. Account data stays in the store.
func (a *App) Logout(ctx context.Context) error {
	if err := a.accountService.Logout(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out", "email", a.session.Email)
	a.session = services.Session{}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
