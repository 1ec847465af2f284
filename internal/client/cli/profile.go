package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
)

// Profile prints the stored profile, or the defaults when none was saved.
func (a *App) Profile(ctx context.Context) error {
	p, saved, err := a.profileService.GetProfile(ctx, a.session.Email)
	if err != nil {
		return err
	}

	lines := []string{
		"Name:  " + p.Name,
		"Age:   " + p.Age,
		"Level: " + string(p.Level),
		"Genre: " + p.Genre,
	}
	if !saved {
		lines = append(lines, a.colors.muted.Sprint("(not saved yet, use editprofile)"))
	}
	a.panel(a.out, "Profile", lines...)
	return nil
}

// EditProfile walks through every field starting from the current profile.
// Pressing Enter keeps a value and "-" clears it. An unknown level keeps
// the previous one.
func (a *App) EditProfile(ctx context.Context) error {
	p, _, err := a.profileService.GetProfile(ctx, a.session.Email)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.colors.header.Sprint("Edit Profile"))
	fmt.Fprintf(a.out, "Press Enter to keep a value, %q to clear it\n", ClearValue)

	if p.Name, err = GetWithDefault(a.reader, "Name", p.Name, a.out); err != nil {
		return err
	}
	if p.Age, err = GetWithDefault(a.reader, "Age", p.Age, a.out); err != nil {
		return err
	}

	levels := make([]string, 0, len(models.Levels))
	for _, l := range models.Levels {
		levels = append(levels, string(l))
	}
	raw, err := GetWithDefault(a.reader, "Level ("+strings.Join(levels, "/")+")", string(p.Level), a.out)
	if err != nil {
		return err
	}
	if l, err := models.ParseLevel(raw); err != nil {
		fmt.Fprintf(a.out, "Level must be one of %s, keeping %s\n", strings.Join(levels, ", "), p.Level)
	} else {
		p.Level = l
	}

	if p.Genre, err = GetWithDefault(a.reader, "Favourite story/comic genre", p.Genre, a.out); err != nil {
		return err
	}

	if err := a.profileService.SaveProfile(ctx, a.session.Email, p); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile saved")
	return nil
}
