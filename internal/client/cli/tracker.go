package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/habitkeeper/internal/client/services"
)

// Quote prints Tim's thought for today. It works without a session.
func (a *App) Quote(ctx context.Context) error {
	q, err := a.quoteService.DailyQuote(ctx, a.today())
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.colors.accent.Sprint("Tim says:"), q)
	return nil
}

func (a *App) Progress(ctx context.Context) error {
	n, err := a.progressService.GetProgress(ctx, a.session.Email)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, progressLine(n))
	return nil
}

// AdjustProgress moves the chapter counter by delta; the service clamps it.
func (a *App) AdjustProgress(ctx context.Context, delta int) error {
	n, err := a.progressService.AdjustProgress(ctx, a.session.Email, delta)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, progressLine(n))
	return nil
}

func (a *App) CheckIn(ctx context.Context, habit string) error {
	st, err := a.habitService.CheckIn(ctx, a.session.Email, habit, a.today())
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.habitLine(st))
	return nil
}

// Habits renders the Progress & Habit Tracker panel. Suggested habits
// appear even before their first check-in.
func (a *App) Habits(ctx context.Context) error {
	list, err := a.habitService.List(ctx, a.session.Email, a.today())
	if err != nil {
		return err
	}

	for _, name := range suggestedHabits {
		if !slices.ContainsFunc(list, func(s services.HabitStatus) bool { return s.Name == name }) {
			list = append(list, services.HabitStatus{Name: name})
		}
	}
	slices.SortFunc(list, func(x, y services.HabitStatus) int {
		return strings.Compare(x.Name, y.Name)
	})

	lines := make([]string, 0, len(list))
	for _, st := range list {
		lines = append(lines, a.habitLine(st))
	}
	a.panel(a.out, "Progress & Habit Tracker", lines...)
	return nil
}

func (a *App) habitLine(st services.HabitStatus) string {
	mark := " "
	if st.Today {
		mark = a.colors.good.Sprint("v")
	}
	return fmt.Sprintf("%s %-14s %s streak %d, %d days total",
		mark, st.Name, renderBar(st.Streak, streakWindow, streakWindow), st.Streak, st.Days)
}
