package services

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/common"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

// HabitStatus summarizes one habit as of a given day.
type HabitStatus struct {
	Name   string
	Days   int
	Streak int
	Today  bool
}

// HabitService records daily habit check-ins in the account's data.habits.
type HabitService interface {
	// CheckIn marks habit done on today. Repeating it the same day is a no-op.
	CheckIn(ctx context.Context, email, habit, today string) (HabitStatus, error)
	// List returns every habit of email sorted by name.
	List(ctx context.Context, email, today string) ([]HabitStatus, error)
}

type habitService struct {
	users usersTable
	log   logging.Logger
}

func NewHabitService(store kvstore.Store, log logging.Logger) HabitService {
	return &habitService{users: usersTable{store: store, log: log}, log: log}
}

func (s *habitService) CheckIn(ctx context.Context, email, habit, today string) (HabitStatus, error) {
	habit = strings.TrimSpace(habit)
	if habit == "" {
		return HabitStatus{}, common.ErrorValidation
	}

	users, err := s.users.load(ctx)
	if err != nil {
		return HabitStatus{}, err
	}

	r := s.users.upsert(ctx, users, email)
	days := normalizeDays(r.Data.Habits[habit])
	if i, found := slices.BinarySearch(days, today); !found {
		days = slices.Insert(days, i, today)
		r.Data.Habits[habit] = days
		if err := s.users.save(ctx, users); err != nil {
			return HabitStatus{}, err
		}
		s.log.Debug(ctx, "habit checked in", "email", email, "habit", habit, "date", today)
	}

	return status(habit, days, today), nil
}

func (s *habitService) List(ctx context.Context, email, today string) ([]HabitStatus, error) {
	users, err := s.users.load(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := users[email]
	if !ok {
		return nil, nil
	}

	out := make([]HabitStatus, 0, len(r.Data.Habits))
	for name, days := range r.Data.Habits {
		out = append(out, status(name, normalizeDays(days), today))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func normalizeDays(days []string) []string {
	sorted := slices.Clone(days)
	sort.Strings(sorted)
	return slices.Compact(sorted)
}

// status computes the streak ending today, or ending yesterday when today
// has no check-in yet. days must be sorted and unique.
func status(name string, days []string, today string) HabitStatus {
	st := HabitStatus{Name: name, Days: len(days)}
	_, st.Today = slices.BinarySearch(days, today)

	day, err := time.Parse(DateLayout, today)
	if err != nil {
		return st
	}
	if !st.Today {
		day = day.AddDate(0, 0, -1)
	}
	for {
		if _, found := slices.BinarySearch(days, day.Format(DateLayout)); !found {
			break
		}
		st.Streak++
		day = day.AddDate(0, 0, -1)
	}
	return st
}
