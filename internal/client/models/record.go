// Package models defines the records habitkeeper keeps in the key-value
// store and their textual encoding.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level is the learner's self-assessed level.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelHard         Level = "Hard"
)

// Levels lists the selectable levels in display order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelHard}

// ParseLevel matches s case-insensitively against Levels.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// Profile is the editable part of an account. Age is free text.
type Profile struct {
	Name  string `json:"name"`
	Age   string `json:"age"`
	Level Level  `json:"level"`
	Genre string `json:"genre"`
}

// DefaultProfile is what the editor starts from when nothing was saved yet.
func DefaultProfile() Profile {
	return Profile{Level: LevelBeginner, Genre: "General"}
}

// UserData holds per-account tracker state. Habits maps a habit name to the
// sorted list of days (YYYY-MM-DD) it was checked in.
type UserData struct {
	Progress map[string]int      `json:"progress"`
	Habits   map[string][]string `json:"habits"`
}

// UserRecord is one entry of the users table. Profile is nil until the
// user saves one.
type UserRecord struct {
	Password string   `json:"password"`
	Profile  *Profile `json:"profile"`
	Data     UserData `json:"data"`

	// raw holds a stored record that could not be read at all. It is
	// written back verbatim.
	raw json.RawMessage
}

// Unreadable reports whether the record was kept as raw stored JSON.
// Such a record cannot be logged into.
func (r *UserRecord) Unreadable() bool {
	return r.raw != nil
}

func (r UserRecord) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	type record UserRecord
	return json.Marshal(record(r))
}

// NewUserRecord returns a record with no profile and empty data.
func NewUserRecord(password string) *UserRecord {
	r := &UserRecord{Password: password}
	r.normalize()
	return r
}

func (r *UserRecord) normalize() {
	if r.Data.Progress == nil {
		r.Data.Progress = map[string]int{}
	}
	if r.Data.Habits == nil {
		r.Data.Habits = map[string][]string{}
	}
}

// UsersTable maps a login email, verbatim and case-sensitive, to its record.
type UsersTable map[string]*UserRecord
