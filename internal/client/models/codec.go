package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/habitkeeper/internal/common"
)

// DecodeUsers parses the users table. Empty input is an empty table.
// Input that is not a JSON object yields an empty table together with
// common.ErrorMalformedStoredData so the caller can log it.
//
// Records are decoded one by one. A record of the wrong shape is repaired
// field by field (scalar profile values become text, tracker entries of the
// wrong type are dropped); one that cannot be repaired is kept verbatim and
// reports Unreadable. Either way the table is still returned, with an error
// wrapping common.ErrorDamagedRecord for each such record.
func DecodeUsers(data []byte) (UsersTable, error) {
	users := UsersTable{}
	if len(data) == 0 {
		return users, nil
	}

	var raws map[string]json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return UsersTable{}, fmt.Errorf("%w: users: %v", common.ErrorMalformedStoredData, err)
	}

	var errs []error
	for email, raw := range raws {
		r := &UserRecord{}
		err := json.Unmarshal(raw, r)
		if err == nil {
			r.normalize()
			users[email] = r
			continue
		}

		if repaired, ok := repairRecord(raw); ok {
			users[email] = repaired
			errs = append(errs, fmt.Errorf("%w: users[%s] repaired: %v", common.ErrorDamagedRecord, email, err))
			continue
		}

		r = &UserRecord{raw: slices.Clone(raw)}
		r.normalize()
		users[email] = r
		errs = append(errs, fmt.Errorf("%w: users[%s] unreadable: %v", common.ErrorDamagedRecord, email, err))
	}
	return users, errors.Join(errs...)
}

// repairRecord decodes a record field by field. It fails when the record is
// not an object or its password is not a string.
func repairRecord(raw json.RawMessage) (*UserRecord, bool) {
	var fields struct {
		Password json.RawMessage `json:"password"`
		Profile  json.RawMessage `json:"profile"`
		Data     json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}

	r := &UserRecord{}
	if len(fields.Password) > 0 {
		if err := json.Unmarshal(fields.Password, &r.Password); err != nil {
			return nil, false
		}
	}
	r.Profile = repairProfile(fields.Profile)
	r.Data = repairData(fields.Data)
	r.normalize()
	return r, true
}

func repairProfile(raw json.RawMessage) *Profile {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil
	}
	return &Profile{
		Name:  scalarText(fields["name"]),
		Age:   scalarText(fields["age"]),
		Level: Level(scalarText(fields["level"])),
		Genre: scalarText(fields["genre"]),
	}
}

// scalarText renders a JSON string, number or boolean as text. Anything
// else is empty.
func scalarText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch v.(type) {
	case float64, bool:
		return string(bytes.TrimSpace(raw))
	}
	return ""
}

func repairData(raw json.RawMessage) UserData {
	d := UserData{Progress: map[string]int{}, Habits: map[string][]string{}}

	var fields struct {
		Progress map[string]json.RawMessage `json:"progress"`
		Habits   map[string]json.RawMessage `json:"habits"`
	}
	// A field of the wrong type is skipped and the other one still decodes.
	_ = json.Unmarshal(raw, &fields)

	for k, v := range fields.Progress {
		var n int
		if json.Unmarshal(v, &n) == nil {
			d.Progress[k] = n
		}
	}
	for name, v := range fields.Habits {
		var items []json.RawMessage
		if json.Unmarshal(v, &items) != nil {
			continue
		}
		days := make([]string, 0, len(items))
		for _, it := range items {
			var day string
			if json.Unmarshal(it, &day) == nil {
				days = append(days, day)
			}
		}
		d.Habits[name] = days
	}
	return d
}

// EncodeUsers serializes the users table as a JSON object keyed by email.
func EncodeUsers(users UsersTable) ([]byte, error) {
	if users == nil {
		users = UsersTable{}
	}
	return json.Marshal(users)
}

// DecodeProgress parses a chapter counter. It accepts leading decimal
// digits after an optional sign and ignores the rest ("12abc" is 12).
// Values beyond the int range saturate at math.MaxInt or math.MinInt.
// Empty input is 0; anything without digits is 0 plus
// common.ErrorMalformedStoredData.
func DecodeProgress(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	s := string(data)
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, fmt.Errorf("%w: progress %q", common.ErrorMalformedStoredData, s)
	}

	n, err := strconv.Atoi(s[start:i])
	if errors.Is(err, strconv.ErrRange) {
		if s[start] == '-' {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: progress %q", common.ErrorMalformedStoredData, s)
	}
	return n, nil
}

// EncodeProgress formats a chapter counter as a decimal string.
func EncodeProgress(n int) []byte {
	return []byte(strconv.Itoa(n))
}
