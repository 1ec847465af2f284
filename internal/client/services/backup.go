package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
	"github.com/dmitrijs2005/habitkeeper/internal/common"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

// BackupService dumps and restores the raw key-value layout as a flat
// JSON object of string values.
type BackupService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (int, error)
}

type backupService struct {
	store kvstore.Store
	log   logging.Logger
}

func NewBackupService(store kvstore.Store, log logging.Logger) BackupService {
	return &backupService{store: store, log: log}
}

func (s *backupService) Export(ctx context.Context) ([]byte, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	out := make(map[string]string, len(all))
	for k, v := range all {
		out[k] = string(v)
	}
	return json.MarshalIndent(out, "", "  ")
}

// Import replaces the whole store with data and returns the number of keys
// loaded. A snapshot whose users value is not a JSON object is rejected and
// the store is left untouched.
func (s *backupService) Import(ctx context.Context, data []byte) (int, error) {
	var in map[string]string
	if err := json.Unmarshal(data, &in); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}

	if users, ok := in[models.KeyUsers]; ok {
		if _, err := models.DecodeUsers([]byte(users)); errors.Is(err, common.ErrorMalformedStoredData) {
			return 0, fmt.Errorf("import: %w", err)
		} else if err != nil {
			s.log.Warn(ctx, "importing users table with damaged records", "error", err)
		}
	}

	snapshot := make(map[string][]byte, len(in))
	for k, v := range in {
		snapshot[k] = []byte(v)
	}
	if err := s.store.Replace(ctx, snapshot); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	s.log.Info(ctx, "store restored", "keys", len(snapshot))
	return len(snapshot), nil
}
