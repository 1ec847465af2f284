package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/habitkeeper/internal/filex"
)

// Export prints the whole store as indented JSON, or writes it to path
// when one is given.
func (a *App) Export(ctx context.Context, path string) error {
	data, err := a.backupService.Export(ctx)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(a.out, string(data))
		return nil
	}

	if err := filex.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported to %s\n", path)
	return nil
}

// Import replaces the store with the snapshot in path and reloads the
// session, which the snapshot may have changed.
func (a *App) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	n, err := a.backupService.Import(ctx, data)
	if err != nil {
		return err
	}

	s, err := a.accountService.Current(ctx)
	if err != nil {
		return err
	}
	a.session = s

	fmt.Fprintf(a.out, "Imported %d keys\n", n)
	return nil
}
