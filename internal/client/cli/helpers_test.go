package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/habitkeeper/internal/client/config"
	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/services"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

// newTestApp builds an App over a fresh MemoryStore with colors off, a
// fixed clock and a deterministic quote. input lines feed a.reader.
func newTestApp(t *testing.T, input ...string) (*App, *bytes.Buffer, *kvstore.MemoryStore) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreDriver = kvstore.DriverMemory
	cfg.NoColor = true

	store := kvstore.NewMemoryStore()
	out := &bytes.Buffer{}
	var in io.Reader = strings.NewReader("")
	if len(input) > 0 {
		in = strings.NewReader(strings.Join(input, "\n") + "\n")
	}

	a := newApp(cfg, store, logging.Nop(), in, out)
	a.quoteService = services.NewQuoteService(store, logging.Nop(),
		services.WithClock(func() time.Time { return testNow }),
		services.WithPicker(func(int) int { return 0 }),
	)
	return a, out, store
}

// stubInputs replaces the credential prompts for the duration of the test.
func stubInputs(t *testing.T, email string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
