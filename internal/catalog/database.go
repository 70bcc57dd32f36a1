package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/verte-zerg/tinysteps/internal/store"
)

// LoadDatabase reads a catalogue from a SQLite catalogue database.
func LoadDatabase(path string) (*Catalogue, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open catalogue database: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue database: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			// Best-effort close of a read-only handle.
			_ = cerr
		}
	}()

	ctx := context.Background()
	records, err := st.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	groups, err := st.ListAgeGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read age groups: %w", err)
	}
	if len(groups) == 0 {
		groups = nil
	}
	return New(path, records, groups)
}

// WriteDatabase replaces the contents of a catalogue database with c.
func WriteDatabase(path string, c *Catalogue) error {
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open catalogue database: %w", err)
	}
	if err := st.ReplaceCatalogue(context.Background(), c.Records(), c.AgeGroups()); err != nil {
		_ = st.Close()
		return fmt.Errorf("failed to write catalogue database: %w", err)
	}
	if err := st.Close(); err != nil {
		return fmt.Errorf("failed to close catalogue database: %w", err)
	}
	return nil
}
