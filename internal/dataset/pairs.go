// Package dataset locates and loads gold/prediction page pairs from disk
// and reads corpus shards in Parquet or JSONL form.
package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plumelab/pageval/internal/schema"
)

// PagePair points at one gold page and its prediction, identified by the
// shared filename.
type PagePair struct {
	Name     string
	GoldPath string
	PredPath string
}

// DiscoverPairs walks the gold directory and pairs each page JSON with the
// same filename under the prediction directory. Gold pages without a
// prediction are logged and skipped; extra prediction files are ignored.
func DiscoverPairs(goldDir, predDir string) ([]PagePair, error) {
	entries, err := os.ReadDir(goldDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read gold directory: %w", err)
	}

	var pairs []PagePair
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		predPath := filepath.Join(predDir, entry.Name())
		if _, err := os.Stat(predPath); err != nil {
			slog.Warn("No prediction for gold page, skipping", "page", entry.Name())
			continue
		}
		pairs = append(pairs, PagePair{
			Name:     entry.Name(),
			GoldPath: filepath.Join(goldDir, entry.Name()),
			PredPath: predPath,
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })

	if len(pairs) == 0 {
		return nil, fmt.Errorf("no gold/prediction pairs found under %s and %s", goldDir, predDir)
	}
	return pairs, nil
}

// Load reads and validates both sides of a pair.
func (p PagePair) Load() (gold, pred *schema.Page, err error) {
	gold, err = schema.LoadPage(p.GoldPath)
	if err != nil {
		return nil, nil, err
	}
	pred, err = schema.LoadPage(p.PredPath)
	if err != nil {
		return nil, nil, err
	}
	return gold, pred, nil
}
