package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/plumelab/pageval/internal/schema"
)

// CorpusRecord is one page pair in an exported corpus shard: identifying
// metadata plus the gold and predicted page documents embedded as JSON.
type CorpusRecord struct {
	Magazine string `json:"magazine" parquet:"magazine"`
	Issue    string `json:"issue" parquet:"issue"`
	PageNum  int    `json:"page_num" parquet:"page_num"`
	GoldJSON string `json:"gold_json" parquet:"gold_json"`
	PredJSON string `json:"pred_json" parquet:"pred_json"`
}

// Name identifies the record in reports and result files.
func (r CorpusRecord) Name() string {
	return fmt.Sprintf("%s_%s_p%03d", r.Magazine, r.Issue, r.PageNum)
}

// Pages decodes and validates the embedded gold and predicted pages.
func (r CorpusRecord) Pages() (gold, pred *schema.Page, err error) {
	gold, err = schema.ParsePage([]byte(r.GoldJSON))
	if err != nil {
		return nil, nil, fmt.Errorf("%s gold: %w", r.Name(), err)
	}
	pred, err = schema.ParsePage([]byte(r.PredJSON))
	if err != nil {
		return nil, nil, fmt.Errorf("%s pred: %w", r.Name(), err)
	}
	return gold, pred, nil
}

// LoadCorpus reads corpus records from a Parquet or JSONL shard, detected
// by file extension.
func LoadCorpus(path string) ([]CorpusRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return loadParquet(path)
	case ".jsonl", ".json":
		return loadJSONL(path)
	default:
		return nil, fmt.Errorf("unsupported corpus format: %s (supported: .parquet, .jsonl)", path)
	}
}

func loadParquet(path string) ([]CorpusRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat corpus file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}
	slog.Debug("Opened parquet corpus", "path", path, "rows", pf.NumRows())

	reader := parquet.NewGenericReader[CorpusRecord](pf)
	defer reader.Close()

	var records []CorpusRecord
	batch := make([]CorpusRecord, 128)
	for {
		n, err := reader.Read(batch)
		records = append(records, batch[:n]...)
		if err != nil {
			break
		}
	}
	return records, nil
}

func loadJSONL(path string) ([]CorpusRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	var records []CorpusRecord
	scanner := bufio.NewScanner(file)

	// Embedded page JSON can make lines long.
	const maxCapacity = 10 * 1024 * 1024
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record CorpusRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading corpus: %w", err)
	}
	return records, nil
}
