package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const pagePayload = `{"items": [{"item_class": "prose", "item_text_raw": "du texte"}]}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestDiscoverPairs(t *testing.T) {
	goldDir := t.TempDir()
	predDir := t.TempDir()

	writeFile(t, goldDir, "issue12_p003.json", pagePayload)
	writeFile(t, goldDir, "issue12_p001.json", pagePayload)
	writeFile(t, goldDir, "issue12_p002.json", pagePayload)
	writeFile(t, goldDir, "notes.txt", "not a page")

	writeFile(t, predDir, "issue12_p001.json", pagePayload)
	writeFile(t, predDir, "issue12_p003.json", pagePayload)
	// issue12_p002 has no prediction and must be skipped.
	writeFile(t, predDir, "issue12_p099.json", pagePayload)

	pairs, err := DiscoverPairs(goldDir, predDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Name != "issue12_p001.json" || pairs[1].Name != "issue12_p003.json" {
		t.Errorf("Expected sorted pair names, got %q and %q", pairs[0].Name, pairs[1].Name)
	}
}

func TestDiscoverPairsNoPairs(t *testing.T) {
	goldDir := t.TempDir()
	predDir := t.TempDir()
	writeFile(t, goldDir, "orphan.json", pagePayload)

	if _, err := DiscoverPairs(goldDir, predDir); err == nil {
		t.Error("Expected error when no pairs exist")
	}
}

func TestDiscoverPairsMissingGoldDir(t *testing.T) {
	if _, err := DiscoverPairs("/nonexistent", t.TempDir()); err == nil {
		t.Error("Expected error for missing gold directory")
	}
}

func TestPagePairLoad(t *testing.T) {
	goldDir := t.TempDir()
	predDir := t.TempDir()
	writeFile(t, goldDir, "page.json", pagePayload)
	writeFile(t, predDir, "page.json", pagePayload)

	pairs, err := DiscoverPairs(goldDir, predDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	gold, pred, err := pairs[0].Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(gold.Items) != 1 || len(pred.Items) != 1 {
		t.Errorf("Expected 1 item on each side, got %d and %d", len(gold.Items), len(pred.Items))
	}
}

func TestPagePairLoadInvalid(t *testing.T) {
	goldDir := t.TempDir()
	predDir := t.TempDir()
	writeFile(t, goldDir, "page.json", pagePayload)
	writeFile(t, predDir, "page.json", `{"items": [{"item_class": "editorial", "item_text_raw": "x"}]}`)

	pairs, err := DiscoverPairs(goldDir, predDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, _, err := pairs[0].Load(); err == nil {
		t.Error("Expected error for invalid prediction page")
	}
}

func TestCorpusRecordName(t *testing.T) {
	record := CorpusRecord{Magazine: "laplume", Issue: "1890-12", PageNum: 3}
	expected := "laplume_1890-12_p003"
	if name := record.Name(); name != expected {
		t.Errorf("Expected %q, got %q", expected, name)
	}
}

func TestLoadCorpusJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shard.jsonl")
	content := `{"magazine":"laplume","issue":"12","page_num":1,"gold_json":"{\"items\":[]}","pred_json":"{\"items\":[]}"}
{"magazine":"laplume","issue":"12","page_num":2,"gold_json":"{\"items\":[]}","pred_json":"{\"items\":[]}"}

`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write shard: %v", err)
	}

	records, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1].PageNum != 2 {
		t.Errorf("Expected page 2, got %d", records[1].PageNum)
	}

	gold, pred, err := records[0].Pages()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(gold.Items) != 0 || len(pred.Items) != 0 {
		t.Errorf("Expected empty pages, got %d and %d items", len(gold.Items), len(pred.Items))
	}
}

func TestLoadCorpusUnsupportedFormat(t *testing.T) {
	if _, err := LoadCorpus("corpus.csv"); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}

func TestCorpusRecordPagesInvalid(t *testing.T) {
	record := CorpusRecord{
		Magazine: "laplume", Issue: "12", PageNum: 1,
		GoldJSON: `{"items":[]}`,
		PredJSON: `not json`,
	}
	if _, _, err := record.Pages(); err == nil {
		t.Error("Expected error for invalid embedded JSON")
	}
}
