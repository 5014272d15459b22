// Package results persists evaluation runs as YAML files and loads them
// back for reporting.
package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plumelab/pageval/internal/evaluate"
)

// RunConfig describes how an evaluation run was produced.
type RunConfig struct {
	GoldDir           string  `yaml:"gold_dir,omitempty"`
	PredDir           string  `yaml:"pred_dir,omitempty"`
	CorpusPath        string  `yaml:"corpus_path,omitempty"`
	MatchThreshold    float64 `yaml:"match_threshold"`
	MetadataThreshold float64 `yaml:"metadata_threshold"`
	Timestamp         string  `yaml:"timestamp"`
}

// Run is one complete evaluation: configuration, per-page results, and the
// cross-page summary.
type Run struct {
	Config  RunConfig                 `yaml:"config"`
	Summary *evaluate.Summary         `yaml:"summary"`
	Pages   []evaluate.PageEvaluation `yaml:"pages"`
}

// Save writes the run to a timestamped YAML file under outputDir and
// returns the file path.
func Save(run *Run, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if run.Config.Timestamp == "" {
		run.Config.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}
	path := filepath.Join(outputDir, fmt.Sprintf("eval_%s.yaml", run.Config.Timestamp))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()
	if err := encoder.Encode(run); err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}
	return path, nil
}

// Load reads a run back from a YAML file.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	var run Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}
	return &run, nil
}

// ListRuns returns the eval YAML files under dir, sorted by name (and so
// by timestamp).
func ListRuns(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "eval_*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no evaluation runs found under %s", dir)
	}
	return matches, nil
}
