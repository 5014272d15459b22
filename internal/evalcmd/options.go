package evalcmd

import (
	"fmt"

	"github.com/plumelab/pageval/internal/evaluate"
	"github.com/plumelab/pageval/internal/schema"
)

func buildOptions(matchThreshold, metadataThreshold float64, classes []string) (evaluate.Options, error) {
	opts := evaluate.DefaultOptions()
	opts.MatchThreshold = matchThreshold
	opts.MetadataThreshold = metadataThreshold
	if opts.MatchThreshold < 0 || opts.MatchThreshold > 1 {
		return opts, fmt.Errorf("match threshold must be in [0, 1], got %v", opts.MatchThreshold)
	}
	if opts.MetadataThreshold < 0 || opts.MetadataThreshold > 1 {
		return opts, fmt.Errorf("metadata threshold must be in [0, 1], got %v", opts.MetadataThreshold)
	}
	for _, class := range classes {
		c := schema.ItemClass(class)
		if !c.Valid() {
			return opts, fmt.Errorf("unknown item class %q", class)
		}
		opts.Classes = append(opts.Classes, c)
	}
	return opts, nil
}
