package scenario

import (
	"context"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/katalvlaran/searchkit/internal/ctxlog"
)

// Load parses and decodes a single HCL scenario file.
func Load(ctx context.Context, filePath string) ([]*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding scenario file.", "path", filePath)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse HCL file %s", filePath)
	}

	var f File
	if diags = gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode HCL file %s", filePath)
	}

	logger.Debug("Successfully decoded scenario file.", "path", filePath, "scenarios_found", len(f.Scenarios))

	return f.Scenarios, nil
}
