package hcl_adapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/paramgrid/internal/config"
	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/specialistvlad/paramgrid/internal/schema"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	fs afs.Service
}

// NewLoader creates a new HCL pipeline loader.
func NewLoader() *Loader {
	return &Loader{fs: afs.New()}
}

var _ config.Loader = (*Loader)(nil)

// Load reads and merges every .hcl file found under paths. Paths that do not
// exist are skipped with a warning; finding no file at all is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", config.ErrNoFiles, strings.Join(paths, ", "))
	}

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		src, err := l.fs.DownloadWithURL(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read HCL file %s: %w", file, err)
		}
		if err := parseInto(ctx, parser, model, src, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "nodes", len(model.Nodes), "exported_groups", len(model.Exported))
	return model, nil
}

// Parse decodes a single pipeline source. filename is only used in
// diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	model := &config.Model{}
	if err := parseInto(ctx, hclparse.NewParser(), model, src, filename); err != nil {
		return nil, err
	}
	return model, nil
}

func parseInto(ctx context.Context, parser *hclparse.Parser, model *config.Model, src []byte, filename string) error {
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root schema.File
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	version, err := checkFormatVersion(root.FormatVersion)
	if err != nil {
		return fmt.Errorf("in file %s: %w", filename, err)
	}
	if model.FormatVersion == nil || version.GreaterThan(model.FormatVersion) {
		model.FormatVersion = version
	}

	for _, n := range root.Nodes {
		node, err := translateNode(ctx, n)
		if err != nil {
			return fmt.Errorf("in file %s: %w", filename, err)
		}
		model.Nodes = append(model.Nodes, node)
	}
	for _, block := range root.Exported {
		for _, g := range block.Groups {
			group, err := translateGroup(g)
			if err != nil {
				return fmt.Errorf("in file %s: %w", filename, err)
			}
			model.Exported = append(model.Exported, group)
		}
	}
	return nil
}

// findAllHCLFiles expands paths into a sorted, duplicate-free list of .hcl
// file URLs.
func (l *Loader) findAllHCLFiles(ctx context.Context, paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(file string) {
		if _, wasSeen := seen[file]; !wasSeen {
			allFiles = append(allFiles, file)
			seen[file] = struct{}{}
		}
	}

	for _, p := range paths {
		exists, err := l.fs.Exists(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}
		if !exists {
			ctxlog.FromContext(ctx).Warn("Pipeline path does not exist, skipping.", "path", p)
			continue
		}
		object, err := l.fs.Object(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}
		if !object.IsDir() {
			if path.Ext(p) == ".hcl" {
				add(p)
			}
			continue
		}

		var found []string
		var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
			if info.IsDir() {
				return true, nil
			}
			if path.Ext(info.Name()) == ".hcl" {
				found = append(found, url.Join(url.Join(baseURL, parent), info.Name()))
			}
			return true, nil
		}
		if err := l.fs.Walk(ctx, p, visitor); err != nil {
			return nil, fmt.Errorf("error walking path %s: %w", p, err)
		}
		sort.Strings(found)
		for _, file := range found {
			add(file)
		}
	}
	return allFiles, nil
}
