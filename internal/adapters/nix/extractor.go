package nix

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
	"go.trai.ch/zerr"
)

const githubMarker = "github:"

// ExtractBranch returns the trailing path segment of a github: URL with any
// query or fragment removed, or domain.UnknownBranch for other URLs.
func ExtractBranch(url string) string {
	if !strings.Contains(url, githubMarker) || !strings.Contains(url, "/") {
		return domain.UnknownBranch
	}

	last := url[strings.LastIndex(url, "/")+1:]
	if i := strings.IndexAny(last, "?#"); i >= 0 {
		last = last[:i]
	}
	return last
}

// Extractor turns flake lock metadata into input records.
type Extractor struct {
	oracle         ports.MetadataOracle
	logger         ports.Logger
	fallbackBranch string
}

// NewExtractor creates an Extractor.
func NewExtractor(oracle ports.MetadataOracle, logger ports.Logger, settings domain.Settings) *Extractor {
	return &Extractor{
		oracle:         oracle,
		logger:         logger,
		fallbackBranch: settings.FallbackBranch,
	}
}

// Extract returns one record per node of the flake's lock graph. Failures are
// reported as a single warning and yield an empty mapping.
func (e *Extractor) Extract(ctx context.Context, flakePath string) map[string]domain.InputRecord {
	records := make(map[string]domain.InputRecord)

	graph, err := e.lockGraph(ctx, flakePath)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("could not extract flake inputs: %v", err))
		return records
	}

	for name, node := range graph.Nodes {
		records[name] = recordFromNode(name, node)
	}
	return records
}

// ExtractPrimary returns the record for a single input. When metadata is
// unavailable or the input has no URL, the branch falls back to the configured
// fallback branch.
func (e *Extractor) ExtractPrimary(ctx context.Context, flakePath, input string) domain.InputRecord {
	fallback := domain.InputRecord{Name: input, Branch: e.fallbackBranch}

	graph, err := e.lockGraph(ctx, flakePath)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("could not read metadata for input %q: %v", input, err))
		return fallback
	}

	node, ok := graph.Nodes[input]
	if !ok {
		return fallback
	}

	record := recordFromNode(input, node)
	if record.URL == "" || record.Branch == domain.UnknownBranch {
		record.Branch = e.fallbackBranch
	}
	return record
}

func (e *Extractor) lockGraph(ctx context.Context, flakePath string) (*lockGraph, error) {
	raw, err := e.oracle.Metadata(ctx, flakeDir(flakePath))
	if err != nil {
		return nil, err
	}

	var meta flakeMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataParseFailed.Error())
	}

	if meta.Locks == nil {
		return &lockGraph{}, nil
	}
	return meta.Locks, nil
}

// flakeDir returns the directory holding the flake at path.
func flakeDir(path string) string {
	if filepath.Base(path) == domain.DefaultFlakeFile {
		return filepath.Dir(path)
	}
	return path
}

func recordFromNode(name string, node lockNode) domain.InputRecord {
	record := domain.InputRecord{Name: name, Branch: domain.UnknownBranch}
	if node.Locked == nil {
		return record
	}

	locked := node.Locked
	record.LockedRevision = locked.Rev
	if locked.URL != "" {
		record.URL = locked.URL
		record.Branch = ExtractBranch(locked.URL)
	} else {
		if _, ok := forgeTypes[locked.Type]; ok && locked.Owner != "" && locked.Repo != "" {
			record.URL = locked.Type + ":" + locked.Owner + "/" + locked.Repo
		}
		if node.Original != nil && node.Original.Ref != "" {
			record.Branch = node.Original.Ref
		}
	}
	if locked.LastModified > 0 {
		record.LastModified = time.Unix(locked.LastModified, 0)
	}

	return record
}

var _ ports.MetadataExtractor = (*Extractor)(nil)
