package nix

// flakeMetadata is the subset of `nix flake metadata --json` output that is read.
type flakeMetadata struct {
	Locks *lockGraph `json:"locks"`
}

// lockGraph mirrors the flake.lock graph.
type lockGraph struct {
	Nodes   map[string]lockNode `json:"nodes"`
	Root    string              `json:"root"`
	Version int                 `json:"version"`
}

type lockNode struct {
	Locked   *lockedRef     `json:"locked,omitempty"`
	Original *originalRef   `json:"original,omitempty"`
	Inputs   map[string]any `json:"inputs,omitempty"`
}

type lockedRef struct {
	LastModified int64  `json:"lastModified,omitempty"`
	NarHash      string `json:"narHash,omitempty"`
	Owner        string `json:"owner,omitempty"`
	Repo         string `json:"repo,omitempty"`
	Rev          string `json:"rev,omitempty"`
	Ref          string `json:"ref,omitempty"`
	Type         string `json:"type,omitempty"`
	Host         string `json:"host,omitempty"`
	URL          string `json:"url,omitempty"`
}

type originalRef struct {
	Owner string `json:"owner,omitempty"`
	Ref   string `json:"ref,omitempty"`
	Repo  string `json:"repo,omitempty"`
	Type  string `json:"type,omitempty"`
	URL   string `json:"url,omitempty"`
}

// forgeTypes are lock node types addressed as {type}:{owner}/{repo}.
var forgeTypes = map[string]struct{}{
	"github":    {},
	"gitlab":    {},
	"sourcehut": {},
}
