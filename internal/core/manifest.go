package core

import (
	"encoding/json"
)

// ManifestEntry records where a route landed in the dist tree.
type ManifestEntry struct {
	File  string `json:"file"`
	Hash  string `json:"hash"`
	Title string `json:"title,omitempty"`
}

// Manifest maps normalized routes to built output. It is written at the end
// of every build and is the production server's routing table.
type Manifest struct {
	Routes map[string]ManifestEntry `json:"routes"`
}

func NewManifest() *Manifest {
	return &Manifest{
		Routes: make(map[string]ManifestEntry),
	}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func EncodeManifest(m *Manifest) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// LookupRoute resolves a request path against the manifest. Trailing
// slashes are forgiven so "/docs/intro/" and "/docs/intro" hit the same
// entry.
func LookupRoute(m *Manifest, requestPath string) (ManifestEntry, bool) {
	if m == nil {
		return ManifestEntry{}, false
	}
	entry, ok := m.Routes[NormalizePath(requestPath)]
	return entry, ok
}
