package embedding

import "fmt"

// Space identifies a vector-similarity metric in a database-agnostic way.
// Adapters (Qdrant, pgVector, ...) translate these into their native
// distance enums.
type Space string

const (
	// SpaceCosine is cosine similarity.
	SpaceCosine Space = "cosine"

	// SpaceL2 is Euclidean distance.
	SpaceL2 Space = "l2"

	// SpaceIP is inner (dot) product.
	SpaceIP Space = "ip"
)

// Spaces returns all known similarity metrics.
func Spaces() []Space {
	return []Space{SpaceCosine, SpaceL2, SpaceIP}
}

// Valid reports whether s is one of the known metrics.
func (s Space) Valid() bool {
	switch s {
	case SpaceCosine, SpaceL2, SpaceIP:
		return true
	}
	return false
}

// ParseSpace converts a string into a Space, rejecting unknown values.
func ParseSpace(v string) (Space, error) {
	s := Space(v)
	if !s.Valid() {
		return "", fmt.Errorf("embedding: unknown space %q", v)
	}
	return s, nil
}
