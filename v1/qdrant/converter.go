package qdrant

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/vectorstack/embed/v1/embedding"
)

// DistanceFor converts a database-agnostic similarity metric into the
// Qdrant distance enum used when creating a collection.
func DistanceFor(space embedding.Space) (qdrant.Distance, error) {
	switch space {
	case embedding.SpaceCosine:
		return qdrant.Distance_Cosine, nil
	case embedding.SpaceL2:
		return qdrant.Distance_Euclid, nil
	case embedding.SpaceIP:
		return qdrant.Distance_Dot, nil
	default:
		return qdrant.Distance_UnknownDistance, fmt.Errorf("[Qdrant] no distance for space %q", space)
	}
}

// SpaceFor is the inverse of DistanceFor. It reports ok=false for Qdrant
// distances that have no database-agnostic equivalent (e.g. Manhattan).
func SpaceFor(distance qdrant.Distance) (embedding.Space, bool) {
	switch distance {
	case qdrant.Distance_Cosine:
		return embedding.SpaceCosine, true
	case qdrant.Distance_Euclid:
		return embedding.SpaceL2, true
	case qdrant.Distance_Dot:
		return embedding.SpaceIP, true
	default:
		return "", false
	}
}

// spaceForName maps the string form of a Qdrant distance (as reported by
// collection info) back to a Space.
func spaceForName(name string) (embedding.Space, bool) {
	switch name {
	case "Cosine":
		return embedding.SpaceCosine, true
	case "Euclid":
		return embedding.SpaceL2, true
	case "Dot":
		return embedding.SpaceIP, true
	default:
		return "", false
	}
}
