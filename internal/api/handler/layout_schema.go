package handler

import "github.com/gamedeck/gamedeck/internal/core/domain"

// componentRequest mirrors one builder component on the wire. The store
// treats the list opaquely, but the schema still checks that every element
// carries a client-generated identifier and a known type.
type componentRequest struct {
	ID       string             `json:"id"    validate:"required"`
	Type     string             `json:"type"  validate:"required,oneof=section container grid game-card hero-banner text-block button form tabs"`
	Props    map[string]any     `json:"props"`
	Children []componentRequest `json:"children" validate:"omitempty,dive"`
}

// createLayoutRequest is the insert body for POST /api/layouts. Components
// must be present; an empty list is a valid layout.
type createLayoutRequest struct {
	Name       string             `json:"name"       validate:"required"`
	Components []componentRequest `json:"components" validate:"required,dive"`
	IsActive   *bool              `json:"isActive"   validate:"required"`
}

// updateLayoutRequest is the partial body for PATCH /api/layouts/:id. A
// present components field replaces the stored list wholesale.
type updateLayoutRequest struct {
	Name       *string            `json:"name"`
	Components []componentRequest `json:"components" validate:"omitempty,dive"`
	IsActive   *bool              `json:"isActive"`
}

// toDomainComponents converts wire components into the stored shape.
func toDomainComponents(reqs []componentRequest) []domain.BuilderComponent {
	if reqs == nil {
		return nil
	}
	out := make([]domain.BuilderComponent, len(reqs))
	for i, r := range reqs {
		out[i] = domain.BuilderComponent{
			ID:       r.ID,
			Type:     domain.ComponentType(r.Type),
			Props:    r.Props,
			Children: toDomainComponents(r.Children),
		}
	}
	return out
}
