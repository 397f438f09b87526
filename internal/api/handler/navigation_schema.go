package handler

import "encoding/json"

// createNavigationItemRequest is the insert body for POST /api/navigation.
// ParentID is nullable: null (or absence) creates a top-level entry.
type createNavigationItemRequest struct {
	Label       string `json:"label"       validate:"required"`
	Path        string `json:"path"        validate:"required"`
	Icon        string `json:"icon"        validate:"required"`
	IsAdminOnly *bool  `json:"isAdminOnly" validate:"required"`
	SortOrder   *int   `json:"sortOrder"   validate:"required"`
	ParentID    *int   `json:"parentId"`
}

// updateNavigationItemRequest is the partial body for PATCH /api/navigation/:id.
// ParentID is raw JSON so "set to null" and "field absent" stay
// distinguishable.
type updateNavigationItemRequest struct {
	Label       *string         `json:"label"`
	Path        *string         `json:"path"`
	Icon        *string         `json:"icon"`
	IsAdminOnly *bool           `json:"isAdminOnly"`
	SortOrder   *int            `json:"sortOrder"`
	ParentID    json.RawMessage `json:"parentId"`
}

// parentIDPatch decodes the raw parentId field into a double pointer:
// nil means absent, a pointer to nil means explicit null.
func (r updateNavigationItemRequest) parentIDPatch() (**int, error) {
	if len(r.ParentID) == 0 {
		return nil, nil
	}
	var v *int
	if err := json.Unmarshal(r.ParentID, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
