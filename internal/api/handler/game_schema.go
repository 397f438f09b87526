package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createGameRequest is the insert body for POST /api/games. Required flags
// and numbers use pointers so explicit false/0 values are accepted while
// absent fields are rejected.
type createGameRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required"`
	CoverImage  string `json:"coverImage"  validate:"required"`
	Rating      *int   `json:"rating"      validate:"required,gte=0,lte=50"`
	IsInstalled *bool  `json:"isInstalled" validate:"required"`
	IsFavorite  *bool  `json:"isFavorite"  validate:"required"`
	PlayMode    string `json:"playMode"    validate:"required"`
}

// updateGameRequest is the partial body for PATCH /api/games/:id. Any subset
// of insert fields is accepted; absent fields stay untouched.
type updateGameRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	CoverImage  *string `json:"coverImage"`
	Rating      *int    `json:"rating" validate:"omitempty,gte=0,lte=50"`
	IsInstalled *bool   `json:"isInstalled"`
	IsFavorite  *bool   `json:"isFavorite"`
	PlayMode    *string `json:"playMode"`
}
