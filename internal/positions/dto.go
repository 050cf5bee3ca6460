package positions

import "time"

// PositionResponse is the outward-facing representation of a position.
type PositionResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toResponse(pos Position) PositionResponse {
	return PositionResponse{
		ID:           pos.ID,
		Title:        pos.Title,
		Department:   pos.Department,
		Description:  pos.Description,
		Requirements: pos.Requirements,
		Status:       pos.Status,
		CreatedAt:    pos.CreatedAt,
	}
}
