package request

import "strings"

// CreateServiceRequest is the payload for opening a new service request.
type CreateServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func (r CreateServiceRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}
