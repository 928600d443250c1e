package core

// Envelope wraps every api/heroes payload in a single data field
type Envelope[T any] struct {
	Data T `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HeroEvent is published whenever a hero is created, updated or deleted
type HeroEvent struct {
	Type string `json:"type"`
	Hero Hero   `json:"hero"`
}

// SearchRequest is a frame sent by the search socket client
type SearchRequest struct {
	Term string `json:"term"`
}

// SearchResponse is a frame written back for every result batch
type SearchResponse struct {
	Term string `json:"term"`
	Data []Hero `json:"data"`
}
