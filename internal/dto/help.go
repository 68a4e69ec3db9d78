package dto

type SearchResultItem struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// SearchResponse is returned for every search. Searched is false when the
// query was too short to rank.
type SearchResponse struct {
	Query    string             `json:"query"`
	Searched bool               `json:"searched"`
	Total    int                `json:"total"`
	Results  []SearchResultItem `json:"results"`
}

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

type AskResponse struct {
	Question string             `json:"question"`
	Answer   string             `json:"answer,omitempty"`
	AIError  string             `json:"ai_error,omitempty"`
	Related  []SearchResultItem `json:"related"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
