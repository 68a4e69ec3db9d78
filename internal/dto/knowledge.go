package dto

type CreateKnowledgeRequest struct {
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	Category  string `json:"category" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

type KnowledgeResponse struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at"`
}

type ReloadResponse struct {
	Entries int `json:"entries"`
}
