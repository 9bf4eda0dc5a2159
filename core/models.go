package core

import (
	"strings"
	"time"
)

// Role identifies the author of a chat message.
type Role int

const (
	// RoleUser represents the human shopper.
	RoleUser Role = iota + 1
	// RoleAssistant represents the AI shopping assistant.
	RoleAssistant
)

// Product is the unified catalog entity produced by the loader.
// Records from every vendor export schema are normalized into this shape.
type Product struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageUrl    string  `json:"imageUrl"`
	Brand       string  `json:"brand"`
	ProductUrl  string  `json:"productUrl"`
	SourceFile  string  `json:"sourceFile,omitempty"`
}

// SearchText returns the lowercased concatenation of the fields the
// keyword matcher runs against.
func (p *Product) SearchText() string {
	return strings.ToLower(p.Name + " " + p.Description + " " + p.Category + " " + p.Brand)
}

// FileCount reports how many products a single source file contributed.
type FileCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CatalogSummary describes the loaded catalog as a whole.
// It is derived from the cached product sequence on each call, never stored.
type CatalogSummary struct {
	TotalFiles    int         `json:"totalFiles"`
	TotalProducts int         `json:"totalProducts"`
	Brands        []string    `json:"brands"`
	Files         []FileCount `json:"files"`
}

// PromptRecord is one version of the assistant's system prompt.
// At most one record is active at a time.
type PromptRecord struct {
	Version   int64     `json:"version"`
	Content   string    `json:"content"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatMessage is a single turn of the shopper/assistant conversation
// as submitted to the assistant.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
