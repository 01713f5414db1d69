package generation

import "github.com/taskloop/taskloop-backend/internal/domain"

// allowedCategories is the fixed set the model is instructed to choose from.
// A reply outside the set is coerced to the default rather than rejected.
var allowedCategories = map[string]bool{
	"General":  true,
	"Work":     true,
	"Personal": true,
	"Learning": true,
	"Health":   true,
	"Finance":  true,
}

// providerReply is the JSON object the model is instructed to return.
type providerReply struct {
	Category string   `json:"category"`
	Tasks    []string `json:"tasks"`
}

// toResult applies the defaulting rules: absent category becomes the default,
// unknown categories are coerced, absent tasks become an empty slice.
func (r providerReply) toResult() domain.GenerationResult {
	category := r.Category
	if category == "" || !allowedCategories[category] {
		category = domain.DefaultCategory
	}

	tasks := r.Tasks
	if tasks == nil {
		tasks = []string{}
	}

	return domain.GenerationResult{Category: category, Tasks: tasks}
}
