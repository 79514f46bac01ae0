package models

// Question is a single generated multiple-choice question. Questions are
// built fresh for every session and never persisted.
type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}
