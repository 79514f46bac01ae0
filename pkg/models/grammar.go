package models

// GrammarQuestionSpec is an authored multiple-choice question belonging to a
// grammar topic. Unlike generated vocabulary questions, the options are
// presented exactly in the authored order.
type GrammarQuestionSpec struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// GrammarTopic groups a grammar rule and its questions under the level that
// introduces it
type GrammarTopic struct {
	Level       int                   `json:"level"`
	Name        string                `json:"name"`
	Explanation string                `json:"explanation"`
	Questions   []GrammarQuestionSpec `json:"questions"`
}
