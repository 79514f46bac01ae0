package models

// VocabularyEntry represents a German noun introduced at a specific level
type VocabularyEntry struct {
	Level       int    `json:"level"`
	Singular    string `json:"singular"`
	Article     string `json:"article"`     // definite article: der, die or das
	Plural      string `json:"plural"`      // plural form without article
	Translation string `json:"translation"` // Italian translation
	Explanation string `json:"explanation"`
}

// Key returns the identity of the entry within a catalog
func (e VocabularyEntry) Key() string {
	return e.Singular
}

// Term returns the singular form with its article, e.g. "der Gabelstapler"
func (e VocabularyEntry) Term() string {
	return e.Article + " " + e.Singular
}

// PluralTerm returns the plural form with its article, e.g. "die Paletten"
func (e VocabularyEntry) PluralTerm() string {
	return "die " + e.Plural
}
