package catalog

import "github.com/example/deutschtrainer/pkg/models"

// Built-in course content for the warehouse logistics domain. Levels 1 and 2
// introduce vocabulary, levels 2 and 3 introduce grammar.

var builtinVocabulary = []models.VocabularyEntry{
	{
		Level:       1,
		Singular:    "Gabelstapler",
		Article:     "der",
		Plural:      "Gabelstapler",
		Translation: "carrello elevatore / muletto",
		Explanation: "Il sostantivo Gabelstapler significa ‘carrello elevatore’. È di genere maschile (article der) e il suo plurale è identico al singolare: die Gabelstapler.",
	},
	{
		Level:       1,
		Singular:    "Lager",
		Article:     "das",
		Plural:      "Lager",
		Translation: "magazzino",
		Explanation: "Lager significa ‘magazzino’ o ‘deposito’. È un sostantivo neutro (das) e al plurale rimane invariato: die Lager o con umlaut die Läger.",
	},
	{
		Level:       1,
		Singular:    "Palette",
		Article:     "die",
		Plural:      "Paletten",
		Translation: "pallet / bancale",
		Explanation: "Palette è un sostantivo femminile che significa ‘pallet’ o ‘bancale’. Il plurale si forma aggiungendo -n: die Paletten.",
	},
	{
		Level:       1,
		Singular:    "Lagerarbeiter",
		Article:     "der",
		Plural:      "Lagerarbeiter",
		Translation: "magazziniere",
		Explanation: "Lagerarbeiter indica l’‘operatore di magazzino’. È di genere maschile e al plurale rimane invariato: die Lagerarbeiter.",
	},
	{
		Level:       1,
		Singular:    "Regal",
		Article:     "das",
		Plural:      "Regale",
		Translation: "scaffale",
		Explanation: "Regal significa ‘scaffale’. È neutro (das) e al plurale diventa die Regale.",
	},
	{
		Level:       2,
		Singular:    "Kiste",
		Article:     "die",
		Plural:      "Kisten",
		Translation: "cassetta / scatola",
		Explanation: "Kiste è una ‘cassetta’ o ‘scatola’. È femminile (die) e al plurale prende -n: die Kisten.",
	},
	{
		Level:       2,
		Singular:    "Paket",
		Article:     "das",
		Plural:      "Pakete",
		Translation: "pacco",
		Explanation: "Paket significa ‘pacco’. È neutro (das) e al plurale diventa die Pakete.",
	},
	{
		Level:       2,
		Singular:    "Waage",
		Article:     "die",
		Plural:      "Waagen",
		Translation: "bilancia",
		Explanation: "Waage significa ‘bilancia’ o ‘bilance’. È un sostantivo femminile; al plurale si aggiunge -n: die Waagen.",
	},
	{
		Level:       2,
		Singular:    "Verpackung",
		Article:     "die",
		Plural:      "Verpackungen",
		Translation: "imballaggio",
		Explanation: "Verpackung è il termine per ‘imballaggio’. È femminile e al plurale diventa die Verpackungen.",
	},
}

var builtinTopics = []models.GrammarTopic{
	{
		Level:       2,
		Name:        "Articoli indeterminativi",
		Explanation: "In tedesco l’articolo indeterminativo (‘un/una’) si esprime con **ein** per i sostantivi maschili e neutri e con **eine** per quelli femminili. Non esiste un articolo indeterminativo al plurale: in quel caso si omette l’articolo o si usa un quantificatore. Ad esempio: der Gabelstapler – ein Gabelstapler; die Palette – eine Palette.",
		Questions: []models.GrammarQuestionSpec{
			{
				Prompt:      "Quale articolo indeterminativo (ein/eine) usi con ‘Gabelstapler’ (carrello elevatore)?",
				Options:     []string{"ein", "eine", "(nessuno)"},
				Answer:      "ein",
				Explanation: "Gabelstapler è maschile, quindi si usa 'ein'.",
			},
			{
				Prompt:      "Quale articolo indeterminativo usi con ‘Palette’ (pallet)?",
				Options:     []string{"ein", "eine", "(nessuno)"},
				Answer:      "eine",
				Explanation: "Palette è un sostantivo femminile; l’articolo indeterminativo è 'eine'.",
			},
			{
				Prompt:      "Quale articolo indeterminativo usi con ‘Lager’ (magazzino)?",
				Options:     []string{"ein", "eine", "(nessuno)"},
				Answer:      "ein",
				Explanation: "Lager è neutro; in nominativo singolare l’articolo indeterminativo è 'ein'.",
			},
			{
				Prompt:      "Esiste un articolo indeterminativo al plurale in tedesco?",
				Options:     []string{"Sì, 'einige'", "No, non esiste", "Sì, 'ein' per tutti i generi"},
				Answer:      "No, non esiste",
				Explanation: "In tedesco non esiste un vero e proprio articolo indeterminativo al plurale; si usano altre parole come 'einige' (alcuni).",
			},
		},
	},
	{
		Level:       3,
		Name:        "Verbo sein – presente indicativo",
		Explanation: "Il verbo **sein** (essere) è irregolare e molto importante. Nella forma presente indicativo si coniuga così: ich bin (io sono), du bist (tu sei), er/sie/es ist (egli/ella/esso è), wir sind (noi siamo), ihr seid (voi siete), sie sind (essi sono), Sie sind (Lei è).",
		Questions: []models.GrammarQuestionSpec{
			{
				Prompt:      "Completa: ich ___ (essere)",
				Options:     []string{"bin", "bist", "ist"},
				Answer:      "bin",
				Explanation: "La forma per la prima persona singolare è 'ich bin'.",
			},
			{
				Prompt:      "Completa: wir ___ (essere)",
				Options:     []string{"ist", "sind", "seid"},
				Answer:      "sind",
				Explanation: "Per la prima persona plurale si usa 'wir sind'.",
			},
			{
				Prompt:      "Completa: du ___ (essere)",
				Options:     []string{"bist", "bin", "seid"},
				Answer:      "bist",
				Explanation: "La seconda persona singolare è 'du bist'.",
			},
			{
				Prompt:      "Completa: ihr ___ (essere)",
				Options:     []string{"seid", "sind", "ist"},
				Answer:      "seid",
				Explanation: "Per la seconda persona plurale si usa 'ihr seid'.",
			},
		},
	},
}

// BuiltinEntries returns a copy of the built-in vocabulary
func BuiltinEntries() []models.VocabularyEntry {
	out := make([]models.VocabularyEntry, len(builtinVocabulary))
	copy(out, builtinVocabulary)
	return out
}

// BuiltinTopics returns a copy of the built-in grammar topics
func BuiltinTopics() []models.GrammarTopic {
	out := make([]models.GrammarTopic, len(builtinTopics))
	copy(out, builtinTopics)
	return out
}

// Builtin returns the catalog of built-in course content
func Builtin() (*Catalog, error) {
	return New(BuiltinEntries(), BuiltinTopics())
}
