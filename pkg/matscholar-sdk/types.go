package matscholar

// MaterialsSearchResult is a ranked list of materials matching the search
// criteria, with mention counts and similarity scores. Positive/Negative hold
// the criteria after server-side preprocessing, OriginalPositive/
// OriginalNegative the criteria as submitted.
type MaterialsSearchResult struct {
	Materials        []string  `json:"materials"`
	Counts           []int     `json:"counts"`
	Scores           []float64 `json:"scores"`
	Positive         []string  `json:"positive"`
	Negative         []string  `json:"negative"`
	OriginalPositive []string  `json:"original_positive"`
	OriginalNegative []string  `json:"original_negative"`
}

// CloseWordsResult is a list of words/phrases closest to the cumulative
// embedding of the search criteria, by cosine similarity.
type CloseWordsResult struct {
	CloseWords       []string  `json:"close_words"`
	Scores           []float64 `json:"scores"`
	Positive         []string  `json:"positive"`
	Negative         []string  `json:"negative"`
	OriginalPositive []string  `json:"original_positive"`
	OriginalNegative []string  `json:"original_negative"`
}

// EmbeddingsResult holds one embedding row per requested wordphrase.
// ProcessedWordphrases lists the tokens each input was reduced to before
// lookup. Missing words yield all-zero rows when ignore_missing is in effect.
type EmbeddingsResult struct {
	OriginalWordphrases  []string    `json:"original_wordphrases"`
	ProcessedWordphrases [][]string  `json:"processed_wordphrases"`
	Embeddings           [][]float64 `json:"embeddings"`
}
