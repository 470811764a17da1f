package intent

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/spanish"
)

// Keyword fragments with weights, matched by substring containment against
// each stemmed token. A stem can match several fragments and accumulates
// every matching weight. The weights are tuned values; do not re-derive them.

var databaseWeights = map[string]int{
	"stock": 3, "precio": 3, "dispon": 2, "producto": 2,
	"usuario": 2, "venta": 2, "categoria": 2, "marca": 2,
	"inventario": 2, "catalogo": 2, "cuanto": 2, "cuanta": 2,
}

var knowledgeWeights = map[string]int{
	"historia": 3, "cuando": 2, "salió": 2, "definicion": 3,
	"significa": 2, "funciona": 2, "diferencia": 2, "compar": 2,
	"mejor": 2, "versus": 2, "vs": 2, "origen": 2,
}

// Tokenize splits a message into lower-cased word tokens.
func Tokenize(message string) []string {
	return strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// StemScores tokenizes and stems the message and accumulates the weighted
// keyword scores for both categories.
func StemScores(message string) (scoreDB, scoreKnowledge int) {
	for _, token := range Tokenize(message) {
		// Stop words are kept intact so interrogatives like "cuanto"
		// still match their fragments.
		stem := spanish.Stem(token, false)
		for fragment, weight := range databaseWeights {
			if strings.Contains(stem, fragment) {
				scoreDB += weight
			}
		}
		for fragment, weight := range knowledgeWeights {
			if strings.Contains(stem, fragment) {
				scoreKnowledge += weight
			}
		}
	}
	return scoreDB, scoreKnowledge
}

// Scores combines the stem-weight scores with the pattern bonuses over the
// raw message.
func Scores(message string) (scoreDB, scoreKnowledge int) {
	lower := strings.ToLower(message)
	scoreDB, scoreKnowledge = StemScores(lower)
	if MatchDatabasePattern(lower) {
		scoreDB += PatternBonus
	}
	if MatchKnowledgePattern(lower) {
		scoreKnowledge += PatternBonus
	}
	return scoreDB, scoreKnowledge
}
