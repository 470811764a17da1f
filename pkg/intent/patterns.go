package intent

import "strings"

// Literal phrase lists for fast intent detection. Matching is substring
// containment over the lower-cased message, not word-boundary matching.
// A hit adds a fixed 5 point bonus to that category in the classifier.

var databasePatterns = []string{
	"cuántos", "cuántas", "cuánto", "cuánta",
	"hay en stock", "hay disponibles", "tienen en",
	"precio de", "cuesta", "vale",
	"qué productos", "qué modelos",
	"stock de", "disponibilidad de",
	"usuarios registrados", "clientes registrados",
	"ventas", "compras realizadas",
	"categoría", "categorías",
	"marca", "marcas",
	"estadísticas", "estadistica",
	"listar productos", "mostrar productos",
	"inventario", "catálogo", "catalogo",
	"disponible", "tienen", "tienes",
}

var knowledgePatterns = []string{
	"cuándo salió", "cuando salio",
	"qué es", "que es",
	"historia de", "origen de",
	"diferencia entre", "comparar",
	"mejor que", "vs", "versus",
	"cómo funciona", "como funciona",
	"características de", "especificaciones técnicas generales",
	"qué significa", "que significa",
	"definición", "definicion",
}

// PatternBonus is the score added per matched category.
const PatternBonus = 5

// MatchDatabasePattern reports whether the lower-cased message contains any
// database-intent phrase.
func MatchDatabasePattern(message string) bool {
	return matchAny(message, databasePatterns)
}

// MatchKnowledgePattern reports whether the lower-cased message contains any
// general-knowledge phrase.
func MatchKnowledgePattern(message string) bool {
	return matchAny(message, knowledgePatterns)
}

func matchAny(message string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(message, p) {
			return true
		}
	}
	return false
}
