package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"techstore-ai-be/internal/pkg/logger"
	"techstore-ai-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

// Intent is the resolved category guiding how a chat message is answered.
type Intent string

const (
	// IntentDatabase means the question needs a live catalog/store lookup.
	IntentDatabase Intent = "database"
	// IntentKnowledge means the question is answerable from general knowledge.
	IntentKnowledge Intent = "knowledge"
	// IntentGeneral is the ambiguous fallback, answered without special framing.
	IntentGeneral Intent = "general"
)

// Local decision thresholds. Empirically tuned together with the weight
// tables; keep in sync with them.
const minConfidenceScore = 3

// DefaultCacheTTL is how long a classification stays valid for identical
// normalized messages.
const DefaultCacheTTL = 5 * time.Minute

// Classifier resolves a message to exactly one intent. Lexical evidence
// decides locally when conclusive; otherwise a single LLM classification
// call is made with a strict local fallback. Results are cached by
// normalized message text.
type Classifier struct {
	provider llm.LLMProvider
	cache    *cache.Cache
	logger   logger.ILogger
}

// NewClassifier creates an intent classifier with its own result cache.
func NewClassifier(provider llm.LLMProvider, log logger.ILogger) *Classifier {
	return NewClassifierWithTTL(provider, log, DefaultCacheTTL)
}

// NewClassifierWithTTL creates a classifier whose cached results expire
// after ttl.
func NewClassifierWithTTL(provider llm.LLMProvider, log logger.ILogger, ttl time.Duration) *Classifier {
	return &Classifier{
		provider: provider,
		cache:    cache.New(ttl, 10*time.Minute),
		logger:   log,
	}
}

// Classify always returns a label; external call failures degrade to the
// local fallback and never propagate.
func (c *Classifier) Classify(ctx context.Context, message string) Intent {
	key := strings.TrimSpace(strings.ToLower(message))
	if cached, found := c.cache.Get(key); found {
		return cached.(Intent)
	}

	scoreDB, scoreKnowledge := Scores(message)

	// Conclusive local evidence: clear winner above the confidence gate.
	if scoreDB > scoreKnowledge && scoreDB >= minConfidenceScore {
		return c.store(key, IntentDatabase)
	}
	if scoreKnowledge > scoreDB && scoreKnowledge >= minConfidenceScore {
		return c.store(key, IntentKnowledge)
	}

	// Inconclusive: escalate to the LLM with a strict fallback.
	resolved := c.classifyWithLLM(ctx, message, scoreDB, scoreKnowledge)
	return c.store(key, resolved)
}

func (c *Classifier) store(key string, label Intent) Intent {
	c.cache.Set(key, label, cache.DefaultExpiration)
	return label
}

func (c *Classifier) classifyWithLLM(ctx context.Context, message string, scoreDB, scoreKnowledge int) Intent {
	prompt := fmt.Sprintf(`Analiza esta pregunta y clasifícala en UNA de estas categorías:
- "database": Si necesita consultar la base de datos de la tienda (stock, precios específicos, productos disponibles en la tienda, usuarios registrados, ventas)
- "knowledge": Si necesita información general (historia, fechas de lanzamiento, especificaciones técnicas generales, comparaciones, qué es algo)
- "general": Si es una pregunta general sobre tecnología que no requiere ninguna de las anteriores

Pregunta: "%s"

Responde SOLO con una palabra: "database", "knowledge" o "general"`, message)

	response, err := c.provider.Generate(ctx, prompt,
		llm.WithModel(llm.ClassifierModel),
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(10),
	)
	if err != nil {
		c.logger.Warn("intent", "LLM classification failed, using local fallback", map[string]interface{}{
			"error": err.Error(),
		})
		if scoreDB >= scoreKnowledge {
			return IntentDatabase
		}
		return IntentGeneral
	}

	label := strings.ToLower(strings.TrimSpace(response))
	switch {
	case strings.Contains(label, "database"):
		return IntentDatabase
	case strings.Contains(label, "knowledge"):
		return IntentKnowledge
	default:
		return IntentGeneral
	}
}
