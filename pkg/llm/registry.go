package llm

import "strings"

// ModelInfo describes a chat model exposed to API consumers.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
}

// GroqModels is the static allow-list of completion models. Every completion
// request is validated against it before dispatch.
var GroqModels = []ModelInfo{
	{
		ID:          "llama-3.3-70b-versatile",
		Name:        "Llama 3.3 70B Versatile",
		Description: "Modelo versátil y potente para tareas generales",
		Provider:    "meta-llama",
	},
	{
		ID:          "llama-3.1-70b-versatile",
		Name:        "Llama 3.1 70B Versatile",
		Description: "Versión anterior del modelo versátil",
		Provider:    "meta-llama",
	},
	{
		ID:          "llama-3.1-8b-instant",
		Name:        "Llama 3.1 8B Instant",
		Description: "Modelo rápido y ligero para respuestas instantáneas",
		Provider:    "meta-llama",
	},
	{
		ID:          "llama-3.1-405b-reasoning",
		Name:        "Llama 3.1 405B Reasoning",
		Description: "Modelo avanzado para razonamiento complejo",
		Provider:    "meta-llama",
	},
	{
		ID:          "mixtral-8x7b-32768",
		Name:        "Mixtral 8x7B",
		Description: "Modelo Mixtral de alta calidad",
		Provider:    "mixtral",
	},
	{
		ID:          "gemma2-9b-it",
		Name:        "Gemma2 9B",
		Description: "Modelo Gemma2 optimizado para instrucciones",
		Provider:    "google",
	},
	{
		ID:          "meta-llama/llama-4-scout-17b-16e-instruct",
		Name:        "Llama 4 Scout 17B",
		Description: "Modelo especializado en instrucciones",
		Provider:    "meta-llama",
	},
}

// ClassifierModel is the fast model used for intent classification and
// history summarization. Not user-selectable.
const ClassifierModel = "llama-3.1-8b-instant"

// AvailableModels returns the model allow-list.
func AvailableModels() []ModelInfo {
	return GroqModels
}

// IsValidModel reports whether id is in the allow-list.
func IsValidModel(id string) bool {
	for _, m := range GroqModels {
		if m.ID == id {
			return true
		}
	}
	return false
}

// ValidModelIDs returns the allow-listed ids joined for error messages.
func ValidModelIDs() string {
	ids := make([]string, len(GroqModels))
	for i, m := range GroqModels {
		ids[i] = m.ID
	}
	return strings.Join(ids, ", ")
}
