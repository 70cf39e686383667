// internal/ai/models.go
package ai

import "math/rand"

// OpenRouter model registry. Route parameters select a model by registry id;
// anything outside the registry falls back to DefaultOpenRouterModel.
const (
	ModelMistralSmall  = "mistralai/mistral-small-3.2-24b-instruct:free"
	ModelDolphinVenice = "cognitivecomputations/dolphin-mistral-24b-venice-edition:free"
	ModelNemotronNano  = "nvidia/nemotron-nano-9b-v2:free"
	ModelQwen3         = "qwen/qwen3-4b:free"

	DefaultOpenRouterModel = "meta-llama/llama-3.3-70b-instruct"
)

var openRouterModels = map[int]string{
	1: ModelMistralSmall,
	2: ModelDolphinVenice,
	3: ModelNemotronNano,
	4: ModelQwen3,
}

// ModelForID resolves a registry id to an OpenRouter model name.
func ModelForID(id int) string {
	if model, ok := openRouterModels[id]; ok {
		return model
	}
	return DefaultOpenRouterModel
}

// RandomModel picks one model from the registry, default included.
func RandomModel() string {
	all := []string{
		ModelMistralSmall,
		ModelDolphinVenice,
		ModelNemotronNano,
		ModelQwen3,
		DefaultOpenRouterModel,
	}
	return all[rand.Intn(len(all))]
}
