// internal/ai/models_test.go
package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelForID(t *testing.T) {
	assert.Equal(t, ModelMistralSmall, ModelForID(1))
	assert.Equal(t, ModelDolphinVenice, ModelForID(2))
	assert.Equal(t, ModelNemotronNano, ModelForID(3))
	assert.Equal(t, ModelQwen3, ModelForID(4))

	// Unknown ids fall back to the default model.
	assert.Equal(t, DefaultOpenRouterModel, ModelForID(0))
	assert.Equal(t, DefaultOpenRouterModel, ModelForID(99))
	assert.Equal(t, DefaultOpenRouterModel, ModelForID(-1))
}

func TestRandomModelStaysInRegistry(t *testing.T) {
	known := map[string]bool{
		ModelMistralSmall:      true,
		ModelDolphinVenice:     true,
		ModelNemotronNano:      true,
		ModelQwen3:             true,
		DefaultOpenRouterModel: true,
	}

	for i := 0; i < 50; i++ {
		assert.True(t, known[RandomModel()])
	}
}
