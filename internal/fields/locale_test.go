package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocale(t *testing.T) {
	assert.Equal(t, "", ResolveLocale(nil))
	assert.Equal(t, "fr-FR", ResolveLocale("fr-FR"))
	assert.Equal(t, "fr-FR", ResolveLocale(map[string]any{"language": "fr", "country": "FR"}))
	assert.Equal(t, "en", ResolveLocale(map[string]any{"lang": "en"}))
	assert.Equal(t, "DE", ResolveLocale(map[string]any{"region": "DE"}))
	assert.Equal(t, "fr", ResolveLocale([]any{map[string]any{"locale": "fr"}}))
	assert.Equal(t, "", ResolveLocale([]any{}))
	assert.Equal(t, "", ResolveLocale(42))
}
