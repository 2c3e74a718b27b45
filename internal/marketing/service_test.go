package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyEmbedsProductAndShopLink(t *testing.T) {
	svc := NewService("Paruise Shop", "+228 93 99 14 99")

	copy := svc.Copy("Cette Robe en Soie")

	assert.Contains(t, copy.FacebookPost, "Cette Robe en Soie")
	assert.Contains(t, copy.FacebookPost, "Paruise Shop")
	assert.Contains(t, copy.FacebookPost, "https://wa.me/22893991499")
	assert.Equal(t, "Arrête de scroller si tu veux être la plus classe.", copy.TikTokCaption)
	assert.Contains(t, copy.TikTokHashtags, "#ParuiseShop")
	assert.NotEmpty(t, copy.TikTokSoundHint)
}
