// Package marketing generates French social media copy around a featured
// product, with a WhatsApp call-to-action pointing at the shop's own number.
package marketing

import (
	"fmt"

	"github.com/paruise-shop/paruise/internal/whatsapp"
)

const facebookTemplate = `🤫 JE NE DEVRAIS PAS VOUS MONTRER ÇA...

Quand j'ai ouvert le carton et vu %s... je n'ai pas pu résister.
La coupe ? Parfaite. La matière ? Une caresse.

👑 Mes Reines, attention, je n'en ai que quelques pièces.
📍 %s (Face Station Sanol)
👇 Cliquez vite ici : https://wa.me/%s`

const tikTokCaption = "Arrête de scroller si tu veux être la plus classe."

const tikTokSoundHint = "Son : Afro tendance douce."

var tikTokHashtags = []string{"#Lome", "#TogoFashion", "#ParuiseShop", "#Chic228", "#OOTD"}

type Service struct {
	shopName  string
	shopPhone string
}

func NewService(shopName, shopPhone string) *Service {
	return &Service{shopName: shopName, shopPhone: shopPhone}
}

// Copy fills the Facebook storytelling post and the TikTok caption set for
// the given product name. The product text is inserted as-is; it reads best
// with an article, "Cette Robe en Soie" rather than "Robe en Soie".
func (s *Service) Copy(featuredProduct string) Copy {
	return Copy{
		FacebookPost:    fmt.Sprintf(facebookTemplate, featuredProduct, s.shopName, whatsapp.NormalizePhone(s.shopPhone)),
		TikTokCaption:   tikTokCaption,
		TikTokHashtags:  tikTokHashtags,
		TikTokSoundHint: tikTokSoundHint,
	}
}
