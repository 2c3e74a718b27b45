package customers

import "fmt"

// Campaign message kinds the boutique sends by WhatsApp.
const (
	CampaignThanks   = "merci"
	CampaignNudge    = "relance"
	CampaignBirthday = "anniversaire"
)

// CampaignKinds in display order.
var CampaignKinds = []string{CampaignThanks, CampaignNudge, CampaignBirthday}

// CampaignText renders the message body for a campaign kind, personalised
// with the customer's first name.
func CampaignText(kind, firstName string) (string, error) {
	switch kind {
	case CampaignThanks:
		return fmt.Sprintf("Coucou %s ! ❤️ Merci d'être une cliente si fidèle. Passe me voir pour un petit cadeau !", firstName), nil
	case CampaignNudge:
		return fmt.Sprintf("Toc toc %s ! 👀 J'ai reçu des nouveautés qui t'iraient à merveille. Viens jeter un œil !", firstName), nil
	case CampaignBirthday:
		return fmt.Sprintf("Joyeux Anniversaire %s ! 🎂🥳 Passe récupérer ton cadeau à la boutique (-20%% aujourd'hui) !", firstName), nil
	default:
		return "", fmt.Errorf("unknown campaign kind %q", kind)
	}
}
