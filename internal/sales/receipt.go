package sales

import "fmt"

// ReceiptVariants is how many receipt texts exist; one is picked at random
// per sale so regulars do not always get the same message.
const ReceiptVariants = 2

// ReceiptText renders one receipt message variant.
func ReceiptText(variant int, shopName, firstName, product, totalDisplay string) string {
	switch variant % ReceiptVariants {
	case 0:
		return fmt.Sprintf(`Coucou %s ! C'est %s 👑
Merci infiniment pour ta confiance.

🛍️ *Ton shopping :* %s
💎 *Total :* %s

Tu vas être rayonnante avec ça ! Envoie-nous une photo quand tu le portes, on adore te voir briller. ✨`, firstName, shopName, product, totalDisplay)
	default:
		return fmt.Sprintf(`Hello ma belle %s ! 👋
C'est validé chez %s !

👗 *Article :* %s
💸 *Montant :* %s

Merci de soutenir mon business. Prends soin de toi et à très vite ! 😘`, firstName, shopName, product, totalDisplay)
	}
}
