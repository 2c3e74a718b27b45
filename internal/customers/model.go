package customers

import "strings"

// Customer mirrors one CLIENTS row. The name doubles as the (ambiguous)
// natural key; when duplicates exist, the first row wins.
type Customer struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Neighborhood string `json:"neighborhood"`
	Source       string `json:"source"`
}

// Sources lists how a customer found the boutique.
var Sources = []string{
	"Passage devant boutique",
	"TikTok",
	"Facebook",
	"Recommandation Amie",
}

// TopCustomer is one entry of the spending podium.
type TopCustomer struct {
	Name       string  `json:"name"`
	TotalSpent float64 `json:"total_spent"`
}

// FirstName extracts the leading name token used in personal messages.
func FirstName(fullName string) string {
	name := strings.TrimSpace(fullName)
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}
