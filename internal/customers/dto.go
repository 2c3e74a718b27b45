package customers

type RegisterCustomerRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Phone        string `json:"phone" validate:"max=40"`
	Neighborhood string `json:"neighborhood" validate:"max=120"`
	Source       string `json:"source" validate:"max=60"`
}

type CampaignMessageRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Kind string `json:"kind" validate:"required,oneof=merci relance anniversaire"`
}
