package marketing

// CopyRequest names the product to feature in the generated posts.
type CopyRequest struct {
	FeaturedProduct string `json:"featured_product" validate:"required"`
}

// Copy bundles ready-to-paste social media texts for one product.
type Copy struct {
	FacebookPost    string   `json:"facebook_post"`
	TikTokCaption   string   `json:"tiktok_caption"`
	TikTokHashtags  []string `json:"tiktok_hashtags"`
	TikTokSoundHint string   `json:"tiktok_sound_hint"`
}
