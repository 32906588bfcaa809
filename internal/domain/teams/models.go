package teams

// Team is a league team as edited by content authors.
// Colors are optional hex strings; LogoURL is optional.
type Team struct {
	ID              int    `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"background_color"`
	TextColor       string `json:"textColor,omitempty" yaml:"text_color"`
	LogoURL         string `json:"logoUrl,omitempty" yaml:"logo_url"`
}
