// Package landing describes the marketing landing page content.
package landing

type (
	Stat struct {
		Value string `json:"value" yaml:"value"`
		Label string `json:"label" yaml:"label"`
	}

	Hero struct {
		Title    string `json:"title" yaml:"title"`
		Subtitle string `json:"subtitle" yaml:"subtitle"`
		Tagline  string `json:"tagline" yaml:"tagline"`
		Stats    []Stat `json:"stats" yaml:"stats"`
	}

	Feature struct {
		Icon        string `json:"icon" yaml:"icon"`
		Title       string `json:"title" yaml:"title"`
		Description string `json:"description" yaml:"description"`
	}

	RoleCard struct {
		Role        string   `json:"role" yaml:"role"`
		Title       string   `json:"title" yaml:"title"`
		Description string   `json:"description" yaml:"description"`
		Features    []string `json:"features" yaml:"features"`
	}

	CTA struct {
		Title       string   `json:"title" yaml:"title"`
		Description string   `json:"description" yaml:"description"`
		Benefits    []string `json:"benefits" yaml:"benefits"`
	}

	Page struct {
		Hero          Hero       `json:"hero" yaml:"hero"`
		FeaturesTitle string     `json:"featuresTitle" yaml:"features_title"`
		FeaturesBlurb string     `json:"featuresBlurb" yaml:"features_blurb"`
		Features      []Feature  `json:"features" yaml:"features"`
		RolesTitle    string     `json:"rolesTitle" yaml:"roles_title"`
		RolesBlurb    string     `json:"rolesBlurb" yaml:"roles_blurb"`
		Roles         []RoleCard `json:"roles" yaml:"roles"`
		CTA           CTA        `json:"cta" yaml:"cta"`
	}
)
