package profile

// Overrides carries optional replacement values gathered from a
// configuration source. Empty fields mean "keep the current value".
type Overrides struct {
	Name            string
	ShortName       string
	Timezone        string
	LogoURL         string
	PrimaryColor    string
	SecondaryColor  string
	RevSportBaseURL string
}

// Apply overlays the non-empty override values onto the profile. It performs
// no validation; the caller revalidates the result before trusting it.
func (p *ClubProfile) Apply(o Overrides) {
	if o.Name != "" {
		p.Club.Name = o.Name
	}
	if o.ShortName != "" {
		p.Club.ShortName = o.ShortName
	}
	if o.Timezone != "" {
		p.Club.Timezone = o.Timezone
	}
	if o.LogoURL != "" {
		p.Branding.LogoURL = o.LogoURL
	}
	if o.PrimaryColor != "" {
		p.Branding.PrimaryColor = o.PrimaryColor
	}
	if o.SecondaryColor != "" {
		p.Branding.SecondaryColor = o.SecondaryColor
	}
	if o.RevSportBaseURL != "" {
		p.RevSport.BaseURL = o.RevSportBaseURL
	}
}
