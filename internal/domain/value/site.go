package value

// AllSites is the dropdown sentinel selecting every launch site.
const AllSites = "ALL"

// SiteSelection is the value of the site dropdown. Anything that is neither
// AllSites nor a site present in the table simply matches no records.
type SiteSelection string

func (s SiteSelection) IsAll() bool {
	return s == AllSites
}

func (s SiteSelection) Matches(site string) bool {
	return s.IsAll() || string(s) == site
}

func (s SiteSelection) String() string {
	return string(s)
}
