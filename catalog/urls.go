package catalog

import "strings"

// brandBases maps a lowercase vendor fragment to its storefront base URL.
// Schema-A exports ship only a relative handle, so absolute product URLs
// are built from this table.
var brandBases = []struct {
	fragment string
	base     string
}{
	{"snitch", "https://www.snitch.co.in"},
	{"fuaark", "https://fuaark.com"},
	{"techno", "https://www.technosport.in"},
	{"rare", "https://thehouseofrare.com"},
}

// baseUrlForVendor resolves a vendor name to its storefront base URL using
// case-insensitive substring matching. Unknown vendors yield an empty base,
// which leaves the product URL as the raw handle.
func baseUrlForVendor(vendor string) string {
	v := strings.ToLower(vendor)
	for _, entry := range brandBases {
		if strings.Contains(v, entry.fragment) {
			return entry.base
		}
	}
	return ""
}
