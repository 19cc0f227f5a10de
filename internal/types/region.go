package types

import "strings"

// Enum values for storage provider regions
type Region string

const (
	RegionNorthAmerica Region = "north_america"
	RegionEurope       Region = "europe"
	RegionAsia         Region = "asia"
	RegionOther        Region = "other"
)

func (r Region) String() string {
	return string(r)
}

// ParseRegion maps a free-form region label from an external market feed
// to one of the known regions. Labels that cannot be recognized fall into
// RegionOther. Registry writes never go through this function, stored
// provider records keep whatever region value was submitted.
func ParseRegion(label string) Region {
	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	switch normalized {
	case "north_america", "na", "us", "usa", "canada", "united_states":
		return RegionNorthAmerica
	case "europe", "eu":
		return RegionEurope
	case "asia", "apac", "asia_pacific":
		return RegionAsia
	default:
		return RegionOther
	}
}
