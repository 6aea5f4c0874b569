// README: Preference profiles and the transport-type bonus table.
package scoring

import "strings"

// Profile weights price, speed, and comfort; each profile sums to 1.0.
type Profile struct {
	Price   float64
	Speed   float64
	Comfort float64
}

const DefaultProfile = "balanced"

var profiles = map[string]Profile{
	"balanced":    {Price: 0.4, Speed: 0.4, Comfort: 0.2},
	"economic":    {Price: 0.5, Speed: 0.3, Comfort: 0.2},
	"fast":        {Price: 0.3, Speed: 0.5, Comfort: 0.2},
	"comfortable": {Price: 0.3, Speed: 0.2, Comfort: 0.5},
}

// ProfileFor returns the named profile, or the balanced default for anything
// unrecognized.
func ProfileFor(name string) Profile {
	if p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return profiles[DefaultProfile]
}

// Profiles returns a copy of the profile table.
func Profiles() map[string]Profile {
	out := make(map[string]Profile, len(profiles))
	for name, p := range profiles {
		out[name] = p
	}
	return out
}

// Transport-type bonus, applied by keyword containment. Priority order is
// fixed; the first matching keyword wins.
var transportBonus = []struct {
	Keyword string
	Factor  float64
}{
	{"BRT", 1.1},
	{"TAXI", 1.0},
	{"TER", 0.9},
	{"DEM-DIKK", 1.2},
}

// Option carries the attributes the scoring formula reads.
type Option struct {
	TransportType string
	Price         float64
	Speed         float64
	Comfort       float64
}
