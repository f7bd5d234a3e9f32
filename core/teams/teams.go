// ABOUTME: Static NBA team table keyed by abbreviation
// ABOUTME: Resolves full names, team subreddits and logo/snoo asset names

package teams

import (
	"sort"
	"strings"

	coreerrors "swish-api/core/errors"
)

// Team is one row of the static team table
type Team struct {
	Abbr      string `json:"abbr"`
	Name      string `json:"name"`
	Subreddit string `json:"subreddit"`
	Logo      string `json:"logo"`
	Snoo      string `json:"snoo"`
}

const (
	// NBASubreddit is the league subreddit
	NBASubreddit = "nba"

	// SwishMultireddit is the app's combined multireddit
	SwishMultireddit = "swish"

	// DefaultAsset is shown for subreddits without a team asset
	DefaultAsset = "rnbasnoo"

	swishSnoo = "ic_launcher"
)

var table = []Team{
	{"atl", "Atlanta Hawks", "AtlantaHawks", "atl", "atl"},
	{"bkn", "Brooklyn Nets", "GoNets", "bkn", "bkn_snoo"},
	{"bos", "Boston Celtics", "bostonceltics", "bos", "bos_snoo"},
	{"cha", "Charlotte Hornets", "CharlotteHornets", "cha", "cha_snoo"},
	{"chi", "Chicago Bulls", "chicagobulls", "chi", "chi_snoo"},
	{"cle", "Cleveland Cavaliers", "clevelandcavs", "cle", "cle"},
	{"dal", "Dallas Mavericks", "Mavericks", "dal", "dal_snoo"},
	{"den", "Denver Nuggets", "denvernuggets", "den", "den_snoo"},
	{"det", "Detroit Pistons", "DetroitPistons", "det", "det"},
	{"gsw", "Golden State Warriors", "warriors", "gsw", "gsw_snoo"},
	{"hou", "Houston Rockets", "rockets", "hou", "hou_snoo"},
	{"ind", "Indiana Pacers", "pacers", "ind", "ind_snoo"},
	{"lac", "Los Angeles Clippers", "LAClippers", "lac", "lac_snoo"},
	{"lal", "Los Angeles Lakers", "lakers", "lal", "lal_snoo"},
	{"mem", "Memphis Grizzlies", "memphisgrizzlies", "mem", "mem_snoo"},
	{"mia", "Miami Heat", "heat", "mia", "mia_snoo"},
	{"mil", "Milwaukee Bucks", "MkeBucks", "mil", "mil_snoo"},
	{"min", "Minnesota Timberwolves", "timberwolves", "min", "min_snoo"},
	{"nop", "New Orleans Pelicans", "NOLAPelicans", "nop", "nop"},
	{"nyk", "New York Knicks", "NYKnicks", "nyk", "nyk_snoo"},
	{"okc", "Oklahoma City Thunder", "Thunder", "okc", "okc_snoo"},
	{"orl", "Orlando Magic", "OrlandoMagic", "orl", "orl_snoo"},
	{"phi", "Philadelphia 76ers", "sixers", "phi", "phi"},
	{"phx", "Phoenix Suns", "suns", "phx", "phx_snoo"},
	{"por", "Portland Trail Blazers", "ripcity", "por", "por_snoo"},
	{"sac", "Sacramento Kings", "kings", "sac", "sac_snoo"},
	{"sas", "San Antonio Spurs", "NBASpurs", "sas", "sas_snoo"},
	{"tor", "Toronto Raptors", "torontoraptors", "tor", "tor"},
	{"uta", "Utah Jazz", "UtahJazz", "uta", "uta_snoo"},
	{"was", "Washington Wizards", "washingtonwizards", "was", "was_snoo"},
}

var (
	byAbbr      = make(map[string]Team, len(table))
	bySubreddit = make(map[string]Team, len(table))
)

func init() {
	for _, t := range table {
		byAbbr[t.Abbr] = t
		bySubreddit[t.Subreddit] = t
	}
}

// All returns every team ordered by abbreviation
func All() []Team {
	out := make([]Team, len(table))
	copy(out, table)
	sort.Slice(out, func(i, j int) bool { return out[i].Abbr < out[j].Abbr })
	return out
}

// Lookup finds a team by abbreviation (case-insensitive)
func Lookup(abbr string) (Team, bool) {
	t, ok := byAbbr[strings.ToLower(strings.TrimSpace(abbr))]
	return t, ok
}

// FullName returns the team's full name, or "" when the abbreviation is unknown
func FullName(abbr string) string {
	t, _ := Lookup(abbr)
	return t.Name
}

// SubredditFromAbbr returns the team subreddit for an abbreviation
func SubredditFromAbbr(abbr string) (string, error) {
	t, ok := Lookup(abbr)
	if !ok {
		return "", &coreerrors.ValidationError{
			Field:   "abbr",
			Message: "invalid abbreviation for favorite team: " + abbr,
		}
	}
	return t.Subreddit, nil
}

// LogoForSubreddit returns the logo asset for a team subreddit
func LogoForSubreddit(subreddit string) string {
	if t, ok := bySubreddit[subreddit]; ok {
		return t.Logo
	}
	return DefaultAsset
}

// SnooForSubreddit returns the snoo asset for a team subreddit
func SnooForSubreddit(subreddit string) string {
	if subreddit == SwishMultireddit {
		return swishSnoo
	}
	if t, ok := bySubreddit[subreddit]; ok {
		return t.Snoo
	}
	return DefaultAsset
}
