// ABOUTME: Flair CSS class to team asset table
// ABOUTME: Pure data; unknown classes have no asset

package flair

// cssAssets maps /r/nba flair CSS classes to team asset names
var cssAssets = map[string]string{
	"76ers1": "phi", "76ers2": "phi", "76ers3": "phi", "76ers4": "phi", "76ers5": "phi",
	"Bucks1": "mil", "Bucks2": "mil", "Bucks3": "mil", "Bucks4": "mil", "Bucks5": "mil",
	"Bucks6": "mil", "Bucks7": "mil",
	"Bulls":      "chi",
	"Cavaliers1": "cle", "Cavaliers2": "cle", "Cavaliers3": "cle",
	"Celtics1": "bos", "Celtics2": "bos",
	"Clippers": "lac", "Clippers2": "lac", "Clippers3": "lac", "Clippers4": "lac",
	"Grizzlies": "mem", "Grizzlies2": "mem",
	"VanGrizzlies": "mem", "VanGrizzlies2": "mem", "VanGrizzlies3": "mem",
	"Hawks1": "atl", "Hawks2": "atl", "Hawks3": "atl", "HawksSecond": "atl",
	"Heat": "mia", "Heat2": "mia", "Heat3": "mia",
	"Pelicans": "nop", "Pelicans2": "nop", "Pelicans3": "nop", "Pelicans4": "nop", "Pelicans5": "nop",
	"Jazz1": "uta", "Jazz2": "uta", "Jazz3": "uta", "Jazz4": "uta", "Jazz5": "uta",
	"Jazz6": "uta", "Jazz7": "uta",
	"Kings1": "sac", "Kings2": "sac", "Kings3": "sac", "Kings4": "sac", "Kings5": "sac",
	"Kings6": "sac", "Kings7": "sac", "Kings8": "sac",
	"Knicks1": "nyk", "Knicks2": "nyk", "Knicks3": "nyk", "Knicks4": "nyk", "Knicks5": "nyk",
	"KnickerBockers": "nyk",
	"Lakers1":        "lal", "Lakers2": "lal", "Lakers3": "lal", "MinnLakers": "lal",
	"Magic1": "orl", "Magic2": "orl", "Magic3": "orl", "Magic4": "orl",
	"Mavs1": "dal", "Mavs2": "dal", "Mavs3": "dal",
	"Nets1": "bkn", "Nets2": "bkn", "Nets3": "bkn", "Nets4": "bkn",
	"Nuggets1": "den", "Nuggets2": "den", "Nuggets3": "den", "Nuggets4": "den",
	"Pacers1": "ind", "Pacers2": "ind",
	"Pistons1": "det", "Pistons2": "det", "Pistons3": "det", "Pistons4": "det",
	"Raptors1": "tor", "Raptors2": "tor", "Raptors3": "tor", "Raptors4": "tor", "Raptors5": "tor",
	"Raptors6": "tor", "Raptors7": "tor", "Raptors8": "tor", "Raptors9": "tor",
	"TorHuskies": "tor",
	"Rockets1":   "hou", "Rockets2": "hou", "Rockets3": "hou", "SanDiegoRockets": "hou",
	"Spurs1": "sas", "Spurs2": "sas", "Spurs3": "sas",
	"Suns1": "phx", "Suns2": "phx", "Suns3": "phx", "Suns4": "phx", "Suns5": "phx", "Suns6": "phx",
	"Supersonics1": "sea", "Supersonics2": "sea",
	"Thunder":       "okc",
	"Timberwolves1": "min", "Timberwolves2": "min", "Timberwolves3": "min", "Timberwolves4": "min",
	"TrailBlazers1": "por", "TrailBlazers2": "por", "TrailBlazers3": "por", "TrailBlazers4": "por",
	"TrailBlazers5": "por",
	"Warriors1": "gsw", "Warriors2": "gsw", "Warriors3": "gsw", "Warriors4": "gsw",
	"Wizards": "was", "Wizards2": "was", "Wizards3": "was", "Wizards4": "was", "Wizards5": "was",
	"Wizards6":   "was",
	"ChaHornets": "cha", "ChaHornets2": "cha", "ChaHornets3": "cha", "ChaHornets4": "cha",
	"ChaHornets5": "cha", "ChaHornets6": "cha",
	"NBA":  "nba",
	"West": "west",
	"East": "east",
}

// AssetForCSSClass returns the asset name for a flair CSS class
func AssetForCSSClass(cssClass string) (string, bool) {
	asset, ok := cssAssets[cssClass]
	return asset, ok
}
