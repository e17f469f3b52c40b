package teams

// Identity is a franchise entry in the static team table.
type Identity struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Nickname     string `json:"nickname"`
}

// AllTeams is the reference table of active franchises in provider listing order.
// Franchise ids and abbreviations change at most with relocations, so the table is compiled in.
var AllTeams = []Identity{
	{ID: 1610612737, FullName: "Atlanta Hawks", Abbreviation: "ATL", City: "Atlanta", Nickname: "Hawks"},
	{ID: 1610612738, FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Nickname: "Celtics"},
	{ID: 1610612739, FullName: "Cleveland Cavaliers", Abbreviation: "CLE", City: "Cleveland", Nickname: "Cavaliers"},
	{ID: 1610612740, FullName: "New Orleans Pelicans", Abbreviation: "NOP", City: "New Orleans", Nickname: "Pelicans"},
	{ID: 1610612741, FullName: "Chicago Bulls", Abbreviation: "CHI", City: "Chicago", Nickname: "Bulls"},
	{ID: 1610612742, FullName: "Dallas Mavericks", Abbreviation: "DAL", City: "Dallas", Nickname: "Mavericks"},
	{ID: 1610612743, FullName: "Denver Nuggets", Abbreviation: "DEN", City: "Denver", Nickname: "Nuggets"},
	{ID: 1610612744, FullName: "Golden State Warriors", Abbreviation: "GSW", City: "Golden State", Nickname: "Warriors"},
	{ID: 1610612745, FullName: "Houston Rockets", Abbreviation: "HOU", City: "Houston", Nickname: "Rockets"},
	{ID: 1610612746, FullName: "Los Angeles Clippers", Abbreviation: "LAC", City: "Los Angeles", Nickname: "Clippers"},
	{ID: 1610612747, FullName: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Nickname: "Lakers"},
	{ID: 1610612748, FullName: "Miami Heat", Abbreviation: "MIA", City: "Miami", Nickname: "Heat"},
	{ID: 1610612749, FullName: "Milwaukee Bucks", Abbreviation: "MIL", City: "Milwaukee", Nickname: "Bucks"},
	{ID: 1610612750, FullName: "Minnesota Timberwolves", Abbreviation: "MIN", City: "Minnesota", Nickname: "Timberwolves"},
	{ID: 1610612751, FullName: "Brooklyn Nets", Abbreviation: "BKN", City: "Brooklyn", Nickname: "Nets"},
	{ID: 1610612752, FullName: "New York Knicks", Abbreviation: "NYK", City: "New York", Nickname: "Knicks"},
	{ID: 1610612753, FullName: "Orlando Magic", Abbreviation: "ORL", City: "Orlando", Nickname: "Magic"},
	{ID: 1610612754, FullName: "Indiana Pacers", Abbreviation: "IND", City: "Indiana", Nickname: "Pacers"},
	{ID: 1610612755, FullName: "Philadelphia 76ers", Abbreviation: "PHI", City: "Philadelphia", Nickname: "76ers"},
	{ID: 1610612756, FullName: "Phoenix Suns", Abbreviation: "PHX", City: "Phoenix", Nickname: "Suns"},
	{ID: 1610612757, FullName: "Portland Trail Blazers", Abbreviation: "POR", City: "Portland", Nickname: "Trail Blazers"},
	{ID: 1610612758, FullName: "Sacramento Kings", Abbreviation: "SAC", City: "Sacramento", Nickname: "Kings"},
	{ID: 1610612759, FullName: "San Antonio Spurs", Abbreviation: "SAS", City: "San Antonio", Nickname: "Spurs"},
	{ID: 1610612760, FullName: "Oklahoma City Thunder", Abbreviation: "OKC", City: "Oklahoma City", Nickname: "Thunder"},
	{ID: 1610612761, FullName: "Toronto Raptors", Abbreviation: "TOR", City: "Toronto", Nickname: "Raptors"},
	{ID: 1610612762, FullName: "Utah Jazz", Abbreviation: "UTA", City: "Utah", Nickname: "Jazz"},
	{ID: 1610612763, FullName: "Memphis Grizzlies", Abbreviation: "MEM", City: "Memphis", Nickname: "Grizzlies"},
	{ID: 1610612764, FullName: "Washington Wizards", Abbreviation: "WAS", City: "Washington", Nickname: "Wizards"},
	{ID: 1610612765, FullName: "Detroit Pistons", Abbreviation: "DET", City: "Detroit", Nickname: "Pistons"},
	{ID: 1610612766, FullName: "Charlotte Hornets", Abbreviation: "CHA", City: "Charlotte", Nickname: "Hornets"},
}
