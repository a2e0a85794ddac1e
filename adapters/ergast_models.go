package adapters

// Ergast payload shapes, trimmed to the fields the flatteners read. The API
// wraps everything in an MRData envelope and returns numbers as strings;
// values are kept as delivered.

type mrDataEnvelope struct {
	MRData *mrData `json:"MRData"`
}

type mrData struct {
	RaceTable      *raceTable      `json:"RaceTable"`
	StandingsTable *standingsTable `json:"StandingsTable"`
}

type raceTable struct {
	Races []ergastRace `json:"Races"`
}

type ergastRace struct {
	Round             string         `json:"round"`
	RaceName          string         `json:"raceName"`
	Circuit           ergastCircuit  `json:"Circuit"`
	Date              string         `json:"date"`
	Results           []ergastResult `json:"Results"`
	QualifyingResults []ergastResult `json:"QualifyingResults"`
}

type ergastCircuit struct {
	CircuitName string `json:"circuitName"`
}

type ergastDriver struct {
	DriverID   string `json:"driverId"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

func (d ergastDriver) fullName() string {
	return d.GivenName + " " + d.FamilyName
}

type ergastConstructor struct {
	Name string `json:"name"`
}

type ergastResult struct {
	Position    string            `json:"position"`
	Number      string            `json:"number"`
	Grid        string            `json:"grid"`
	Points      string            `json:"points"`
	Status      string            `json:"status"`
	Driver      ergastDriver      `json:"Driver"`
	Constructor ergastConstructor `json:"Constructor"`
	FastestLap  *ergastFastestLap `json:"FastestLap"`
	Q1          string            `json:"Q1"`
	Q2          string            `json:"Q2"`
	Q3          string            `json:"Q3"`
}

type ergastFastestLap struct {
	Rank string         `json:"rank"`
	Time *ergastLapTime `json:"Time"`
}

type ergastLapTime struct {
	Time string `json:"time"`
}

type standingsTable struct {
	StandingsLists []standingsList `json:"StandingsLists"`
}

type standingsList struct {
	Round           string                `json:"round"`
	DriverStandings []ergastStandingEntry `json:"DriverStandings"`
}

type ergastStandingEntry struct {
	Position     string              `json:"position"`
	Points       string              `json:"points"`
	Wins         string              `json:"wins"`
	Driver       ergastDriver        `json:"Driver"`
	Constructors []ergastConstructor `json:"Constructors"`
}
