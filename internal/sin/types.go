package sin

// SINType is a finer category than RegionClass. The first digit alone often
// allows several of them.
type SINType uint8

const (
	// CRAAssigned covers Individual, Temporary and Adoption Tax Numbers.
	CRAAssigned SINType = iota
	TemporaryResident
	BusinessNumber
	OverseasForces
	Alberta
	BritishColumbia
	Manitoba
	NewBrunswick
	NewfoundlandLabrador
	NorthwestTerritories
	NovaScotia
	Nunavut
	Ontario
	PrinceEdwardIsland
	Quebec
	Saskatchewan
	Yukon
)

var sinTypeNames = [...]string{
	CRAAssigned:          "CRAAssigned",
	TemporaryResident:    "TemporaryResident",
	BusinessNumber:       "BusinessNumber",
	OverseasForces:       "OverseasForces",
	Alberta:              "Alberta",
	BritishColumbia:      "BritishColumbia",
	Manitoba:             "Manitoba",
	NewBrunswick:         "NewBrunswick",
	NewfoundlandLabrador: "NewfoundlandLabrador",
	NorthwestTerritories: "NorthwestTerritories",
	NovaScotia:           "NovaScotia",
	Nunavut:              "Nunavut",
	Ontario:              "Ontario",
	PrinceEdwardIsland:   "PrinceEdwardIsland",
	Quebec:               "Quebec",
	Saskatchewan:         "Saskatchewan",
	Yukon:                "Yukon",
}

func (t SINType) String() string {
	if int(t) < len(sinTypeNames) {
		return sinTypeNames[t]
	}
	return "Unknown"
}

func (t SINType) IsProvince() bool {
	return t >= Alberta && t <= Yukon
}

// IsHuman is false only for business numbers.
func (t SINType) IsHuman() bool {
	return t != BusinessNumber
}

var typesByLead = [10][]SINType{
	0: {CRAAssigned},
	1: {NovaScotia, NewBrunswick, PrinceEdwardIsland, NewfoundlandLabrador},
	2: {Quebec},
	3: {Quebec},
	4: {Ontario, OverseasForces},
	5: {Ontario, OverseasForces},
	6: {Ontario, Manitoba, Saskatchewan, Alberta, NorthwestTerritories, Nunavut},
	7: {BritishColumbia, Yukon, BusinessNumber},
	8: {BusinessNumber},
	9: {TemporaryResident},
}

// Types lists every type the number could be, based on its first digit.
// The returned slice is a fresh copy.
func (d Digits) Types() []SINType {
	src := typesByLead[d.Lead()]
	out := make([]SINType, len(src))
	copy(out, src)
	return out
}
