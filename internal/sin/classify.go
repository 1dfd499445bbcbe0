package sin

// Class is the metadata bucket derived from a number's first digit.
// RegionClass and RegistrantClass implement it.
type Class interface {
	String() string
	Assigned() bool
}

// RegionClass is the registration area of a SIN.
type RegionClass uint8

const (
	RegionReserved RegionClass = iota
	RegionAtlantic
	RegionQuebec
	RegionOntario
	RegionPrairiesNorth
	RegionPacificYukon
	RegionUnassigned
	RegionTemporary
)

var regionByLead = [10]RegionClass{
	0: RegionReserved,
	1: RegionAtlantic,
	2: RegionQuebec,
	3: RegionQuebec,
	4: RegionOntario,
	5: RegionOntario,
	6: RegionPrairiesNorth,
	7: RegionPacificYukon,
	8: RegionUnassigned,
	9: RegionTemporary,
}

var regionNames = [...]string{
	RegionReserved:      "Reserved",
	RegionAtlantic:      "Atlantic",
	RegionQuebec:        "Quebec",
	RegionOntario:       "Ontario",
	RegionPrairiesNorth: "PrairiesNorth",
	RegionPacificYukon:  "PacificYukon",
	RegionUnassigned:    "Unassigned",
	RegionTemporary:     "Temporary",
}

func (c RegionClass) String() string {
	if int(c) < len(regionNames) {
		return regionNames[c]
	}
	return "Unassigned"
}

// Assigned is false for the reserved 0 series and the business range 8.
func (c RegionClass) Assigned() bool {
	return c != RegionReserved && c != RegionUnassigned
}

// RegistrantClass is the registrant category of a BN.
type RegistrantClass uint8

const (
	RegistrantUnassigned RegistrantClass = iota
	RegistrantBusiness
	// RegistrantShared covers the 7 series, also used for BC and Yukon SINs.
	RegistrantShared
)

var registrantByLead = [10]RegistrantClass{
	7: RegistrantShared,
	8: RegistrantBusiness,
}

func (c RegistrantClass) String() string {
	switch c {
	case RegistrantBusiness:
		return "Business"
	case RegistrantShared:
		return "Shared"
	default:
		return "Unassigned"
	}
}

func (c RegistrantClass) Assigned() bool {
	return c != RegistrantUnassigned
}

// Classify looks the first digit up in the table for k. It never fails;
// an unknown kind is classified as a SIN.
func Classify(d Digits, k Kind) Class {
	if k == KindBN {
		return registrantByLead[d.Lead()]
	}
	return regionByLead[d.Lead()]
}
