package world

import "sort"

// Snapshot is the complete set of variable values for one simulated
// instant. Levels accumulate; rates describe flow over the interval
// following the instant; auxiliaries are memory-less intermediates that
// decompose the rate equations.
type Snapshot struct {
	// levels
	P    float64 // population (people)
	NR   float64 // natural resources (natural resource units)
	CI   float64 // capital investment (capital units)
	POL  float64 // pollution (pollution units)
	CIAF float64 // capital-investment-in-agriculture fraction

	// rates for the following interval
	BR   float64 // birth rate (people/year)
	DR   float64 // death rate (people/year)
	NRUR float64 // natural-resource-usage rate (units/year)
	CIG  float64 // capital-investment generation (capital units/year)
	CID  float64 // capital-investment discard (capital units/year)
	POLG float64 // pollution generation (pollution units/year)
	POLA float64 // pollution absorption (pollution units/year)

	// auxiliaries
	BRCM  float64 // birth-rate-from-crowding multiplier
	BRFM  float64 // birth-rate-from-food multiplier
	BRMM  float64 // birth-rate-from-material multiplier
	BRPM  float64 // birth-rate-from-pollution multiplier
	CFIFR float64 // capital fraction indicated by food ratio
	CIM   float64 // capital-investment multiplier
	CIQR  float64 // capital-investment-from-quality ratio
	CIR   float64 // capital-investment ratio (capital units/person)
	CIRA  float64 // capital-investment ratio in agriculture
	CR    float64 // crowding ratio
	DRCM  float64 // death-rate-from-crowding multiplier
	DRFM  float64 // death-rate-from-food multiplier
	DRMM  float64 // death-rate-from-material multiplier
	DRPM  float64 // death-rate-from-pollution multiplier
	ECIR  float64 // effective-capital-investment ratio (capital units/person)
	FCM   float64 // food-from-crowding multiplier
	FPCI  float64 // food potential from capital investment
	FPM   float64 // food-from-pollution multiplier
	FR    float64 // food ratio
	MSL   float64 // material standard of living
	NREM  float64 // natural-resource-extraction multiplier
	NRFR  float64 // natural-resource fraction remaining
	NRMM  float64 // natural-resource-from-material multiplier
	POLAT float64 // pollution-absorption time (years)
	POLCM float64 // pollution-from-capital multiplier
	POLR  float64 // pollution ratio
	QL    float64 // quality of life (satisfaction units)
	QLC   float64 // quality of life from crowding
	QLF   float64 // quality of life from food
	QLM   float64 // quality of life from material
	QLP   float64 // quality of life from pollution

	Time float64 // calendar time (years)
}

// fieldIndex maps Forrester's variable names to snapshot fields. It
// replaces the pointer-to-member plot selection of earlier renditions:
// plotters and exporters pick fields by name.
var fieldIndex = map[string]func(*Snapshot) float64{
	"p":    func(s *Snapshot) float64 { return s.P },
	"nr":   func(s *Snapshot) float64 { return s.NR },
	"ci":   func(s *Snapshot) float64 { return s.CI },
	"pol":  func(s *Snapshot) float64 { return s.POL },
	"ciaf": func(s *Snapshot) float64 { return s.CIAF },

	"br":   func(s *Snapshot) float64 { return s.BR },
	"dr":   func(s *Snapshot) float64 { return s.DR },
	"nrur": func(s *Snapshot) float64 { return s.NRUR },
	"cig":  func(s *Snapshot) float64 { return s.CIG },
	"cid":  func(s *Snapshot) float64 { return s.CID },
	"polg": func(s *Snapshot) float64 { return s.POLG },
	"pola": func(s *Snapshot) float64 { return s.POLA },

	"brcm":  func(s *Snapshot) float64 { return s.BRCM },
	"brfm":  func(s *Snapshot) float64 { return s.BRFM },
	"brmm":  func(s *Snapshot) float64 { return s.BRMM },
	"brpm":  func(s *Snapshot) float64 { return s.BRPM },
	"cfifr": func(s *Snapshot) float64 { return s.CFIFR },
	"cim":   func(s *Snapshot) float64 { return s.CIM },
	"ciqr":  func(s *Snapshot) float64 { return s.CIQR },
	"cir":   func(s *Snapshot) float64 { return s.CIR },
	"cira":  func(s *Snapshot) float64 { return s.CIRA },
	"cr":    func(s *Snapshot) float64 { return s.CR },
	"drcm":  func(s *Snapshot) float64 { return s.DRCM },
	"drfm":  func(s *Snapshot) float64 { return s.DRFM },
	"drmm":  func(s *Snapshot) float64 { return s.DRMM },
	"drpm":  func(s *Snapshot) float64 { return s.DRPM },
	"ecir":  func(s *Snapshot) float64 { return s.ECIR },
	"fcm":   func(s *Snapshot) float64 { return s.FCM },
	"fpci":  func(s *Snapshot) float64 { return s.FPCI },
	"fpm":   func(s *Snapshot) float64 { return s.FPM },
	"fr":    func(s *Snapshot) float64 { return s.FR },
	"msl":   func(s *Snapshot) float64 { return s.MSL },
	"nrem":  func(s *Snapshot) float64 { return s.NREM },
	"nrfr":  func(s *Snapshot) float64 { return s.NRFR },
	"nrmm":  func(s *Snapshot) float64 { return s.NRMM },
	"polat": func(s *Snapshot) float64 { return s.POLAT },
	"polcm": func(s *Snapshot) float64 { return s.POLCM },
	"polr":  func(s *Snapshot) float64 { return s.POLR },
	"ql":    func(s *Snapshot) float64 { return s.QL },
	"qlc":   func(s *Snapshot) float64 { return s.QLC },
	"qlf":   func(s *Snapshot) float64 { return s.QLF },
	"qlm":   func(s *Snapshot) float64 { return s.QLM },
	"qlp":   func(s *Snapshot) float64 { return s.QLP },

	"time": func(s *Snapshot) float64 { return s.Time },
}

// Field returns the named variable, or false for an unknown name.
// Names are the lowercase DYNAMO names ("p", "polr", "msl", ...).
func (s *Snapshot) Field(name string) (float64, bool) {
	get, ok := fieldIndex[name]
	if !ok {
		return 0, false
	}
	return get(s), true
}

// FieldNames returns every snapshot field name in sorted order.
func FieldNames() []string {
	names := make([]string, 0, len(fieldIndex))
	for name := range fieldIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
