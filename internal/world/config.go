package world

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every named constant of the model. Comments give
// Forrester's full name and units. Each rate normal that can change at
// a historical date is a pair (value before, value after) plus a switch
// time; CLIP selects between them as simulated time passes the switch.
// A Config is copied into the engine and never mutated during a run.
type Config struct {
	BRN   float64 `yaml:"brn"`   // birth rate normal (fraction/year)
	BRN1  float64 `yaml:"brn1"`  // birth rate normal after SWT1
	CIAFI float64 `yaml:"ciafi"` // capital-investment-in-agriculture fraction, initial
	CIAFN float64 `yaml:"ciafn"` // capital-investment-in-agriculture fraction normal
	CIAFT float64 `yaml:"ciaft"` // CIAF adjustment time (years)
	CIDN  float64 `yaml:"cidn"`  // capital-investment discard normal (fraction/year)
	CIDN1 float64 `yaml:"cidn1"` // capital-investment discard normal after SWT5
	CIGN  float64 `yaml:"cign"`  // capital-investment generation normal (capital units/person/year)
	CIGN1 float64 `yaml:"cign1"` // capital-investment generation normal after SWT4
	CII   float64 `yaml:"cii"`   // capital investment, initial (capital units)
	DRN   float64 `yaml:"drn"`   // death rate normal (fraction/year)
	DRN1  float64 `yaml:"drn1"`  // death rate normal after SWT3
	ECIRN float64 `yaml:"ecirn"` // effective-capital-investment ratio normal (capital units/person)
	FC    float64 `yaml:"fc"`    // food coefficient
	FC1   float64 `yaml:"fc1"`   // food coefficient after SWT7
	FN    float64 `yaml:"fn"`    // food normal (food units/person/year)
	LA    float64 `yaml:"la"`    // land area (square kilometers)
	NRI   float64 `yaml:"nri"`   // natural resources, initial (natural resource units)
	NRUN  float64 `yaml:"nrun"`  // natural-resource usage normal (units/person/year)
	NRUN1 float64 `yaml:"nrun1"` // natural-resource usage normal after SWT2
	PDN   float64 `yaml:"pdn"`   // population density normal (people/square kilometer)
	PI    float64 `yaml:"pi"`    // population, initial (people)
	POLI  float64 `yaml:"poli"`  // pollution, initial (pollution units)
	POLN  float64 `yaml:"poln"`  // pollution normal (pollution units/person/year)
	POLN1 float64 `yaml:"poln1"` // pollution normal after SWT6
	POLS  float64 `yaml:"pols"`  // pollution standard (pollution units)
	QLS   float64 `yaml:"qls"`   // quality-of-life standard (satisfaction units)

	SWT1 float64 `yaml:"swt1"` // switch time for BRN (calendar year)
	SWT2 float64 `yaml:"swt2"` // switch time for NRUN
	SWT3 float64 `yaml:"swt3"` // switch time for DRN
	SWT4 float64 `yaml:"swt4"` // switch time for CIGN
	SWT5 float64 `yaml:"swt5"` // switch time for CIDN
	SWT6 float64 `yaml:"swt6"` // switch time for POLN
	SWT7 float64 `yaml:"swt7"` // switch time for FC

	StartTime float64 `yaml:"start_time"` // calendar year at first tick
	DT        float64 `yaml:"dt"`         // time step (years)
	EndTime   float64 `yaml:"end_time"`   // run horizon (calendar year)
}

// DefaultConfig returns the constants Forrester published for the
// original 1900-2100 run.
func DefaultConfig() Config {
	return Config{
		BRN:   .04,
		BRN1:  .04,
		CIAFI: .2,
		CIAFN: .3,
		CIAFT: 15,
		CIDN:  .025,
		CIDN1: .025,
		CIGN:  .05,
		CIGN1: .05,
		CII:   .4e9,
		DRN:   .028,
		DRN1:  .028,
		ECIRN: 1,
		FC:    1,
		FC1:   1,
		FN:    1,
		LA:    135e6,
		NRI:   900e9,
		NRUN:  1,
		NRUN1: 1,
		PDN:   26.5,
		PI:    1.65e9,
		POLI:  .2e9,
		POLN:  1,
		POLN1: 1,
		POLS:  3.6e9,
		QLS:   1,

		SWT1: 1970,
		SWT2: 1970,
		SWT3: 1970,
		SWT4: 1970,
		SWT5: 1970,
		SWT6: 1970,
		SWT7: 1970,

		StartTime: 1900,
		DT:        0.2,
		EndTime:   2100,
	}
}

// Load reads a yaml config file over the published defaults, so a file
// only needs to name the constants it changes.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the full config as yaml.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
