package domain

// InsuranceTypes lists the coverage lines premiums can be localized for.
// Unknown types fall back to a 1.0 multiplier.
var InsuranceTypes = []string{"health", "property", "life", "auto"}

// RiskLevels order the expected-return table from safest to most aggressive.
var RiskLevels = []string{"conservative", "moderate", "aggressive"}

// CountryProfile carries the per-country financial metadata used by the
// advisory layer. AvgAnnualSalary and the derived figures are in the
// country's local currency; CostOfLivingIndex is relative to the United
// States at 100.
type CountryProfile struct {
	CountryKey           string             `json:"countryKey"`
	TaxRate              float64            `json:"taxRate"`
	AvgAnnualSalary      float64            `json:"avgAnnualSalary"`
	CostOfLivingIndex    float64            `json:"costOfLivingIndex"`
	HealthcareSystem     string             `json:"healthcareSystem"`
	RetirementAge        int                `json:"retirementAge"`
	InsuranceMultipliers map[string]float64 `json:"insuranceMultipliers"`
	InvestmentOptions    []string           `json:"investmentOptions"`
	ExpectedReturns      map[string]float64 `json:"expectedReturns"` // by risk level
	TaxAdvantages        []string           `json:"taxAdvantages"`
}

var countryProfiles = map[string]CountryProfile{
	"usa": {
		CountryKey:        "usa",
		TaxRate:           0.25,
		AvgAnnualSalary:   75000,
		CostOfLivingIndex: 100,
		HealthcareSystem:  "private",
		RetirementAge:     65,
		InsuranceMultipliers: map[string]float64{
			"health": 1.0, "property": 1.0, "life": 1.0, "auto": 1.0,
		},
		InvestmentOptions: []string{"401k", "IRA", "Stocks", "Bonds", "Real Estate"},
		ExpectedReturns:   map[string]float64{"conservative": 0.04, "moderate": 0.07, "aggressive": 0.10},
		TaxAdvantages:     []string{"401k matching", "IRA deductions", "HSA benefits"},
	},
	"india": {
		CountryKey:        "india",
		TaxRate:           0.20,
		AvgAnnualSalary:   800000,
		CostOfLivingIndex: 25,
		HealthcareSystem:  "mixed",
		RetirementAge:     60,
		InsuranceMultipliers: map[string]float64{
			"health": 0.15, "property": 0.20, "life": 0.12, "auto": 0.18,
		},
		InvestmentOptions: []string{"EPF", "PPF", "ELSS", "NSC", "Fixed Deposits"},
		ExpectedReturns:   map[string]float64{"conservative": 0.06, "moderate": 0.12, "aggressive": 0.15},
		TaxAdvantages:     []string{"80C deductions", "PPF tax-free", "ELSS benefits"},
	},
	"uk": {
		CountryKey:        "uk",
		TaxRate:           0.20,
		AvgAnnualSalary:   35000,
		CostOfLivingIndex: 85,
		HealthcareSystem:  "public",
		RetirementAge:     66,
		InsuranceMultipliers: map[string]float64{
			"health": 0.30, "property": 0.80, "life": 0.85, "auto": 0.90,
		},
		InvestmentOptions: []string{"ISA", "Pension", "Stocks", "Premium Bonds"},
		ExpectedReturns:   map[string]float64{"conservative": 0.03, "moderate": 0.06, "aggressive": 0.08},
		TaxAdvantages:     []string{"ISA allowance", "Pension relief", "CGT exemption"},
	},
	"canada": {
		CountryKey:        "canada",
		TaxRate:           0.26,
		AvgAnnualSalary:   65000,
		CostOfLivingIndex: 90,
		HealthcareSystem:  "public",
		RetirementAge:     65,
		InsuranceMultipliers: map[string]float64{
			"health": 0.25, "property": 0.75, "life": 0.80, "auto": 0.85,
		},
		InvestmentOptions: []string{"RRSP", "TFSA", "Stocks", "GIC"},
		ExpectedReturns:   map[string]float64{"conservative": 0.035, "moderate": 0.065, "aggressive": 0.09},
		TaxAdvantages:     []string{"RRSP deduction", "TFSA tax-free", "Capital gains"},
	},
	"australia": {
		CountryKey:        "australia",
		TaxRate:           0.32,
		AvgAnnualSalary:   85000,
		CostOfLivingIndex: 95,
		HealthcareSystem:  "public",
		RetirementAge:     67,
		InsuranceMultipliers: map[string]float64{
			"health": 0.40, "property": 0.85, "life": 0.90, "auto": 0.95,
		},
		InvestmentOptions: []string{"Superannuation", "Shares", "Property", "Term Deposits"},
		ExpectedReturns:   map[string]float64{"conservative": 0.04, "moderate": 0.07, "aggressive": 0.095},
		TaxAdvantages:     []string{"Super contributions", "Franking credits", "CGT discount"},
	},
	"germany": {
		CountryKey:        "germany",
		TaxRate:           0.42,
		AvgAnnualSalary:   55000,
		CostOfLivingIndex: 75,
		HealthcareSystem:  "public",
		RetirementAge:     67,
		InsuranceMultipliers: map[string]float64{
			"health": 0.20, "property": 0.70, "life": 0.75, "auto": 0.80,
		},
		InvestmentOptions: []string{"Riester", "ETFs", "Bausparvertrag", "Bonds"},
		ExpectedReturns:   map[string]float64{"conservative": 0.025, "moderate": 0.05, "aggressive": 0.075},
		TaxAdvantages:     []string{"Riester subsidy", "Bausparvertrag bonus", "ETF savings"},
	},
}

// LookupCountryProfile returns the advisory profile for a country key.
func LookupCountryProfile(countryKey string) (CountryProfile, bool) {
	p, ok := countryProfiles[countryKey]
	return p, ok
}

// ListCountryProfiles returns every profile in catalogue order.
func ListCountryProfiles() []CountryProfile {
	out := make([]CountryProfile, 0, len(catalogueOrder))
	for _, key := range catalogueOrder {
		if p, ok := countryProfiles[key]; ok {
			out = append(out, p)
		}
	}
	return out
}
