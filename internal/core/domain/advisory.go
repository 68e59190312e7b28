package domain

// AdviceFigure pairs a raw amount with its formatted local-currency string.
type AdviceFigure struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// LocalizedPremium is the result of adjusting a base USD premium for a
// country's market and re-expressing it in the local currency.
type LocalizedPremium struct {
	CountryKey       string  `json:"countryKey"`
	InsuranceType    string  `json:"insuranceType"`
	Multiplier       float64 `json:"multiplier"`
	CurrencyCode     string  `json:"currencyCode"`
	Symbol           string  `json:"symbol"`
	Amount           float64 `json:"amount"`        // annual premium, local currency
	USDEquivalent    float64 `json:"usdEquivalent"` // after the multiplier, before conversion
	Monthly          float64 `json:"monthly"`
	Quarterly        float64 `json:"quarterly"`
	FormattedAmount  string  `json:"formattedAmount"`
	FormattedMonthly string  `json:"formattedMonthly"`
}

// FinancialAdvice is the country-aware budgeting breakdown derived from an
// annual income. All figures are in the country's local currency.
type FinancialAdvice struct {
	CountryKey          string             `json:"countryKey"`
	CurrencyCode        string             `json:"currencyCode"`
	AnnualIncome        AdviceFigure       `json:"annualIncome"`
	MonthlyIncome       AdviceFigure       `json:"monthlyIncome"`
	MonthlyExpenses     AdviceFigure       `json:"monthlyExpenses"`
	DisposableIncome    AdviceFigure       `json:"disposableIncome"`
	EmergencyFundTarget AdviceFigure       `json:"emergencyFundTarget"`
	InsuranceBudget     AdviceFigure       `json:"insuranceBudget"`
	InvestmentCapacity  AdviceFigure       `json:"investmentCapacity"`
	RetirementAge       int                `json:"retirementAge"`
	TaxRate             float64            `json:"taxRate"`
	AvgAnnualSalary     AdviceFigure       `json:"avgAnnualSalary"`
	InvestmentOptions   []string           `json:"investmentOptions"`
	ExpectedReturns     map[string]float64 `json:"expectedReturns"`
	TaxAdvantages       []string           `json:"taxAdvantages"`
}
