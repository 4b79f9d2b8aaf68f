package projection

import (
	"errors"
	"fmt"
)

// Tier is the unit-count qualification ladder for franchisees.
type Tier string

const (
	TierBase          Tier = "base"          // 1-2 units
	TierPro           Tier = "pro"           // 3-8 units
	TierInstitutional Tier = "institutional" // 9+ units, grants the bonus unit
)

// IncomeModel selects how the investor's monthly take is computed.
type IncomeModel string

const (
	IncomeFixed IncomeModel = "fixed" // flat guaranteed pay per purchased unit
	IncomeShare IncomeModel = "share" // percentage of gross network revenue
)

// ErrInvalidInput is returned when a calculator input violates its constraint.
// Inputs are rejected, never clamped; clamping (e.g. forcing units up to 1) is a
// UI convenience that lives in the presentation layer.
var ErrInvalidInput = errors.New("invalid projection input")

// ProjectionInput is one immutable calculation request.
type ProjectionInput struct {
	Units            int         `json:"units"`
	DailyCupsPerUnit float64     `json:"daily_cups_per_unit"`
	PricePerCup      float64     `json:"price_per_cup"`
	IncomeModel      IncomeModel `json:"income_model"`
}

// EligibilityFlags are threshold predicates over the purchased unit count.
type EligibilityFlags struct {
	TerritoryRights    bool `json:"territory_rights"`     // 3+ units
	InstitutionalYield bool `json:"institutional_yield"`  // 9+ units
	AutomatedScaling   bool `json:"automated_scaling"`    // 9+ units
}

// ProjectionOutput is fully derived from the input; it carries no independent state.
type ProjectionOutput struct {
	TotalInvestment       float64          `json:"total_investment"`
	Tier                  Tier             `json:"tier"`
	RevenueSharePercent   int              `json:"revenue_share_percent"`
	OperatingUnits        int              `json:"operating_units"`
	MonthlyNetworkRevenue float64          `json:"monthly_network_revenue"`
	NetProfit             float64          `json:"net_profit"`
	PaybackMonths         float64          `json:"payback_months"`
	PaybackMeaningful     bool             `json:"payback_meaningful"`
	Eligibility           EligibilityFlags `json:"eligibility"`
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
