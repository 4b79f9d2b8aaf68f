package projection

import "math"

// Pricing holds the commercial constants of the franchise offer.
type Pricing struct {
	CostPerUnit     float64 // one-time investment per kiosk
	FixedPayPerUnit float64 // guaranteed monthly pay per purchased unit
	DaysPerMonth    float64 // revenue month length
}

// DefaultPricing returns the current AED offer terms.
func DefaultPricing() Pricing {
	return Pricing{
		CostPerUnit:     75000,
		FixedPayPerUnit: 6000,
		DaysPerMonth:    30,
	}
}

// Tier thresholds. Lower bounds are inclusive: 3 units is already Pro, 9 is Institutional.
const (
	proMinUnits           = 3
	institutionalMinUnits = 9

	baseSharePercent          = 25
	proSharePercent           = 27
	institutionalSharePercent = 30
)

// Engine derives the full financial projection for a franchise commitment.
// It is a pure function of its input: no I/O, no shared state, safe to call
// concurrently. The tiering policy here is the single source of truth; the
// historical per-page copies of this logic drifted and are deliberately not kept.
type Engine struct {
	Pricing Pricing
}

// NewEngine creates an engine with the given offer terms.
func NewEngine(pricing Pricing) *Engine {
	return &Engine{Pricing: pricing}
}

// TierFor maps a purchased unit count onto the qualification ladder.
// Tier depends on the unit count alone.
func TierFor(units int) Tier {
	switch {
	case units >= institutionalMinUnits:
		return TierInstitutional
	case units >= proMinUnits:
		return TierPro
	default:
		return TierBase
	}
}

// SharePercentFor returns the revenue share rate for a unit count.
// The rate is a non-decreasing step function of units.
func SharePercentFor(units int) int {
	switch TierFor(units) {
	case TierInstitutional:
		return institutionalSharePercent
	case TierPro:
		return proSharePercent
	default:
		return baseSharePercent
	}
}

// Compute maps a validated input to its projection.
// It fails only with ErrInvalidInput; there are no other failure modes.
func (e *Engine) Compute(in ProjectionInput) (ProjectionOutput, error) {
	if err := validate(in); err != nil {
		return ProjectionOutput{}, err
	}

	out := ProjectionOutput{
		Tier:                TierFor(in.Units),
		RevenueSharePercent: SharePercentFor(in.Units),
		TotalInvestment:     float64(in.Units) * e.Pricing.CostPerUnit,
	}

	// Buy-9-get-1: the Institutional tier adds one free operating unit. The bonus
	// unit earns revenue but was never purchased, so it can only raise the count.
	out.OperatingUnits = in.Units
	if out.Tier == TierInstitutional {
		out.OperatingUnits++
	}

	// Exact product, no rounding; display formatting is the UI's job.
	out.MonthlyNetworkRevenue = float64(out.OperatingUnits) * in.DailyCupsPerUnit * in.PricePerCup * e.Pricing.DaysPerMonth

	switch in.IncomeModel {
	case IncomeShare:
		out.NetProfit = out.MonthlyNetworkRevenue * float64(out.RevenueSharePercent) / 100
	case IncomeFixed, "":
		// Fixed pay is tied to purchased units only; the bonus unit is excluded.
		// The empty model defaults to fixed, matching the calculator's initial state.
		out.NetProfit = e.Pricing.FixedPayPerUnit * float64(in.Units)
	default:
		return ProjectionOutput{}, invalidInput("unknown income model %q", in.IncomeModel)
	}

	// Payback is only meaningful for a positive take; callers must never see
	// NaN or Inf leak into presentation.
	if out.NetProfit > 0 {
		out.PaybackMonths = out.TotalInvestment / out.NetProfit
		out.PaybackMeaningful = true
	}

	out.Eligibility = EligibilityFlags{
		TerritoryRights:    in.Units >= proMinUnits,
		InstitutionalYield: in.Units >= institutionalMinUnits,
		AutomatedScaling:   in.Units >= institutionalMinUnits,
	}

	return out, nil
}

func validate(in ProjectionInput) error {
	if in.Units < 1 {
		return invalidInput("units must be >= 1, got %d", in.Units)
	}
	if !(in.DailyCupsPerUnit > 0) || math.IsInf(in.DailyCupsPerUnit, 0) {
		return invalidInput("daily cups per unit must be a positive finite number, got %v", in.DailyCupsPerUnit)
	}
	if !(in.PricePerCup > 0) || math.IsInf(in.PricePerCup, 0) {
		return invalidInput("price per cup must be a positive finite number, got %v", in.PricePerCup)
	}
	return nil
}
