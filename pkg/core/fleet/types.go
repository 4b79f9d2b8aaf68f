// Package fleet holds the kiosk-network domain types shared by the dashboard
// API, the sales store and the forecast context.
package fleet

import "time"

// KioskStatus is the operational state reported by a kiosk's telemetry.
type KioskStatus string

const (
	StatusActive      KioskStatus = "active"
	StatusMaintenance KioskStatus = "maintenance"
	StatusOffline     KioskStatus = "offline"
)

// Consumables tracks remaining stock levels as percentages.
type Consumables struct {
	CoffeeBeans int `json:"coffee_beans"`
	Milk        int `json:"milk"`
	Cups        int `json:"cups"`
	Water       int `json:"water"`
}

// Kiosk is one automated beverage-dispensing machine owned by a franchisee.
type Kiosk struct {
	ID            string      `json:"id"`
	Location      string      `json:"location"`
	Status        KioskStatus `json:"status"`
	CupsSoldToday int         `json:"cups_sold_today"`
	RevenueToday  float64     `json:"revenue_today"`
	Consumables   Consumables `json:"consumables"`
	LastService   string      `json:"last_service"`
}

// SaleRecord is a single sale event; a window of these forms the history the
// forecast model analyzes.
type SaleRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Amount    float64   `json:"amount"`
	Product   string    `json:"product"`
}

// FranchiseeData is the per-investor snapshot the dashboard renders.
type FranchiseeData struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	JoinDate        string  `json:"join_date"`
	TotalInvested   float64 `json:"total_invested"`
	Kiosks          []Kiosk `json:"kiosks"`
	MonthlySalary   float64 `json:"monthly_salary"`
	ReferralBonuses float64 `json:"referral_bonuses"`
	TotalCupsSold   int     `json:"total_cups_sold"`
}
