package catalog

// Plan is one derived subscription tier. Amounts are whole rupees; the
// documented pricing truncates fractional paise (2499 -> 6972 / 24890).
type Plan struct {
	Duration string `json:"duration"`
	Total    int    `json:"total"`
	Monthly  int    `json:"monthly"`
	Savings  int    `json:"savings"`
}

const (
	threeMonthMultiplier  = 0.93 // 7% off
	threeMonthDiscount    = 0.07
	twelveMonthMultiplier = 0.83 // 17% off
	twelveMonthDiscount   = 0.17
)

// SubscriptionPlans derives the three pricing tiers from a gym's base
// monthly amount. Plans are computed on read, never stored.
func SubscriptionPlans(baseMonthly int) map[string]Plan {
	base := float64(baseMonthly)

	return map[string]Plan{
		"1-month": {
			Duration: "1 month",
			Total:    baseMonthly,
			Monthly:  baseMonthly,
			Savings:  0,
		},
		"3-month": {
			Duration: "3 months",
			Total:    int(base * 3 * threeMonthMultiplier),
			Monthly:  int(base * threeMonthMultiplier),
			Savings:  int(base * 3 * threeMonthDiscount),
		},
		"12-month": {
			Duration: "12 months",
			Total:    int(base * 12 * twelveMonthMultiplier),
			Monthly:  int(base * twelveMonthMultiplier),
			Savings:  int(base * 12 * twelveMonthDiscount),
		},
	}
}
