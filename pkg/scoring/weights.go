package scoring

import "ai-travelmate-be/pkg/store"

// Weights is one fixed scoring profile. The four factors always sum to 1.
type Weights struct {
	Price    float64
	Duration float64
	Schedule float64
	Operator float64
}

var (
	balancedWeights = Weights{Price: 0.3, Duration: 0.3, Schedule: 0.2, Operator: 0.2}
	budgetWeights   = Weights{Price: 0.5, Duration: 0.25, Schedule: 0.15, Operator: 0.1}
	premiumWeights  = Weights{Price: 0.1, Duration: 0.3, Schedule: 0.2, Operator: 0.4}
)

// ProfileFor picks the weight profile for a budget preference. Anything
// other than the two explicit preferences gets the balanced profile.
func ProfileFor(budgetPreference string) Weights {
	switch budgetPreference {
	case store.BudgetLow:
		return budgetWeights
	case store.BudgetPremium:
		return premiumWeights
	default:
		return balancedWeights
	}
}

// operatorReputation is a static table keyed by operator name. Operators
// not listed score the neutral default.
const defaultReputation = 0.5

var operatorReputation = map[string]float64{
	"Indian Railways": 0.85,
	"MSRTC Shivneri":  0.9,
	"MSRTC":           0.7,
	"Neeta Travels":   0.75,
	"VRL Travels":     0.7,
	"Orange Travels":  0.65,
	"Purple Bus":      0.6,
}

func reputationOf(operator string) float64 {
	if r, ok := operatorReputation[operator]; ok {
		return r
	}
	return defaultReputation
}
