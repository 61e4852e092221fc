package domain

type InsurancePlanID string

const (
	InsuranceNone    InsurancePlanID = "none"
	InsuranceBasic   InsurancePlanID = "basic"
	InsurancePremium InsurancePlanID = "premium"
)

type InsurancePlan struct {
	ID         InsurancePlanID `json:"id"`
	Title      string          `json:"title"`
	PricePaise int64           `json:"price_paise"`
	Coverage   []string        `json:"coverage"`
}

var InsurancePlans = []InsurancePlan{
	{
		ID:         InsuranceBasic,
		Title:      "Basic Coverage",
		PricePaise: 29900,
		Coverage: []string{
			"Trip cancellation coverage",
			"Medical emergency: ₹5 Lakh",
			"Baggage loss: ₹25,000",
			"Flight delay compensation",
		},
	},
	{
		ID:         InsurancePremium,
		Title:      "Premium Coverage",
		PricePaise: 59900,
		Coverage: []string{
			"All Basic features",
			"Medical emergency: ₹15 Lakh",
			"Baggage loss: ₹75,000",
			"Adventure sports coverage",
			"24/7 assistance",
		},
	},
}

// LookupInsurance treats an empty id as no insurance.
func LookupInsurance(id InsurancePlanID) (InsurancePlan, bool) {
	if id == "" || id == InsuranceNone {
		return InsurancePlan{ID: InsuranceNone, Title: "No insurance"}, true
	}
	for _, p := range InsurancePlans {
		if p.ID == id {
			return p, true
		}
	}
	return InsurancePlan{}, false
}
