package models

// Transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Recurrence frequencies.
const (
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// Categories is the fixed set shared by transactions and budgets.
var Categories = []string{
	"salary",
	"freelance",
	"investment",
	"housing",
	"food",
	"transport",
	"entertainment",
	"healthcare",
	"education",
	"shopping",
	"utilities",
	"other",
}

// IsValidCategory reports whether name belongs to the fixed category set.
func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// IsValidFrequency reports whether freq is a supported recurrence frequency.
func IsValidFrequency(freq string) bool {
	return freq == FrequencyWeekly || freq == FrequencyMonthly || freq == FrequencyYearly
}
