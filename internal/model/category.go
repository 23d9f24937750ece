package model

// categoryLabels maps category keys to their Spanish display labels.
// The table is fixed at compile time; CategoryLabel falls back to the raw
// key so an unknown category still renders.
var categoryLabels = map[string]string{
	"salary":        "Salario",
	"bonus":         "Bono",
	"freelance":     "Freelance",
	"investment":    "Inversión",
	"food":          "Comida",
	"transport":     "Transporte",
	"utilities":     "Servicios",
	"shopping":      "Compras",
	"entertainment": "Entretenimiento",
	"health":        "Salud",
	"education":     "Educación",
	"housing":       "Vivienda",
	"savings":       "Ahorro",
	"other":         "Otros",
}

// IncomeCategories and ExpenseCategories drive the form selects. Order is
// the display order.
var (
	IncomeCategories  = []string{"salary", "bonus", "freelance", "investment", "other"}
	ExpenseCategories = []string{
		"food", "transport", "utilities", "shopping",
		"entertainment", "health", "education", "housing", "other",
	}
)

// CategoryLabel returns the display label for a category key, or the key
// itself when no label is defined.
func CategoryLabel(key string) string {
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	return key
}

// AllCategories returns every key with a defined label.
func AllCategories() []string {
	keys := make([]string, 0, len(categoryLabels))
	for k := range categoryLabels {
		keys = append(keys, k)
	}
	return keys
}
