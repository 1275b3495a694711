package domain

import (
	"errors"
	"strings"
)

var (
	ErrAllergyNameEmpty = errors.New("allergy name is required")
	ErrInvalidSeverity  = errors.New("invalid allergy severity (must be mild, moderate or severe)")
)

type AllergyAlert string

const (
	AlertNone     AllergyAlert = "NONE"
	AlertMild     AllergyAlert = "MILD"
	AlertModerate AllergyAlert = "MODERATE"
	AlertSevere   AllergyAlert = "SEVERE"
)

const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Foods that are treated as containing shellfish even when the word is absent.
var shellfishFoods = []string{"seafood", "chowder", "paella", "bouillabaisse"}

type Allergy struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
}

type FoodAlert struct {
	Food  string       `json:"food"`
	Alert AllergyAlert `json:"alert"`
	Notes string       `json:"notes,omitempty"`
}

type AllergySummary struct {
	SevereAllergens   []string `json:"severe_allergens"`
	ModerateAllergens []string `json:"moderate_allergens"`
}

func (a Allergy) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAllergyNameEmpty
	}
	switch strings.ToLower(a.Severity) {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return nil
	default:
		return ErrInvalidSeverity
	}
}

// CheckFoodForAllergies returns the alert of the first allergy, in order, that
// the food mentions.
func CheckFoodForAllergies(food string, allergies []Allergy) AllergyAlert {
	_, alert := matchAllergy(food, allergies)
	return alert
}

func matchAllergy(food string, allergies []Allergy) (Allergy, AllergyAlert) {
	foodLower := strings.ToLower(food)

	for _, a := range allergies {
		allergen := strings.ToLower(a.Name)

		if strings.Contains(foodLower, allergen) {
			return a, AllergyAlert(strings.ToUpper(a.Severity))
		}

		if allergen == "shellfish" {
			for _, f := range shellfishFoods {
				if strings.Contains(foodLower, f) {
					return a, AlertSevere
				}
			}
		}
	}

	return Allergy{}, AlertNone
}

func severeFoodNote(allergen string) string {
	return "CONTAINS " + strings.ToUpper(allergen) + " - DO NOT CONSUME. Replace with alternative."
}

func CheckFoods(foods []string, allergies []Allergy) []FoodAlert {
	alerts := make([]FoodAlert, 0, len(foods))
	for _, food := range foods {
		matched, alert := matchAllergy(food, allergies)
		fa := FoodAlert{Food: food, Alert: alert}
		if alert == AlertSevere {
			fa.Notes = severeFoodNote(matched.Name)
		}
		alerts = append(alerts, fa)
	}
	return alerts
}

func SummarizeAllergies(allergies []Allergy) AllergySummary {
	s := AllergySummary{
		SevereAllergens:   []string{},
		ModerateAllergens: []string{},
	}
	for _, a := range allergies {
		switch strings.ToLower(a.Severity) {
		case SeveritySevere:
			s.SevereAllergens = append(s.SevereAllergens, a.Name)
		case SeverityModerate:
			s.ModerateAllergens = append(s.ModerateAllergens, a.Name)
		}
	}
	return s
}
