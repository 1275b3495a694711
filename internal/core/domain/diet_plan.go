package domain

import (
	"errors"
	"strings"
)

var (
	ErrDietDayNotFound = errors.New("diet plan day not found")
	ErrMealNotFound    = errors.New("meal not found")
)

const EmergencyInstructions = "If accidental exposure occurs, seek immediate medical attention"

type MealItem struct {
	Food         string       `json:"food"`
	Portion      string       `json:"portion"`
	Calories     int          `json:"calories"`
	AllergyAlert AllergyAlert `json:"allergy_alert,omitempty"`
	AllergyNotes string       `json:"allergy_notes,omitempty"`
}

type Meal struct {
	Name           string     `json:"name"`
	Items          []MealItem `json:"items"`
	AllergyWarning string     `json:"allergy_warning,omitempty"`
}

type DietDay struct {
	Day   int    `json:"day"`
	Meals []Meal `json:"meals"`
}

type DietPlanAllergyAlerts struct {
	SevereAllergens       []string `json:"severe_allergens"`
	ModerateAllergens     []string `json:"moderate_allergens"`
	EmergencyInstructions string   `json:"emergency_instructions"`
}

// DietPlan is a weekly meal plan. AllergyAlerts is nil until the plan has
// been checked against an allergy profile.
type DietPlan struct {
	WeeklyPlan    []DietDay              `json:"weekly_plan"`
	AllergyAlerts *DietPlanAllergyAlerts `json:"allergy_alerts,omitempty"`
}

func (p *DietPlan) Day(day int) (*DietDay, error) {
	for i := range p.WeeklyPlan {
		if p.WeeklyPlan[i].Day == day {
			return &p.WeeklyPlan[i], nil
		}
	}
	return nil, ErrDietDayNotFound
}

// Meal looks a meal up by name, ignoring case.
func (d *DietDay) Meal(name string) (*Meal, error) {
	for i := range d.Meals {
		if strings.EqualFold(d.Meals[i].Name, name) {
			return &d.Meals[i], nil
		}
	}
	return nil, ErrMealNotFound
}

// AnnotateDietPlan returns a copy of plan where every item carries its allergy
// alert, meals holding a severe item carry a warning and the plan carries the
// allergen summary. plan itself is left untouched.
func AnnotateDietPlan(plan DietPlan, allergies []Allergy) DietPlan {
	out := DietPlan{WeeklyPlan: make([]DietDay, 0, len(plan.WeeklyPlan))}

	for _, day := range plan.WeeklyPlan {
		annotated := DietDay{Day: day.Day, Meals: make([]Meal, 0, len(day.Meals))}
		for _, meal := range day.Meals {
			annotated.Meals = append(annotated.Meals, annotateMeal(meal, allergies))
		}
		out.WeeklyPlan = append(out.WeeklyPlan, annotated)
	}

	summary := SummarizeAllergies(allergies)
	out.AllergyAlerts = &DietPlanAllergyAlerts{
		SevereAllergens:       summary.SevereAllergens,
		ModerateAllergens:     summary.ModerateAllergens,
		EmergencyInstructions: EmergencyInstructions,
	}

	return out
}

func annotateMeal(meal Meal, allergies []Allergy) Meal {
	out := Meal{Name: meal.Name, Items: make([]MealItem, 0, len(meal.Items))}

	for _, item := range meal.Items {
		matched, alert := matchAllergy(item.Food, allergies)
		item.AllergyAlert = alert
		item.AllergyNotes = ""
		if alert == AlertSevere {
			item.AllergyNotes = severeFoodNote(matched.Name)
			if out.AllergyWarning == "" {
				out.AllergyWarning = "SEVERE ALLERGY ALERT: This meal contains " + matched.Name + ". Replace with alternative."
			}
		}
		out.Items = append(out.Items, item)
	}

	return out
}

// DefaultAllergyProfile is the patient profile the sample plan is checked against.
func DefaultAllergyProfile() []Allergy {
	return []Allergy{
		{Name: "Shellfish", Severity: "Severe"},
		{Name: "Sulfa drugs", Severity: "Moderate"},
	}
}

// SampleDietPlan is the fixed seven day plan served by the API.
func SampleDietPlan() DietPlan {
	breakfasts := [][]MealItem{
		{{Food: "Oatmeal with berries", Portion: "1 bowl", Calories: 320}, {Food: "Green tea", Portion: "1 cup", Calories: 0}},
		{{Food: "Greek yogurt with honey", Portion: "200 g", Calories: 260}, {Food: "Banana", Portion: "1 medium", Calories: 105}},
		{{Food: "Whole grain toast with avocado", Portion: "2 slices", Calories: 340}, {Food: "Orange juice", Portion: "1 glass", Calories: 110}},
	}
	lunches := [][]MealItem{
		{{Food: "Grilled Salmon Salad", Portion: "1 plate", Calories: 450}},
		{{Food: "Seafood Paella", Portion: "1 plate", Calories: 620}, {Food: "Mixed greens", Portion: "1 bowl", Calories: 40}},
		{{Food: "Chicken quinoa bowl", Portion: "1 bowl", Calories: 540}},
		{{Food: "Lentil soup", Portion: "1 bowl", Calories: 300}, {Food: "Rye bread", Portion: "1 slice", Calories: 80}},
	}
	dinners := [][]MealItem{
		{{Food: "Baked cod with vegetables", Portion: "1 plate", Calories: 480}},
		{{Food: "Turkey meatballs with brown rice", Portion: "1 plate", Calories: 560}},
		{{Food: "New England Clam Chowder", Portion: "1 bowl", Calories: 410}, {Food: "Side salad", Portion: "1 bowl", Calories: 60}},
		{{Food: "Vegetable stir fry with tofu", Portion: "1 plate", Calories: 430}},
		{{Food: "Fish tacos", Portion: "2 tacos", Calories: 520}},
	}
	snacks := [][]MealItem{
		{{Food: "Apple with almond butter", Portion: "1 apple", Calories: 200}},
		{{Food: "Carrot sticks with hummus", Portion: "1 cup", Calories: 150}},
	}

	plan := DietPlan{WeeklyPlan: make([]DietDay, 0, 7)}
	for day := 1; day <= 7; day++ {
		i := day - 1
		plan.WeeklyPlan = append(plan.WeeklyPlan, DietDay{
			Day: day,
			Meals: []Meal{
				{Name: "breakfast", Items: cloneItems(breakfasts[i%len(breakfasts)])},
				{Name: "lunch", Items: cloneItems(lunches[i%len(lunches)])},
				{Name: "dinner", Items: cloneItems(dinners[i%len(dinners)])},
				{Name: "snack", Items: cloneItems(snacks[i%len(snacks)])},
			},
		})
	}
	return plan
}

func cloneItems(items []MealItem) []MealItem {
	return append([]MealItem(nil), items...)
}
