package lead

import "sort"

// Size is an apartment size option.
type Size string

const (
	SizeStudio    Size = "STUDIO"
	SizeOneBed    Size = "1 BED"
	SizeTwoBed    Size = "2 BED"
	SizeThreePlus Size = "3+ BEDS"
)

// Sizes lists every size in display order.
var Sizes = []Size{SizeStudio, SizeOneBed, SizeTwoBed, SizeThreePlus}

// combinable sizes may be selected together; larger units are exclusive.
func combinable(s Size) bool {
	return s == SizeStudio || s == SizeOneBed
}

func containsSize(sizes []Size, s Size) bool {
	for _, v := range sizes {
		if v == s {
			return true
		}
	}
	return false
}

// SelectSize applies a size pick to the current selection. Picking a larger
// unit replaces the selection; studio and one-bedroom toggle and can be held
// together. advance reports whether the wizard should move on without an
// explicit "next": a larger unit picked from an empty selection, or both
// small sizes now selected.
func SelectSize(current []Size, pick Size) (next []Size, advance bool) {
	if !combinable(pick) {
		return []Size{pick}, len(current) == 0
	}

	if containsSize(current, pick) {
		for _, s := range current {
			if s != pick {
				next = append(next, s)
			}
		}
	} else {
		for _, s := range Sizes {
			if s == pick || (combinable(s) && containsSize(current, s)) {
				next = append(next, s)
			}
		}
	}
	if next == nil {
		next = []Size{}
	}
	return next, containsSize(next, SizeStudio) && containsSize(next, SizeOneBed)
}

var budgetsBySize = map[Size][]int{
	SizeStudio:    {1400, 1600, 1800, 2000, 2200, 2400},
	SizeOneBed:    {1600, 1800, 2000, 2300, 2600, 3000},
	SizeTwoBed:    {2200, 2400, 2600, 3000, 3500, 4000},
	SizeThreePlus: {3000, 3400, 3800, 4200, 4600, 5000},
}

// PresetBudgets returns the monthly budget presets offered for the chosen
// sizes. Studio plus one-bedroom offers the sorted union of both lists;
// otherwise the first chosen size decides.
func PresetBudgets(sizes []Size) []int {
	if len(sizes) == 0 {
		return nil
	}
	if containsSize(sizes, SizeStudio) && containsSize(sizes, SizeOneBed) {
		seen := map[int]bool{}
		var out []int
		for _, s := range []Size{SizeStudio, SizeOneBed} {
			for _, b := range budgetsBySize[s] {
				if !seen[b] {
					seen[b] = true
					out = append(out, b)
				}
			}
		}
		sort.Ints(out)
		return out
	}
	presets := budgetsBySize[sizes[0]]
	out := make([]int, len(presets))
	copy(out, presets)
	return out
}

// Amenity is a building feature a renter can ask for.
type Amenity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Amenities is the amenity catalog.
var Amenities = []Amenity{
	{ID: "pet-friendly", Name: "Pet Friendly", Icon: "🐾", Description: "Welcome pets with designated areas"},
	{ID: "balcony", Name: "Balcony/Patio", Icon: "🏗️", Description: "Private outdoor space"},
	{ID: "rooftop", Name: "Rooftop Lounge", Icon: "🌆", Description: "Scenic views and social space"},
	{ID: "concierge", Name: "Concierge", Icon: "👔", Description: "24/7 front desk service"},
	{ID: "fitness", Name: "Fitness Center", Icon: "💪", Description: "24/7 gym access"},
	{ID: "windows", Name: "Floor to Ceiling Windows", Icon: "🪟", Description: "Natural light and views"},
	{ID: "parking", Name: "Covered Parking", Icon: "🅿️", Description: "Protected vehicle parking"},
	{ID: "sauna", Name: "Sauna", Icon: "🧖", Description: "Relaxation and wellness"},
}

// AmenityByID looks up an amenity in the catalog.
func AmenityByID(id string) (Amenity, bool) {
	for _, a := range Amenities {
		if a.ID == id {
			return a, true
		}
	}
	return Amenity{}, false
}

// Credit, background and employment options offered on the credit step.
var (
	CreditBands = []string{
		"Great 700-850",
		"Good 600-700",
		"Fair 550-600",
		"Poor 300-549",
	}
	BackgroundIssues = []string{
		"None",
		"Active Rental Debt",
		"Eviction",
		"Bankruptcy",
		"Misdemeanor",
		"Felony",
	}
	EmploymentStatuses = []string{
		"W-2 Employee",
		"Contractor",
		"Self-Employed",
		"Student",
		"Other",
	}
)
