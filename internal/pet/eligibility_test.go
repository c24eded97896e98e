package pet

import (
	"testing"
)

// mapStore is a map-backed Storer for tests.
type mapStore struct {
	records map[string]*Activity
}

func (m *mapStore) Save(id string, a *Activity) error {
	m.records[id] = a
	return nil
}

func (m *mapStore) Get(id string) *Activity {
	return m.records[id]
}

func (m *mapStore) GetAll() map[string]*Activity {
	out := map[string]*Activity{}
	for id, a := range m.records {
		out[id] = a
	}
	return out
}

func testCatalog() *mapStore {
	return &mapStore{records: map[string]*Activity{
		"burger": {
			Title:        "Burger",
			Category:     "food",
			Emoji:        "🍔",
			Effects:      map[Attribute]int{AttrHunger: 25},
			Descriptions: []string{"nom"},
		},
		"gourmet-dinner": {
			Title:         "Gourmet Dinner",
			Category:      "food",
			Emoji:         "🍽️",
			RequiredLevel: 5,
			Effects:       map[Attribute]int{AttrHunger: 60},
			Descriptions:  []string{"fancy"},
		},
		"snack": {
			Title:        "Snack",
			Category:     "food",
			Emoji:        "🍪",
			Effects:      map[Attribute]int{AttrHunger: 5},
			Descriptions: []string{"crunch"},
			AvoidIf:      map[Attribute]string{AttrHunger: ">90"},
		},
		"videogames": {
			Title:        "Videogames",
			Category:     "entertainment",
			Emoji:        "🎮",
			Effects:      map[Attribute]int{AttrMood: 15, AttrEnergy: -10},
			Descriptions: []string{"pew pew"},
			AvoidIf:      map[Attribute]string{AttrEnergy: "<25"},
		},
	}}
}

func TestFindEligible(t *testing.T) {
	tests := map[string]struct {
		category string
		state    *State
		expIds   []string
	}{
		"category filter": {
			category: "entertainment",
			state:    &State{Level: 1, Energy: 50},
			expIds:   []string{"videogames"},
		},
		"level gate excludes": {
			category: "food",
			state:    &State{Level: 4, Hunger: 50},
			expIds:   []string{"burger", "snack"},
		},
		"level gate met": {
			category: "food",
			state:    &State{Level: 5, Hunger: 50},
			expIds:   []string{"burger", "gourmet-dinner", "snack"},
		},
		"guard excludes": {
			category: "food",
			state:    &State{Level: 1, Hunger: 95},
			expIds:   []string{"burger"},
		},
		"no matches": {
			category: "hygiene",
			state:    &State{Level: 99},
			expIds:   nil,
		},
		"guard blocks whole category": {
			category: "entertainment",
			state:    &State{Level: 1, Energy: 10},
			expIds:   nil,
		},
	}

	catalog := testCatalog()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := FindEligible(catalog, tt.category, tt.state)

			if len(got) != len(tt.expIds) {
				t.Fatalf("got %d candidates, expected %d", len(got), len(tt.expIds))
			}
			for i, c := range got {
				if c.Id != tt.expIds[i] {
					t.Errorf("candidate %d = %q, expected %q", i, c.Id, tt.expIds[i])
				}
				if c.Activity == nil {
					t.Errorf("candidate %d has nil activity", i)
				}
			}
		})
	}
}

func TestFindEligible_StableOrder(t *testing.T) {
	catalog := testCatalog()
	state := &State{Level: 10, Hunger: 50}

	first := FindEligible(catalog, "food", state)
	for i := 0; i < 20; i++ {
		again := FindEligible(catalog, "food", state)
		for j := range first {
			if again[j].Id != first[j].Id {
				t.Fatalf("iteration order changed at index %d: %q vs %q", j, again[j].Id, first[j].Id)
			}
		}
	}
}
