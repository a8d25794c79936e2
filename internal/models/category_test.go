package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"crops", CategoryCrops, true},
		{"pests", CategoryPests, true},
		{"fertilizers", CategoryFertilizers, true},
		{"Crops", "", false},
		{"weather", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCategory(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseCategory(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []Category{CategoryCrops, CategoryPests, CategoryFertilizers}
	if len(Categories) != len(want) {
		t.Fatalf("len(Categories) = %d, want %d", len(Categories), len(want))
	}
	for i := range want {
		if Categories[i] != want[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, Categories[i], want[i])
		}
	}
}
