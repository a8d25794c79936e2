package knowledge

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"krishisahay/internal/models"
)

func TestDefault_Valid(t *testing.T) {
	if _, err := New(DefaultData()); err != nil {
		t.Fatalf("New(DefaultData()) error = %v", err)
	}
}

func TestResolveCrop(t *testing.T) {
	b := Default()

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"rice", "rice", true},
		{"corn", "maize", true},
		{"chili", "mirchi", true},
		{"peanut", "groundnut", true},
		{"tomato", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.ResolveCrop(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveCrop(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolvePest(t *testing.T) {
	b := Default()

	tests := []struct {
		name string
		want string
	}{
		{"aphid", "aphids"},
		{"caterpillar", "caterpillars"},
		{"fly", "flies"},
		{"bug", "bugs"},
		{"insect", "insects"},
		{"aphids", "aphids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.ResolvePest(tt.name)
			if !ok || got != tt.want {
				t.Errorf("ResolvePest(%q) = (%q, %v), want %q", tt.name, got, ok, tt.want)
			}
		})
	}
}

func TestResolve_NormalizesInput(t *testing.T) {
	b := Default()

	got, ok := b.Resolve(models.CategoryFertilizers, "  Phosphate ")
	if !ok || got != "phosphorus" {
		t.Errorf("Resolve(fertilizers, Phosphate) = (%q, %v), want phosphorus", got, ok)
	}
	got, ok = b.Resolve(models.CategoryFertilizers, "Balanced")
	if !ok || got != "npk" {
		t.Errorf("Resolve(fertilizers, Balanced) = (%q, %v), want npk", got, ok)
	}
}

func TestNew_MissingFact(t *testing.T) {
	d := DefaultData()
	delete(d.Crops, "maize")

	_, err := New(d)
	if !errors.Is(err, ErrMissingFact) {
		t.Fatalf("New() error = %v, want ErrMissingFact", err)
	}
}

func TestNew_EmptyFact(t *testing.T) {
	d := DefaultData()
	d.Pests["aphids"] = "  "

	_, err := New(d)
	if !errors.Is(err, ErrEmptyFact) {
		t.Fatalf("New() error = %v, want ErrEmptyFact", err)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	d := DefaultData()
	b, err := New(d)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d.Crops["rice"] = "changed"
	d.CropMentions[0] = "changed"

	if fact, _ := b.Fact(models.CategoryCrops, "rice"); fact == "changed" {
		t.Error("Base shares the caller's fact map")
	}
	if b.CropMentions()[0] != "rice" {
		t.Error("Base shares the caller's mention slice")
	}
}

func TestWithFacts(t *testing.T) {
	b := Default()

	overridden, err := b.WithFacts(map[models.Category]map[string]string{
		models.CategoryCrops: {"rice": "Local rice advice."},
	})
	if err != nil {
		t.Fatalf("WithFacts() error = %v", err)
	}

	if fact, _ := overridden.Fact(models.CategoryCrops, "rice"); fact != "Local rice advice." {
		t.Errorf("overridden rice fact = %q", fact)
	}
	if fact, _ := b.Fact(models.CategoryCrops, "rice"); fact == "Local rice advice." {
		t.Error("WithFacts() mutated the original base")
	}

	_, err = b.WithFacts(map[models.Category]map[string]string{"weather": {"rain": "x"}})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("WithFacts(weather) error = %v, want ErrUnknownCategory", err)
	}
}

func TestKeys(t *testing.T) {
	b := Default()

	want := []string{"nitrogen", "npk", "phosphorus", "potassium"}
	if diff := cmp.Diff(want, b.Keys(models.CategoryFertilizers)); diff != "" {
		t.Errorf("Keys(fertilizers) mismatch (-want +got):\n%s", diff)
	}
}

func TestFacts_ReturnsCopy(t *testing.T) {
	b := Default()

	facts, err := b.Facts(models.CategoryPests)
	if err != nil {
		t.Fatalf("Facts() error = %v", err)
	}
	facts["aphids"] = "changed"

	again, _ := b.Facts(models.CategoryPests)
	if again["aphids"] == "changed" {
		t.Error("Facts() returned the internal map")
	}

	if _, err := b.Facts("weather"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Facts(weather) error = %v, want ErrUnknownCategory", err)
	}
}

func TestWithFacts_CapitalizedKeyReplacesBuiltIn(t *testing.T) {
	for i := range 50 {
		b, err := Default().WithFacts(map[models.Category]map[string]string{
			models.CategoryCrops: {"Rice": "Overridden rice fact."},
		})
		if err != nil {
			t.Fatalf("WithFacts() error = %v", err)
		}
		if got, _ := b.Fact(models.CategoryCrops, "rice"); got != "Overridden rice fact." {
			t.Fatalf("load %d: rice fact = %q, want the override", i, got)
		}
		if _, ok := b.Fact(models.CategoryCrops, "Rice"); ok {
			t.Fatalf("load %d: capitalized key kept alongside rice", i)
		}
	}
}

func TestNew_CollidingKeysPreferLowercase(t *testing.T) {
	d := DefaultData()
	d.Crops["Rice"] = "capitalized"
	d.Crops["rice"] = "lowercase"

	for range 50 {
		b, err := New(d)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if got, _ := b.Fact(models.CategoryCrops, "rice"); got != "lowercase" {
			t.Fatalf("rice fact = %q, want %q", got, "lowercase")
		}
	}
}
