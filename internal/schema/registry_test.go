package schema

import "testing"

func TestRegistryCoversAllCategories(t *testing.T) {
	all := AllTypes()
	if len(all) != 51 {
		t.Fatalf("registry holds %d types, want 51", len(all))
	}
	for _, name := range all {
		if CategoryOf(name) == "" {
			t.Errorf("%s has no category", name)
		}
		if LocalName(name) == name {
			t.Errorf("%s is not namespace-qualified", name)
		}
	}
}

func TestIsValidType(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		valid bool
	}{
		{"registered", TypeStatCard, true},
		{"container", TypeGrid, true},
		{"unqualified", "StatCard", false},
		{"wrong_case", "a2ui.statcard", false},
		{"unknown", "a2ui.Widget", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidType(tt.typ); got != tt.valid {
				t.Errorf("IsValidType(%q) = %v, want %v", tt.typ, got, tt.valid)
			}
		})
	}
}

func TestContainerFlags(t *testing.T) {
	for _, typ := range []string{TypeSection, TypeGrid, TypeColumns, TypeTabs, TypeAccordion, TypeCarousel, TypeSidebar} {
		if !IsContainerType(typ) {
			t.Errorf("%s should be a container", typ)
		}
	}
	for _, typ := range []string{TypeTabs, TypeAccordion} {
		if !IsMultiSlotType(typ) {
			t.Errorf("%s should be multi-slot", typ)
		}
	}
	if IsMultiSlotType(TypeGrid) {
		t.Error("grid is not multi-slot")
	}
	if IsContainerType(TypeStatCard) {
		t.Error("statCard is not a container")
	}
}

func TestRequiredProps(t *testing.T) {
	req := RequiredProps(TypeStatCard)
	if len(req) == 0 {
		t.Fatal("statCard must have required props")
	}
	if RequiredProps("a2ui.Nope") != nil {
		t.Error("unknown type should report nil required props")
	}

	// Mutating the returned slice must not corrupt the registry.
	req[0] = "tampered"
	if RequiredProps(TypeStatCard)[0] == "tampered" {
		t.Error("RequiredProps leaked internal state")
	}
}

func TestTypesInCategory(t *testing.T) {
	data := TypesInCategory(CategoryData)
	if len(data) != 7 {
		t.Errorf("data category holds %d types, want 7", len(data))
	}
	for _, typ := range data {
		if CategoryOf(typ) != CategoryData {
			t.Errorf("%s reported outside its category", typ)
		}
	}
	if got := TypesInCategory("nonexistent"); got != nil {
		t.Errorf("unknown category returned %v", got)
	}
}

func TestLocalName(t *testing.T) {
	if got := LocalName(TypeYouTubeEmbed); got != "YouTubeEmbed" {
		t.Errorf("got %q", got)
	}
	if got := LocalName("bare"); got != "bare" {
		t.Errorf("got %q", got)
	}
}
