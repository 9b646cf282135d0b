package catalog

import (
	"errors"
	"testing"

	"github.com/isports/aflstats/internal/model"
)

func testDefs() []model.MetricDefinition {
	return []model.MetricDefinition{
		{ID: 1, Name: "Overview", Alias: "OVERVIEW", Subject: model.SubjectMatch},
		{ID: 2, Name: "Disposals", Alias: "DISPOSAL", Subject: model.SubjectMatch, ParentID: 1},
		{ID: 3, Name: "Kicks", Alias: "KICKS", Subject: model.SubjectMatch, ParentID: 1},
		{ID: 4, Name: "Disposal Statistics", Alias: "DISPOSAL_STATISTICS", Subject: model.SubjectPlayer},
		{ID: 5, Name: "Disposals", Alias: "D", Subject: model.SubjectPlayer, ParentID: 4, Kind: model.KindCount},
		{ID: 6, Name: "Disposal %", Alias: "PER_1", Subject: model.SubjectPlayer, ParentID: 4, Kind: model.KindPercent},
	}
}

func TestRegistryResolve(t *testing.T) {
	r, err := NewRegistry(testDefs())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	d, err := r.Resolve("D", model.SubjectPlayer)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.ID != 5 {
		t.Errorf("resolved wrong definition: %+v", d)
	}

	// Same alias does not leak across subject types.
	if _, err := r.Resolve("D", model.SubjectMatch); !errors.Is(err, ErrUnknownAlias) {
		t.Errorf("expected ErrUnknownAlias, got %v", err)
	}
	if _, err := r.Resolve("NOPE", model.SubjectPlayer); !errors.Is(err, ErrUnknownAlias) {
		t.Errorf("expected ErrUnknownAlias, got %v", err)
	}
}

func TestRegistryDuplicateAliasFails(t *testing.T) {
	defs := testDefs()
	defs = append(defs, model.MetricDefinition{
		ID: 7, Name: "Disposals again", Alias: "D", Subject: model.SubjectPlayer, ParentID: 4,
	})
	if _, err := NewRegistry(defs); err == nil {
		t.Fatal("expected duplicate alias to fail construction")
	}
}

func TestRegistryMissingParentFails(t *testing.T) {
	defs := []model.MetricDefinition{
		{ID: 1, Alias: "X", Subject: model.SubjectPlayer, ParentID: 99},
	}
	if _, err := NewRegistry(defs); err == nil {
		t.Fatal("expected missing category to fail construction")
	}
}

func TestRegistryOrdering(t *testing.T) {
	r, err := NewRegistry(testDefs())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	cats := r.Categories(model.SubjectMatch)
	if len(cats) != 1 || cats[0].Alias != "OVERVIEW" {
		t.Errorf("unexpected MATCH categories: %v", cats)
	}
	kids := r.Children(1)
	if len(kids) != 2 || kids[0].Alias != "DISPOSAL" || kids[1].Alias != "KICKS" {
		t.Errorf("children not in catalog order: %v", kids)
	}
	leaves := r.Leaves(model.SubjectPlayer)
	if len(leaves) != 2 || leaves[0].Alias != "D" {
		t.Errorf("unexpected PLAYER leaves: %v", leaves)
	}
}

// buildAFLRegistry flattens the seed catalog with synthetic ids, the same
// shape the database assigns on seeding.
func buildAFLRegistry(t *testing.T) *Registry {
	t.Helper()
	var defs []model.MetricDefinition
	id := int64(0)
	for _, cat := range AFLCatalog() {
		id++
		catID := id
		defs = append(defs, model.MetricDefinition{
			ID: catID, Name: cat.Name, Alias: cat.Alias, Subject: cat.Subject,
		})
		for _, leaf := range cat.Leaves {
			id++
			defs = append(defs, model.MetricDefinition{
				ID: id, Name: leaf.Name, Alias: leaf.Alias, Subject: cat.Subject,
				ParentID: catID, Kind: leaf.Kind,
			})
		}
	}
	r, err := NewRegistry(defs)
	if err != nil {
		t.Fatalf("AFL catalog failed registry construction: %v", err)
	}
	return r
}

func TestAFLCatalogBuildsCleanRegistry(t *testing.T) {
	r := buildAFLRegistry(t)

	// The derivation mapping and the report layer depend on these.
	for _, alias := range []string{"D", "PER_1", "G", "B", "CLR"} {
		if _, err := r.Resolve(alias, model.SubjectPlayer); err != nil {
			t.Errorf("PLAYER %s: %v", alias, err)
		}
	}
	for _, alias := range []string{"DISPOSAL", "KH_RATIO", "SC_PER_I50", "R_BEHINDS"} {
		if _, err := r.Resolve(alias, model.SubjectMatch); err != nil {
			t.Errorf("MATCH %s: %v", alias, err)
		}
	}

	kh, _ := r.Resolve("KH_RATIO", model.SubjectMatch)
	if kh.Kind != model.KindRatio {
		t.Errorf("KH_RATIO kind: got %v, want ratio", kh.Kind)
	}
	per, _ := r.Resolve("PER_1", model.SubjectPlayer)
	if per.Kind != model.KindPercent {
		t.Errorf("PER_1 kind: got %v, want percent", per.Kind)
	}
}
