package dot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sftools/sferd/pkg/sferd"
)

func intPtr(n int) *int { return &n }

func refField(name, target string, required bool) sferd.Field {
	return sferd.Field{
		Name:            name,
		DataType:        sferd.TypeLookup,
		Required:        required,
		IsReference:     true,
		ReferenceTarget: target,
	}
}

func showAll() sferd.DisplayPolicy {
	return sferd.DisplayPolicy{ShowFields: true}
}

func TestRender_RoundTrip(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"A": {Name: "A", Label: "A", Category: sferd.CategoryStandard, Fields: []sferd.Field{
			refField("B__c", "B", true),
		}},
		"B": {Name: "B", Label: "B", Category: sferd.CategoryStandard},
	}
	rels := []sferd.Relationship{
		{SourceEntity: "A", TargetEntity: "B", SourceField: "B__c", Kind: sferd.KindWeak},
	}

	out := NewSerializer(DefaultStyle()).Render([]string{"A", "B"}, entities, rels, showAll(), "Test ERD")

	if !strings.Contains(out, `A [label="*A*|*B__c* : Lookup", fillcolor="#E1F5FE"];`) {
		t.Errorf("Node A missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, `B [label="*B*", fillcolor="#E1F5FE"];`) {
		t.Errorf("Node B should have no field lines:\n%s", out)
	}
	if !strings.Contains(out, `A:"B__c" -> B [arrowhead=open, arrowtail=none, color=gray, penwidth=1.5];`) {
		t.Errorf("Edge A->B missing or wrong:\n%s", out)
	}
	if !strings.HasPrefix(out, "digraph G {\n") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("Output must be a complete digraph document:\n%s", out)
	}
	if !strings.Contains(out, `label="Test ERD";`) {
		t.Errorf("Title missing:\n%s", out)
	}
}

func TestRender_TruncationMarker(t *testing.T) {
	entity := &sferd.Entity{Name: "Big__c", Label: "Big", Category: sferd.CategoryCustom}
	for i := 0; i < 5; i++ {
		entity.Fields = append(entity.Fields, refField(fmt.Sprintf("Ref%d__c", i), "Other", false))
	}
	entities := map[string]*sferd.Entity{"Big__c": entity}

	policy := sferd.DisplayPolicy{ShowFields: true, MaxFieldsPerEntity: intPtr(3)}
	out := NewSerializer(DefaultStyle()).Render([]string{"Big__c"}, entities, nil, policy, "T")

	for i := 0; i < 3; i++ {
		if !strings.Contains(out, fmt.Sprintf("Ref%d__c : Lookup", i)) {
			t.Errorf("Field Ref%d__c should be shown:\n%s", i, out)
		}
	}
	for i := 3; i < 5; i++ {
		if strings.Contains(out, fmt.Sprintf("Ref%d__c", i)) {
			t.Errorf("Field Ref%d__c should be hidden:\n%s", i, out)
		}
	}
	if !strings.Contains(out, "|+2 more") {
		t.Errorf("Expected +2 more marker:\n%s", out)
	}
}

func TestRender_NoMarkerWhenUnderLimit(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"A": {Name: "A", Label: "A", Fields: []sferd.Field{refField("B__c", "B", false)}},
	}
	policy := sferd.DisplayPolicy{ShowFields: true, MaxFieldsPerEntity: intPtr(3)}

	out := NewSerializer(DefaultStyle()).Render([]string{"A"}, entities, nil, policy, "T")
	if strings.Contains(out, "more") {
		t.Errorf("No marker expected when under the limit:\n%s", out)
	}
}

func TestRender_OnlyReferenceFieldsDisplayed(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"A": {Name: "A", Label: "A", Fields: []sferd.Field{
			{Name: "Amount__c", DataType: "Currency"},
			refField("B__c", "B", false),
			{Name: "Orphan__c", DataType: sferd.TypeLookup, IsReference: true}, // no target
		}},
	}

	out := NewSerializer(DefaultStyle()).Render([]string{"A"}, entities, nil, showAll(), "T")
	if strings.Contains(out, "Amount__c") {
		t.Errorf("Non-reference field must not be displayed:\n%s", out)
	}
	if strings.Contains(out, "Orphan__c") {
		t.Errorf("Reference field without target must not be displayed:\n%s", out)
	}
	if !strings.Contains(out, "B__c : Lookup") {
		t.Errorf("Targeted reference field must be displayed:\n%s", out)
	}
}

func TestRender_HideFields(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"A": {Name: "A", Label: "Account", Fields: []sferd.Field{refField("B__c", "B", false)}},
	}

	out := NewSerializer(DefaultStyle()).Render([]string{"A"}, entities, nil, sferd.DisplayPolicy{ShowFields: false}, "T")
	if !strings.Contains(out, `A [label="*Account*", fillcolor=`) {
		t.Errorf("Label-only node expected when fields are hidden:\n%s", out)
	}
	if strings.Contains(out, "B__c") {
		t.Errorf("Fields must not appear when hidden:\n%s", out)
	}
}

func TestRender_UnloadedSelectionOmitted(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"A": {Name: "A", Label: "A"},
	}

	// Ghost is selected by rank but was never loaded.
	out := NewSerializer(DefaultStyle()).Render([]string{"A", "Ghost"}, entities, nil, showAll(), "T")
	if strings.Contains(out, "Ghost") {
		t.Errorf("Unloaded selected name must be omitted:\n%s", out)
	}
}

func TestRender_EdgeRequiresBothEndpointsSelected(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"A": {Name: "A", Label: "A", Fields: []sferd.Field{refField("Out__c", "Outside", false)}},
	}
	rels := []sferd.Relationship{
		{SourceEntity: "A", TargetEntity: "Outside", SourceField: "Out__c", Kind: sferd.KindWeak},
	}

	out := NewSerializer(DefaultStyle()).Render([]string{"A"}, entities, rels, showAll(), "T")
	if strings.Contains(out, "->") {
		t.Errorf("Edge to unselected target must be omitted:\n%s", out)
	}
}

func TestRender_StrongEdgeStyle(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"Child__c":  {Name: "Child__c", Label: "Child", Category: sferd.CategoryCustom},
		"Parent__c": {Name: "Parent__c", Label: "Parent", Category: sferd.CategoryCustom},
	}
	rels := []sferd.Relationship{
		{SourceEntity: "Child__c", TargetEntity: "Parent__c", SourceField: "Parent__c", Kind: sferd.KindStrong},
	}

	out := NewSerializer(DefaultStyle()).Render([]string{"Child__c", "Parent__c"}, entities, rels, showAll(), "T")
	want := `Child__c:"Parent__c" -> Parent__c [arrowhead=dot, arrowtail=dot, color=steelblue, penwidth=2.0];`
	if !strings.Contains(out, want) {
		t.Errorf("Strong edge style missing, want %q in:\n%s", want, out)
	}
}

func TestRender_CategoryFillColors(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"Account":    {Name: "Account", Label: "Account", Category: sferd.CategoryStandard},
		"npsp__X":    {Name: "npsp__X", Label: "X", Category: sferd.CategoryManagedPackage},
		"Invoice__c": {Name: "Invoice__c", Label: "Invoice", Category: sferd.CategoryCustom},
	}

	out := NewSerializer(DefaultStyle()).Render([]string{"Account", "npsp__X", "Invoice__c"}, entities, nil, showAll(), "T")
	if !strings.Contains(out, `Account [label="*Account*", fillcolor="#E1F5FE"];`) {
		t.Errorf("Standard color wrong:\n%s", out)
	}
	if !strings.Contains(out, `npsp__X [label="*X*", fillcolor="#FFE0B2"];`) {
		t.Errorf("Managed package color wrong:\n%s", out)
	}
	if !strings.Contains(out, `Invoice__c [label="*Invoice*", fillcolor="#FFF9C4"];`) {
		t.Errorf("Custom color wrong:\n%s", out)
	}
}

func TestRender_SanitizesLabels(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"A": {Name: "A", Label: `Pipe|And"Quote`, Fields: []sferd.Field{refField("B__c", "B", false)}},
	}

	out := NewSerializer(DefaultStyle()).Render([]string{"A"}, entities, nil, showAll(), `Title "Quoted"`)
	if !strings.Contains(out, `*Pipe\|And\"Quote*`) {
		t.Errorf("Entity label must be escaped:\n%s", out)
	}
	if !strings.Contains(out, `label="Title \"Quoted\"";`) {
		t.Errorf("Title must be escaped:\n%s", out)
	}
}

func TestRender_DeterministicOutput(t *testing.T) {
	entities := map[string]*sferd.Entity{
		"A": {Name: "A", Label: "A", Fields: []sferd.Field{refField("B__c", "B", false)}},
		"B": {Name: "B", Label: "B"},
	}
	rels := []sferd.Relationship{
		{SourceEntity: "A", TargetEntity: "B", SourceField: "B__c", Kind: sferd.KindWeak},
	}

	ser := NewSerializer(DefaultStyle())
	first := ser.Render([]string{"A", "B"}, entities, rels, showAll(), "T")
	for i := 0; i < 10; i++ {
		if got := ser.Render([]string{"A", "B"}, entities, rels, showAll(), "T"); got != first {
			t.Fatal("Render output must be byte-identical across runs")
		}
	}
}
