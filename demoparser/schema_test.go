package demoparser

import (
	"testing"

	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demo/democore"
)

// Scenario 3 (spec.md §8): tables A (x, priority 10; collapsible
// DataTable prop referencing B) and B (y, priority 100, CHANGES_OFTEN)
// flatten to [y, x] for a class referencing A.
func TestFlattenServerClassPriorityOrder(t *testing.T) {
	intType := democore.SendPropTypeByID(democore.SendPropTypeIDInt)
	dtType := democore.SendPropTypeByID(democore.SendPropTypeIDDataTable)

	propX := &demo.SendProp{Type: intType, VarName: "x", Priority: 10}
	propToB := &demo.SendProp{Type: dtType, VarName: "b", DTName: "B", Flags: democore.SPropCollapsible}
	propY := &demo.SendProp{Type: intType, VarName: "y", Priority: 100, Flags: democore.SPropChangesOften}

	tableA := &demo.SendTable{NetTableName: "A", Props: []*demo.SendProp{propX, propToB}}
	tableB := &demo.SendTable{NetTableName: "B", Props: []*demo.SendProp{propY}}

	state := demo.NewParserState()
	state.DataTables = []*demo.SendTable{tableA, tableB}

	sc := &demo.ServerClass{ClassID: 0, Name: "CTest", DTName: "A", DataTableIndex: 0}
	flattenServerClass(sc, state)

	if len(sc.FlattenedProps) != 2 {
		t.Fatalf("len(FlattenedProps) = %v, want 2", len(sc.FlattenedProps))
	}
	if sc.FlattenedProps[0].Prop.VarName != "y" {
		t.Errorf("FlattenedProps[0].VarName = %v, want y", sc.FlattenedProps[0].Prop.VarName)
	}
	if sc.FlattenedProps[1].Prop.VarName != "x" {
		t.Errorf("FlattenedProps[1].VarName = %v, want x", sc.FlattenedProps[1].Prop.VarName)
	}
}

func TestServerClassBits(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{256, 9},
	}
	for _, c := range cases {
		if got := serverClassBits(c.n); got != c.want {
			t.Errorf("serverClassBits(%v) = %v, want %v", c.n, got, c.want)
		}
	}
}
