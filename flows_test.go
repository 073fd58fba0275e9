package guilders

import (
	"fmt"
	"testing"
)

func TestBuildFlowGraph(t *testing.T) {
	transactions := []Transaction{
		{ID: "t1", Amount: 1000, Currency: "USD", Category: "salary"},
		{ID: "t2", Amount: -200, Currency: "USD", Category: "food"},
	}

	got := BuildFlowGraph(transactions, nil, "USD")

	wantNodes := []FlowNode{
		{Name: "salary (Income)", Value: 1000},
		{Name: "Income"},
		{Name: "food (Expense)", Value: 200},
	}
	if len(got.Nodes) != len(wantNodes) {
		t.Fatalf("got %d nodes, want %d", len(got.Nodes), len(wantNodes))
	}
	for i, want := range wantNodes {
		if got.Nodes[i] != want {
			t.Errorf("Nodes[%d] = %+v, want %+v", i, got.Nodes[i], want)
		}
	}

	wantLinks := []FlowLink{
		{Source: 0, Target: 1, Value: 1000, FlowColorIndex: 1},
		{Source: 1, Target: 2, Value: 200, FlowColorIndex: 1},
	}
	if len(got.Links) != len(wantLinks) {
		t.Fatalf("got %d links, want %d", len(got.Links), len(wantLinks))
	}
	for i, want := range wantLinks {
		if got.Links[i] != want {
			t.Errorf("Links[%d] = %+v, want %+v", i, got.Links[i], want)
		}
	}
}

func TestBuildFlowGraph_Empty(t *testing.T) {
	got := BuildFlowGraph(nil, nil, "USD")
	if len(got.Nodes) != 1 || got.Nodes[0].Name != FlowHub {
		t.Errorf("empty graph nodes = %+v, want only the hub", got.Nodes)
	}
	if len(got.Links) != 0 {
		t.Errorf("empty graph links = %+v, want none", got.Links)
	}
}

func TestBuildFlowGraph_CategoryInBothDirections(t *testing.T) {
	transactions := []Transaction{
		{ID: "t1", Amount: 100, Currency: "USD", Category: "shop"},
		{ID: "t2", Amount: -40, Currency: "USD", Category: "shop"},
	}
	got := BuildFlowGraph(transactions, nil, "USD")

	wantNames := []string{"shop (Income)", "Income", "shop (Expense)"}
	for i, name := range wantNames {
		if got.Nodes[i].Name != name {
			t.Errorf("Nodes[%d].Name = %q, want %q", i, got.Nodes[i].Name, name)
		}
	}
	if got.Nodes[0].Value != 100 || got.Nodes[2].Value != 40 {
		t.Errorf("node values = %v, %v, want 100, 40", got.Nodes[0].Value, got.Nodes[2].Value)
	}
}

func TestBuildFlowGraph_Uncategorized(t *testing.T) {
	got := BuildFlowGraph([]Transaction{{ID: "t1", Amount: -5, Currency: "USD"}}, nil, "USD")
	if got.Nodes[1].Name != "uncategorized (Expense)" {
		t.Errorf("Nodes[1].Name = %q, want uncategorized (Expense)", got.Nodes[1].Name)
	}
}

func TestBuildFlowGraph_Bipartite(t *testing.T) {
	// Every link either ends at the hub (income) or starts at it (expense).
	var transactions []Transaction
	for i := 0; i < 30; i++ {
		transactions = append(transactions,
			Transaction{ID: fmt.Sprintf("i%d", i), Amount: Amount(10 + i), Currency: "USD", Category: fmt.Sprintf("in%d", i%15)},
			Transaction{ID: fmt.Sprintf("e%d", i), Amount: Amount(-5 - float64(i)), Currency: "USD", Category: fmt.Sprintf("out%d", i%14)},
		)
	}
	got := BuildFlowGraph(transactions, nil, "USD")

	hub := -1
	for i, n := range got.Nodes {
		if n.Name == FlowHub {
			hub = i
			break
		}
	}
	if hub < 0 {
		t.Fatal("no hub node")
	}
	for _, link := range got.Links {
		in, out := link.Target == hub, link.Source == hub
		if in == out {
			t.Errorf("link %+v is not strictly income or expense", link)
		}
		if in && link.Source >= hub {
			t.Errorf("income link %+v sources past the hub", link)
		}
		if out && link.Target <= hub {
			t.Errorf("expense link %+v targets before the hub", link)
		}
		if link.Value <= 0 {
			t.Errorf("link %+v has non-positive value", link)
		}
	}
}

func TestBuildFlowGraph_ColorCycling(t *testing.T) {
	// 13 income categories and 2 expense categories: color indexes cycle
	// through the palette, and the expense side restarts at 1.
	var transactions []Transaction
	for i := 0; i < 13; i++ {
		transactions = append(transactions, Transaction{
			ID: fmt.Sprintf("i%d", i), Amount: 10, Currency: "USD", Category: fmt.Sprintf("in%d", i),
		})
	}
	transactions = append(transactions,
		Transaction{ID: "e0", Amount: -1, Currency: "USD", Category: "out0"},
		Transaction{ID: "e1", Amount: -1, Currency: "USD", Category: "out1"},
	)

	got := BuildFlowGraph(transactions, nil, "USD")

	for i := 0; i < 12; i++ {
		if got.Links[i].FlowColorIndex != i+1 {
			t.Errorf("income link %d color = %d, want %d", i, got.Links[i].FlowColorIndex, i+1)
		}
	}
	if got.Links[12].FlowColorIndex != 1 {
		t.Errorf("13th income link color = %d, want cycle back to 1", got.Links[12].FlowColorIndex)
	}
	if got.Links[13].FlowColorIndex != 1 || got.Links[14].FlowColorIndex != 2 {
		t.Errorf("expense link colors = %d, %d, want independent 1, 2",
			got.Links[13].FlowColorIndex, got.Links[14].FlowColorIndex)
	}
}

func TestBuildFlowGraph_Converts(t *testing.T) {
	rates := NewRateTable([]Rate{{Code: "EUR", Rate: 0.9}, {Code: "USD", Rate: 1}})
	got := BuildFlowGraph([]Transaction{
		{ID: "t1", Amount: 100, Currency: "EUR", Category: "salary"},
	}, rates, "USD")
	if got.Nodes[0].Value != 90 {
		t.Errorf("converted node value = %v, want 90", got.Nodes[0].Value)
	}
}

func TestBuildFlowGraph_Deterministic(t *testing.T) {
	transactions := []Transaction{
		{ID: "t1", Amount: 10, Currency: "USD", Category: "b"},
		{ID: "t2", Amount: 20, Currency: "USD", Category: "a"},
		{ID: "t3", Amount: -5, Currency: "USD", Category: "z"},
		{ID: "t4", Amount: 1, Currency: "USD", Category: "b"},
	}
	first := BuildFlowGraph(transactions, nil, "USD")
	for i := 0; i < 10; i++ {
		again := BuildFlowGraph(transactions, nil, "USD")
		if len(again.Nodes) != len(first.Nodes) || len(again.Links) != len(first.Links) {
			t.Fatalf("run %d: graph shape changed", i)
		}
		for j := range first.Nodes {
			if again.Nodes[j] != first.Nodes[j] {
				t.Fatalf("run %d: node %d changed: %+v != %+v", i, j, again.Nodes[j], first.Nodes[j])
			}
		}
		for j := range first.Links {
			if again.Links[j] != first.Links[j] {
				t.Fatalf("run %d: link %d changed: %+v != %+v", i, j, again.Links[j], first.Links[j])
			}
		}
	}
	// First-seen order: category "b" precedes "a".
	if first.Nodes[0].Name != "b (Income)" || first.Nodes[1].Name != "a (Income)" {
		t.Errorf("income order = %q, %q, want first-seen b, a", first.Nodes[0].Name, first.Nodes[1].Name)
	}
}
