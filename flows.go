package guilders

// The cash-flow report is a bipartite Sankey graph: every income category
// flows into a single synthetic "Income" hub, and the hub flows out into
// every expense category. A category can appear on both sides when it has
// transactions in both directions.

// flowPalette is the number of distinct link colors the dashboard renders;
// color indexes cycle through it.
const flowPalette = 12

// FlowHub is the name of the synthetic hub node.
const FlowHub = "Income"

// FlowNode is a labeled endpoint in the flow graph. Value is the total
// converted magnitude transacted under that (category, direction) label;
// the hub itself carries no value.
type FlowNode struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FlowLink connects two nodes by index with the net magnitude flowing
// between them.
type FlowLink struct {
	Source         int     `json:"source"`
	Target         int     `json:"target"`
	Value          float64 `json:"value"`
	FlowColorIndex int     `json:"flowColorIndex"`
}

// FlowGraph is the full node/link set of the cash-flow Sankey chart.
type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Links []FlowLink `json:"links"`
}

// flowSide accumulates one direction (income or expense) of the graph:
// categories in first-seen order with their total converted magnitude.
type flowSide struct {
	order  []string
	totals map[string]float64
}

func newFlowSide() *flowSide {
	return &flowSide{totals: make(map[string]float64)}
}

func (s *flowSide) add(category string, magnitude float64) {
	if _, seen := s.totals[category]; !seen {
		s.order = append(s.order, category)
	}
	s.totals[category] += magnitude
}

// BuildFlowGraph folds transactions into the income/expense flow graph in
// the user currency. Order is fully determined by input order: income
// categories first (as first seen), then the hub, then expense categories.
// Color indexes cycle 1..flowPalette, restarting for the expense side so
// the two directions color independently.
//
// Zero-magnitude (category, direction) pairs emit no link; their node can
// still exist when the category transacts in the other direction.
func BuildFlowGraph(transactions []Transaction, rates *RateTable, userCurrency string) FlowGraph {
	income, expense := newFlowSide(), newFlowSide()
	for _, tx := range transactions {
		amount := Convert(Finite(tx.Amount.Float()), tx.Currency, rates, userCurrency)
		switch {
		case amount > 0:
			income.add(tx.category(), amount)
		case amount < 0:
			expense.add(tx.category(), -amount)
		}
	}

	graph := FlowGraph{Nodes: []FlowNode{}, Links: []FlowLink{}}
	for _, cat := range income.order {
		graph.Nodes = append(graph.Nodes, FlowNode{Name: cat + " (Income)", Value: income.totals[cat]})
	}
	hub := len(graph.Nodes)
	graph.Nodes = append(graph.Nodes, FlowNode{Name: FlowHub})
	for _, cat := range expense.order {
		graph.Nodes = append(graph.Nodes, FlowNode{Name: cat + " (Expense)", Value: expense.totals[cat]})
	}

	for i, cat := range income.order {
		total := income.totals[cat]
		if total <= 0 {
			continue
		}
		graph.Links = append(graph.Links, FlowLink{
			Source:         i,
			Target:         hub,
			Value:          total,
			FlowColorIndex: i%flowPalette + 1,
		})
	}
	for i, cat := range expense.order {
		total := expense.totals[cat]
		if total <= 0 {
			continue
		}
		graph.Links = append(graph.Links, FlowLink{
			Source:         hub,
			Target:         hub + 1 + i,
			Value:          total,
			FlowColorIndex: i%flowPalette + 1,
		})
	}
	return graph
}
