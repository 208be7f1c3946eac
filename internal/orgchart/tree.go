package orgchart

import (
	"fmt"
	"strings"

	"github.com/jonathan/marketpulse/internal/sheet"
)

// ErrCompanyNotFound indicates the workbook has no rows for the company.
type ErrCompanyNotFound struct {
	Company string
}

func (e *ErrCompanyNotFound) Error() string {
	return fmt.Sprintf("no buying-group rows for company: %s", e.Company)
}

// ErrCycleDetected indicates a reportsTo chain loops back on itself, leaving
// the affected records unreachable from any root.
type ErrCycleDetected struct {
	Identity string
}

func (e *ErrCycleDetected) Error() string {
	return fmt.Sprintf("reportsTo cycle detected involving: %s", e.Identity)
}

// Node is one person in the chart with their direct reports in row order.
type Node struct {
	Record   sheet.PersonRecord
	Children []*Node
}

// Chart is the reconstructed forest for one company. The data does not
// guarantee a single root.
type Chart struct {
	Company  string
	Location string
	Roots    []*Node
}

// Build filters records to the company (exact, case-sensitive match on the
// raw value), reconstructs the manager/report forest and detects cycles.
// Roots are records whose reportsTo is empty or resolves to no known
// identity in the same company.
func Build(records []sheet.PersonRecord, company string) (*Chart, error) {
	var members []sheet.PersonRecord
	for _, r := range records {
		if r.CompanyName == company {
			members = append(members, r)
		}
	}
	if len(members) == 0 {
		return nil, &ErrCompanyNotFound{Company: company}
	}

	location := strings.TrimSpace(members[0].Location)

	nodes := make([]*Node, len(members))
	index := make(map[string]*Node, len(members)*2)
	for i, r := range members {
		nodes[i] = &Node{Record: r}
		// Index by unique ID and by name; reportsTo may reference either.
		// First occurrence wins on duplicates.
		for _, key := range []string{r.UniqueID, r.Name} {
			if key != "" {
				if _, exists := index[key]; !exists {
					index[key] = nodes[i]
				}
			}
		}
	}

	chart := &Chart{Company: company, Location: location}
	for _, node := range nodes {
		parent, ok := index[node.Record.ReportsTo]
		if node.Record.ReportsTo == "" || !ok || parent == node {
			chart.Roots = append(chart.Roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	if err := detectCycle(chart.Roots, nodes); err != nil {
		return nil, err
	}
	return chart, nil
}

// detectCycle walks the forest from its roots; any node not reached sits on
// a reportsTo cycle. Traversal tracks visited nodes so malformed input can
// never cause non-termination.
func detectCycle(roots []*Node, all []*Node) error {
	visited := make(map[*Node]bool, len(all))
	var walk func(*Node)
	walk = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	for _, node := range all {
		if !visited[node] {
			return &ErrCycleDetected{Identity: node.Record.Identity()}
		}
	}
	return nil
}
