package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// nodeStyles maps presentation states to lipgloss styles. Priority when
// several apply: current > pruned > goal > visited > unvisited.
var (
	styleCurrent   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)
	stylePruned    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleGoal      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleVisited   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleUnvisited = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleBranch    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// treeLine is one row of the rendered tree: the branch prefix and the node
// it belongs to.
type treeLine struct {
	prefix string
	node   *vistree.Node
}

// treeLines flattens the subtree into display rows with box-drawing
// prefixes, in preorder.
func treeLines(root *vistree.Node) []treeLine {
	lines := make([]treeLine, 0, root.Count())
	lines = append(lines, treeLine{prefix: "", node: root})
	appendChildLines(root, "", &lines)
	return lines
}

func appendChildLines(n *vistree.Node, prefix string, lines *[]treeLine) {
	for i, c := range n.Children {
		connector := "├─ "
		childPrefix := prefix + "│  "
		if i == len(n.Children)-1 {
			connector = "└─ "
			childPrefix = prefix + "   "
		}
		*lines = append(*lines, treeLine{prefix: prefix + connector, node: c})
		appendChildLines(c, childPrefix, lines)
	}
}

// nodeLabel builds the text for one node: name plus the annotations that are
// present (value, edge cost, alpha/beta window, visit count, goal and
// pruning marks).
func nodeLabel(n *vistree.Node) string {
	var b strings.Builder
	b.WriteString(n.Name)

	if n.Value != nil {
		b.WriteString(" v=")
		b.WriteString(formatShort(*n.Value))
	}
	if n.CostToParent != nil {
		b.WriteString(" c=")
		b.WriteString(formatShort(*n.CostToParent))
	}
	if n.Alpha != nil {
		b.WriteString(" a=")
		b.WriteString(formatShort(*n.Alpha))
	}
	if n.Beta != nil {
		b.WriteString(" b=")
		b.WriteString(formatShort(*n.Beta))
	}
	if n.Visits > 0 {
		b.WriteString(fmt.Sprintf(" visits=%d", n.Visits))
	}
	if n.IsGoal {
		b.WriteString(" [goal]")
	}
	if n.IsPruned {
		if n.PruningTriggeredBy != "" {
			b.WriteString(" [pruned by ")
			b.WriteString(shortID(n.PruningTriggeredBy))
			b.WriteString("]")
		} else {
			b.WriteString(" [pruned]")
		}
	}

	return b.String()
}

// shortID trims a path-derived node id down to its last segment.
func shortID(id string) string {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// formatShort renders a float the shortest way that round-trips.
func formatShort(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// styleFor picks the render style for a node.
func styleFor(n *vistree.Node) lipgloss.Style {
	switch {
	case n.IsCurrent:
		return styleCurrent
	case n.IsPruned:
		return stylePruned
	case n.IsGoal:
		return styleGoal
	case n.IsVisited:
		return styleVisited
	default:
		return styleUnvisited
	}
}

// RenderTree converts a presentation tree to styled display lines, one node
// per line. The caller hands the result to a viewport for scrolling.
func RenderTree(root *vistree.Node) []string {
	lines := treeLines(root)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleBranch.Render(l.prefix) + styleFor(l.node).Render(nodeLabel(l.node))
	}
	return out
}

// CurrentLine returns the row index of the current node, or 0 when no node
// is marked. Used to keep the cursor in view during playback.
func CurrentLine(root *vistree.Node) int {
	for i, l := range treeLines(root) {
		if l.node.IsCurrent {
			return i
		}
	}
	return 0
}
