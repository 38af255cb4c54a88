package search

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "analysis"

// Graph renders a root move list as a DOT digraph: one edge per move from
// the root, labelled with the move and its weight. Moves holding the best
// weight are drawn in red.
func Graph(root string, l []MoveWeight) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.AddNode(graphName, "root", map[string]string{
		"label": strconv.Quote(root),
		"shape": "box",
	}); err != nil {
		return "", errors.WithMessage(err, "add root node")
	}

	best := maxWeight(l)
	for i, mw := range l {
		name := fmt.Sprintf("m%d", i)
		attrs := map[string]string{"label": strconv.Quote(mw.Move.String())}
		if mw.Weight == best {
			attrs["color"] = "red"
		}
		if err := g.AddNode(graphName, name, attrs); err != nil {
			return "", errors.WithMessage(err, fmt.Sprintf("add node for %v", mw.Move))
		}
		if err := g.AddEdge("root", name, true, map[string]string{
			"label": strconv.Quote(strconv.Itoa(mw.Weight)),
		}); err != nil {
			return "", errors.WithMessage(err, fmt.Sprintf("add edge for %v", mw.Move))
		}
	}
	return g.String(), nil
}
