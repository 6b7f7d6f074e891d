package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/KimNorgaard/go-jsonml"
	"github.com/KimNorgaard/go-jsonml/internal/formatter"
)

// treeStyles colors the outline. Styles render as plain text when the output
// is not a terminal.
type treeStyles struct {
	tag  lipgloss.Style
	attr lipgloss.Style
	text lipgloss.Style
}

// treeCommand creates the tree command, which prints the structure of a
// JsonML document as an outline.
func (c *CLI) treeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the markup tree of a JsonML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.decodeInput(cmd, args)
			if err != nil {
				return err
			}

			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			styles := treeStyles{
				tag:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
				attr: r.NewStyle().Foreground(lipgloss.Color("8")),
				text: r.NewStyle().Foreground(lipgloss.Color("10")),
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), buildTree(e, styles).String())
			return err
		},
	}
}

// buildTree converts the markup tree into a printable tree. Tags become
// branches labelled with their name and attributes; text becomes a quoted
// leaf.
func buildTree(e jsonml.Element, styles treeStyles) treeprint.Tree {
	t := treeprint.NewWithRoot(nodeLabel(e, styles))
	if tag, ok := e.(*jsonml.Tag); ok {
		for _, child := range tag.Children {
			addNode(t, child, styles)
		}
	}
	return t
}

func addNode(parent treeprint.Tree, e jsonml.Element, styles treeStyles) {
	tag, ok := e.(*jsonml.Tag)
	if !ok || len(tag.Children) == 0 {
		parent.AddNode(nodeLabel(e, styles))
		return
	}
	branch := parent.AddBranch(nodeLabel(e, styles))
	for _, child := range tag.Children {
		addNode(branch, child, styles)
	}
}

func nodeLabel(e jsonml.Element, styles treeStyles) string {
	switch v := e.(type) {
	case jsonml.Text:
		return styles.text.Render(formatter.Quote(string(v)))
	case *jsonml.Tag:
		var b strings.Builder
		b.WriteString(styles.tag.Render(v.Name))
		for _, key := range v.Attributes.Keys() {
			b.WriteString(" ")
			b.WriteString(styles.attr.Render(key + "=" + valueLabel(v.Attributes[key])))
		}
		return b.String()
	default:
		return fmt.Sprintf("%v", e)
	}
}

func valueLabel(v jsonml.AttributeValue) string {
	switch val := v.(type) {
	case jsonml.String:
		return formatter.Quote(string(val))
	case jsonml.Number:
		return val.String()
	case jsonml.Bool:
		return strconv.FormatBool(bool(val))
	default:
		return "null"
	}
}
