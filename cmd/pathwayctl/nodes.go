package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/service/admin"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List and update pathway nodes",
}

var nodesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the nodes in pathway order",
	Args:  cobra.NoArgs,
	RunE:  runNodesList,
}

var updateFlags struct {
	title       string
	description string
	icon        string
	position    string
	detailsFile string
}

var nodesUpdateCmd = &cobra.Command{
	Use:   "update <node-id>",
	Short: "Edit one node the way the admin page does",
	Long: `Edit one node the way the admin page does.

Empty flags keep the node's current value. A position that is not a number
also keeps the current position. --details-file reads one detail per line
("-" reads standard input); without it the details are left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runNodesUpdate,
}

func init() {
	f := nodesUpdateCmd.Flags()
	f.StringVar(&updateFlags.title, "title", "", "New title")
	f.StringVar(&updateFlags.description, "description", "", "New description")
	f.StringVar(&updateFlags.icon, "icon", "", "Icon name")
	f.StringVar(&updateFlags.position, "position", "", "New position")
	f.StringVar(&updateFlags.detailsFile, "details-file", "", "File with one detail per line")

	nodesCmd.AddCommand(nodesListCmd)
	nodesCmd.AddCommand(nodesUpdateCmd)
}

func runNodesList(cmd *cobra.Command, args []string) error {
	container, cleanup, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	nodes, err := container.Store.ListByPosition(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderNodes(nodes))
	return nil
}

func renderNodes(nodes []pathway.Node) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("POS", "ID", "TITLE", "GLYPH").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, node := range nodes {
		t.Row(strconv.Itoa(node.Position), node.ID, node.Title, node.Glyph().Name)
	}
	return t.String()
}

func runNodesUpdate(cmd *cobra.Command, args []string) error {
	container, cleanup, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	session := admin.NewSession("cli", container.Accessor, container.Logger, nil)
	if err := session.Load(cmd.Context()); err != nil {
		return err
	}
	if notes := session.DrainNotifications(); len(notes) > 0 {
		return notificationError(notes[len(notes)-1])
	}
	if err := session.Select(args[0]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	form := session.View().Form
	form.Title = updateFlags.title
	form.Description = updateFlags.description
	form.Icon = updateFlags.icon
	form.Position = updateFlags.position
	if updateFlags.detailsFile != "" {
		text, err := readDetails(cmd.InOrStdin(), updateFlags.detailsFile)
		if err != nil {
			return err
		}
		form.Details = text
	}
	session.Apply(form)

	updated, err := session.Save(cmd.Context())
	if err != nil {
		return err
	}
	if updated == nil {
		return notificationError(session.DrainNotifications()[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✔ Changes saved"))
	fmt.Fprintln(cmd.OutOrStdout(), renderNodes([]pathway.Node{*updated}))
	return nil
}

func readDetails(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read details: %w", err)
	}
	return string(data), nil
}

func notificationError(n admin.Notification) error {
	if n.Message == "" {
		return fmt.Errorf("%s", n.Title)
	}
	return fmt.Errorf("%s. %s", n.Title, n.Message)
}
