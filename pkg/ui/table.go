package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
)

// NamespaceRow is one line of the namespaces table.
type NamespaceRow struct {
	Name        string
	Description string
	File        string
	Entries     int
}

// RenderNamespaces writes the namespaces table to w.
func RenderNamespaces(w io.Writer, rows []NamespaceRow) error {
	data := pterm.TableData{{"NAMESPACE", "DESCRIPTION", "FILE", "ENTRIES"}}
	for _, r := range rows {
		data = append(data, []string{r.Name, r.Description, r.File, strconv.Itoa(r.Entries)})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render namespace table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
