package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/action"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/view"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the actions of the capture view",
	Long: `List every action with its name, keyboard shortcut and description.
Names are accepted by "otla ruler --do". Actions served by an external
backend are marked unbound.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := action.NewRegistry()
		if err := view.BindActions(reg, view.NewModel(0, 0), nil); err != nil {
			return err
		}

		acts := reg.Actions()
		rows := make([][]string, 0, len(acts))
		for _, a := range acts {
			state := ""
			if !reg.Bound(a.ID) {
				state = "unbound"
			}
			rows = append(rows, []string{a.Name, a.Shortcut, a.Tooltip, state})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styleTitle.Render("Actions"))
		fmt.Fprintln(out, newTable([]string{"Name", "Key", "Description", ""}, rows, nil).Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
