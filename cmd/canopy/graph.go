package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/canopy/internal/demo"
	"github.com/aretw0/canopy/internal/presentation/graph"
	"github.com/aretw0/canopy/internal/presentation/tui"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state tree visualization",
	Long:  `Outputs the demo state tree as a Mermaid diagram (graph TD) or a YAML manifest.`,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		render, _ := cmd.Flags().GetBool("render")

		machine, err := demo.NewMachine()
		if err != nil {
			fmt.Printf("Error building machine: %v\n", err)
			os.Exit(1)
		}
		info := machine.Describe()

		switch format {
		case "yaml":
			out, err := yaml.Marshal(info)
			if err != nil {
				fmt.Printf("Error marshaling tree: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(string(out))
		case "mermaid":
			output := graph.GenerateMermaid(info, nil)
			if render {
				md := "# State Tree\n\n```mermaid\n" + output + "```\n"
				rendered, err := tui.NewRenderer()(md)
				if err != nil {
					fmt.Printf("Error rendering markdown: %v\n", err)
					os.Exit(1)
				}
				fmt.Print(rendered)
				return
			}
			fmt.Print(output)
		default:
			fmt.Printf("Unknown format: %s\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	graphCmd.Flags().String("format", "mermaid", "Output format (mermaid, yaml)")
	graphCmd.Flags().Bool("render", false, "Render the diagram as markdown in the terminal")
	rootCmd.AddCommand(graphCmd)
}
