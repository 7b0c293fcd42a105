package main

import (
	"io"

	"github.com/SAM0619TJ/Tiny-rasterizer/core"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the scenes of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := core.LoadSettings(configPath, logger)
		if err != nil {
			return err
		}
		writeSceneTable(cmd.OutOrStdout(), settings)
		return nil
	},
}

// writeSceneTable prints the registry in key order, the active scene
// is marked with an asterisk
func writeSceneTable(w io.Writer, settings *core.Settings) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"", "Key", "Name", "Description", "Vertex", "Fragment"})

	active := settings.ActiveSceneKey()
	for _, key := range settings.SceneKeys() {
		scene, err := settings.Scene(key)
		if err != nil {
			continue
		}

		marker := ""
		if key == active {
			marker = "*"
		}
		table.Append([]string{
			marker,
			scene.Key,
			scene.Name,
			scene.Description,
			scene.VertexShader,
			scene.FragmentShader,
		})
	}

	table.Render()
}
