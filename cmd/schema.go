package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"

	"github.com/cdarip/cdarip/analysis"
	"github.com/cdarip/cdarip/media"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("resource", "r", false, "Generate the JSON Schema of a single media resource")
}

// schemaCmd prints the JSON schema of the analyze --json output.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the analyze --json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return filepath.Base(t.PkgPath()) + "." + t.Name()
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("resource")) {
			schema = reflector.Reflect(&media.Resource{})
		} else {
			schema = reflector.Reflect(&analysis.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
