package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nurpe/vendor-onboarding/internal/form"
	"github.com/nurpe/vendor-onboarding/internal/model"
)

func newFieldsCommand() *cobra.Command {
	var country, offering string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Show the fields and document the form asks for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := form.Apply(form.New(),
				form.SetField{Name: model.FieldVendorCountry, Value: country},
				form.SetField{Name: model.FieldServiceOffering, Value: offering},
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Common fields: %s\n", strings.Join(model.CommonFields, ", "))
			if state.Currency != "" {
				fmt.Fprintf(out, "Currency: %s\n", state.Currency)
			}
			if visible := state.VisibleFields(); len(visible) > 0 {
				fmt.Fprintf(out, "%s fields: %s\n", state.ServiceOffering, strings.Join(visible, ", "))
			}
			if state.ShowsDocumentUpload() {
				fmt.Fprintf(out, "Document: %s (%s)\n", state.RequiredDocument().Label, strings.Join(form.DocumentExtensions, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "vendor country")
	cmd.Flags().StringVar(&offering, "offering", "", "service offering")
	return cmd
}

func newLabsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "labs [query]",
		Short: "Search the reference lab list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			for _, lab := range form.MatchingLabs(query) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", lab.ID, lab.Name)
			}
			return nil
		},
	}
}
