package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coasterforge/coasterforge-backend/internal/model"
)

func init() {
	conceptsCmd := &cobra.Command{Use: "concepts", Short: "Concept operations"}

	// roll
	var random bool
	rollCmd := &cobra.Command{
		Use:   "roll [TYPE THRILL MANUFACTURER LAYOUT ELEMENTS THEME]",
		Short: "Generate a concept from six dice rolls",
		Args:  cobra.RangeArgs(0, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			rolls, err := parseRolls(args, random)
			if err != nil {
				return err
			}
			data, err := checkStatus(newClient().R().SetBody(rolls).Post("/api/concepts"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rollCmd.Flags().BoolVarP(&random, "random", "r", false, "Use random rolls instead of positional arguments")
	conceptsCmd.AddCommand(rollCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get CONCEPT_ID",
		Short: "Get a concept by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkStatus(newClient().R().Get("/api/concepts/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	conceptsCmd.AddCommand(getCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your newest concepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkStatus(newClient().R().Get("/api/concepts"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	conceptsCmd.AddCommand(listCmd)

	// public
	publicCmd := &cobra.Command{
		Use:   "public",
		Short: "List the newest public concepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkStatus(newClient().R().Get("/api/concepts/public"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	conceptsCmd.AddCommand(publicCmd)

	// rename
	var name string
	renameCmd := &cobra.Command{
		Use:   "rename CONCEPT_ID",
		Short: "Rename a concept you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name required")
			}
			body := map[string]string{"name": name}
			data, err := checkStatus(newClient().R().SetBody(body).Patch("/api/concepts/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	renameCmd.Flags().StringVarP(&name, "name", "n", "", "New concept name (required)")
	_ = renameCmd.MarkFlagRequired("name")
	conceptsCmd.AddCommand(renameCmd)

	// publish (visibility toggle)
	publishCmd := &cobra.Command{
		Use:   "publish CONCEPT_ID",
		Short: "Toggle a concept's public visibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkStatus(newClient().R().Post("/api/concepts/" + args[0] + "/visibility"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	conceptsCmd.AddCommand(publishCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete CONCEPT_ID",
		Short: "Delete a concept you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := checkStatus(newClient().R().Delete("/api/concepts/" + args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "deleted")
			return nil
		},
	}
	conceptsCmd.AddCommand(deleteCmd)

	// enrich
	enrichCmd := &cobra.Command{
		Use:   "enrich CONCEPT_ID KIND",
		Short: "Generate AI text for a concept (kind: description, theming, layout)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"kind": args[1]}
			data, err := checkStatus(newClient().R().SetBody(body).Post("/api/concepts/" + args[0] + "/ai"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	conceptsCmd.AddCommand(enrichCmd)

	rootCmd.AddCommand(conceptsCmd)

	// reference (top level, read-only)
	referenceCmd := &cobra.Command{
		Use:   "reference",
		Short: "Show the generation reference lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkStatus(newClient().R().Get("/api/reference"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(referenceCmd)
}

func parseRolls(args []string, random bool) (model.RollData, error) {
	if random {
		return model.RollData{
			TypeRoll:         rand.Intn(100),
			ThrillRoll:       rand.Intn(100),
			ManufacturerRoll: rand.Intn(100),
			LayoutRoll:       rand.Intn(100),
			ElementsRoll:     rand.Intn(100),
			ThemeRoll:        rand.Intn(100),
		}, nil
	}
	if len(args) != 6 {
		return model.RollData{}, fmt.Errorf("six rolls required (or use --random)")
	}
	vals := make([]int, 6)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil || v < 0 {
			return model.RollData{}, fmt.Errorf("roll %q must be a non-negative integer", a)
		}
		vals[i] = v
	}
	return model.RollData{
		TypeRoll:         vals[0],
		ThrillRoll:       vals[1],
		ManufacturerRoll: vals[2],
		LayoutRoll:       vals[3],
		ElementsRoll:     vals[4],
		ThemeRoll:        vals[5],
	}, nil
}
