package main

import (
	"fmt"

	"github.com/jonathan/wellness-engine/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	validateKind  string
	validateInput string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a prediction or nutrition JSON file against its schema",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateKind, "kind", "", "Document kind: prediction or nutrition")
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to the JSON document")

	if err := validateCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	kind, err := schemas.ParseKind(validateKind)
	if err != nil {
		return err
	}
	if err := schemas.ValidateFile(kind, validateInput); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid %s document\n", validateInput, kind)
	return nil
}
