package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pennywise/internal/category"
	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	var asTree bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category hierarchy",
		Long: `Display the categories records can be filed under.

Every category may have subcategories; finding a category also finds the
records of all categories beneath it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := configuredCategories()
			if err != nil {
				return err
			}

			if asTree {
				cli.RenderHierarchyTree(cmd.OutOrStdout(), categories)
				return nil
			}
			cli.RenderHierarchy(cmd.OutOrStdout(), categories)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asTree, "tree", "t", false, "Draw the hierarchy as a tree")

	cmd.AddCommand(checkCategoryCmd())
	cmd.AddCommand(subcategoriesCmd())

	return cmd
}

func checkCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <name>",
		Short: "Check whether a category exists",
		Long:  `Report whether a category is part of the hierarchy. Exits with an error when it is not.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := configuredCategories()
			if err != nil {
				return err
			}

			name := args[0]
			if !categories.IsValid(name) {
				return fmt.Errorf("category %q is not in the category list", name)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("'%s' is a valid category", name)))
			return nil
		},
	}
}

func subcategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subs <name>",
		Short: "List a category and all of its subcategories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := configuredCategories()
			if err != nil {
				return err
			}

			subs := categories.Subcategories(args[0])
			if len(subs) == 0 {
				return fmt.Errorf("category %q is not in the category list", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(subs, " "))
			return nil
		},
	}
}

// configuredCategories loads the hierarchy without touching the ledger.
func configuredCategories() (*category.Tree, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return loadCategories(cfg)
}
