package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/model"
	"github.com/pageza/mixmaster/backend/internal/service"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *options) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search recipes by name, base or tag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return withService(opts, func(mix *service.MixService) error {
				mix.RecordSearch(query)
				printRecipes(cmd.OutOrStdout(), mix.Search(query, category))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "All", "Category filter ("+strings.Join(catalog.Categories, ", ")+")")
	return cmd
}

func newRandomCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Pick a random recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(mix *service.MixService) error {
				r, err := mix.Random()
				if err != nil {
					return err
				}
				printRecipes(cmd.OutOrStdout(), []model.Recipe{r})
				return nil
			})
		},
	}
}

func newSpotlightCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "spotlight",
		Short: "List favorites first, then the rest of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(mix *service.MixService) error {
				printRecipes(cmd.OutOrStdout(), mix.Spotlight(limit))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of recipes (defaults to SPOTLIGHT_LIMIT)")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	var servings int
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe scaled to a number of servings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if servings < 1 {
				return fmt.Errorf("--servings must be > 0")
			}
			return withService(opts, func(mix *service.MixService) error {
				d, err := mix.Open(args[0], servings)
				if err != nil {
					return err
				}
				printDetail(cmd.OutOrStdout(), d)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&servings, "servings", "s", 1, "Servings to scale the ingredients to")
	return cmd
}

func newFavCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id>",
		Short: "Toggle a recipe's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(mix *service.MixService) error {
				on, err := mix.ToggleFavorite(args[0])
				if err != nil {
					return err
				}
				if on {
					fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", args[0])
				}
				return nil
			})
		},
	}
}

func newRateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <1-5>",
		Short: "Rate a recipe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := ledger.ParseRating(args[1])
			if err != nil {
				return err
			}
			return withService(opts, func(mix *service.MixService) error {
				s, err := mix.SubmitRating(args[0], value)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rated %s %d (average %.1f from %d)\n", args[0], value, s.Average, s.Count)
				return nil
			})
		},
	}
}

func newCommentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <id> <text...>",
		Short: "Comment on a recipe",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(mix *service.MixService) error {
				comments, err := mix.PostComment(args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d comment(s) on %s\n", len(comments), args[0])
				return nil
			})
		},
	}
}

func newCreateCmd(opts *options) *cobra.Command {
	var in catalog.CreateInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create your own recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(mix *service.MixService) error {
				r, err := mix.CreateRecipe(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %s\n", r.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "Recipe name (required)")
	cmd.Flags().StringVar(&in.Base, "base", "", "Base spirit or drink, e.g. Vodka, Gin, Coffee")
	cmd.Flags().StringVar(&in.Ingredients, "ingredients", "", `Ingredients separated by ";" or newlines, e.g. "2 oz Vodka; 1 oz Lemon"`)
	cmd.Flags().StringVar(&in.Instructions, "instructions", "", "Instructions")
	return cmd
}

func newShareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Print a recipe as shareable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(mix *service.MixService) error {
				text, err := mix.ShareText(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			})
		},
	}
}

func newLibraryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "library",
		Short: "Show recently viewed and favorite recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(mix *service.MixService) error {
				lib := mix.Library()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Recently viewed:")
				printRecipes(out, lib.RecentViews)
				fmt.Fprintln(out, "\nFavorites:")
				printRecipes(out, lib.Favorites)
				return nil
			})
		},
	}
}

func printRecipes(w io.Writer, rs []model.Recipe) {
	if len(rs) == 0 {
		fmt.Fprintln(w, "No recipes found")
		return
	}
	fmt.Fprintln(w, "ID\tNAME\tTYPE")
	for _, r := range rs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, r.DisplayType())
	}
}

func printDetail(w io.Writer, d *service.Detail) {
	r := d.Recipe
	fmt.Fprintf(w, "%s (%s)\n", r.Name, r.DisplayType())
	fmt.Fprintf(w, "ID: %s\nServings: %d\n", r.ID, d.Servings)
	if d.RatingCount > 0 {
		fmt.Fprintf(w, "Rating: %.1f (%d)\n", d.Rating, d.RatingCount)
	} else {
		fmt.Fprintln(w, "Rating: none yet")
	}
	if d.Favorite {
		fmt.Fprintln(w, "Favorite: yes")
	}
	if r.Calories != nil {
		fmt.Fprintf(w, "Calories: %d\n", *r.Calories)
	}
	fmt.Fprintln(w, "\nIngredients:")
	for _, ing := range r.Ingredients {
		parts := []string{"-"}
		if ing.Amount != nil {
			parts = append(parts, strconv.FormatFloat(*ing.Amount, 'f', -1, 64))
		}
		if ing.Unit != "" {
			parts = append(parts, ing.Unit)
		}
		parts = append(parts, ing.Name)
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
	fmt.Fprintf(w, "\nInstructions:\n%s\n", r.Instructions)
	if len(d.Comments) > 0 {
		fmt.Fprintln(w, "\nComments:")
		for _, c := range d.Comments {
			fmt.Fprintf(w, "- %s\n", c)
		}
	}
}
