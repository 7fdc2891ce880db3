package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexiusacademia/gocombo/internal/combo"
	"github.com/alexiusacademia/gocombo/internal/config"
	"github.com/alexiusacademia/gocombo/internal/document"
	"github.com/alexiusacademia/gocombo/internal/loadgroup"
	"github.com/alexiusacademia/gocombo/internal/nscp"
	"github.com/alexiusacademia/gocombo/internal/recipe"
	"github.com/spf13/cobra"
)

// inputFlags are the flags shared by every command that expands recipes
type inputFlags struct {
	groups  string
	factors string
	code    string
	names   map[string]string
	strict  bool
	workers int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.groups, "groups", "g", "", "Path to the load group YAML document (env GOCOMBO_GROUPS)")
	cmd.Flags().StringVarP(&f.factors, "factors", "f", "", "Path to the factor recipe YAML document (env GOCOMBO_FACTORS)")
	cmd.Flags().StringVar(&f.code, "code", "", "Use a built-in recipe set instead of a factors file (see 'gocombo codes')")
	cmd.Flags().StringToStringVar(&f.names, "names", nil, "Map NSCP load types to group names, e.g. Earthquake=Seismic,Roof=RoofLive")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject factors placed on alternative groups")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Recipes expanded in parallel (0 = one per recipe)")
}

// options merges the flags over the GOCOMBO_* environment
func (f *inputFlags) options() (config.Options, error) {
	opts, err := config.FromEnv()
	if err != nil {
		return opts, err
	}
	if f.groups != "" {
		opts.GroupsFile = f.groups
	}
	if f.factors != "" || f.code != "" {
		opts.FactorsFile, opts.Code = f.factors, f.code
	}
	if f.workers != 0 {
		opts.Workers = f.workers
	}
	opts.Strict = f.strict
	return opts, nil
}

// groupNames applies --names overrides to the default NSCP group names
func groupNames(overrides map[string]string) (nscp.GroupNames, error) {
	names := nscp.DefaultGroupNames
	for loadType, group := range overrides {
		switch strings.ToLower(loadType) {
		case "dead", "d":
			names.Dead = group
		case "live", "l":
			names.Live = group
		case "roof", "lr":
			names.Roof = group
		case "wind", "w":
			names.Wind = group
		case "earthquake", "e":
			names.Earthquake = group
		case "rain", "r":
			names.Rain = group
		default:
			return names, fmt.Errorf("unknown load type %q in --names", loadType)
		}
	}
	return names, nil
}

// expansion is the outcome of one run over a group and a factor document
type expansion struct {
	model   *loadgroup.Model
	recipes []recipe.Recipe
	result  combo.Result
}

func loadRecipes(opts config.Options, names nscp.GroupNames) ([]recipe.Recipe, error) {
	if opts.Code != "" {
		return nscp.Recipes(opts.Code, names)
	}
	return document.LoadFactors(opts.FactorsFile)
}

// expand reads both documents and expands every recipe. Recipes that fail
// are logged and left out; it is an error only when none succeeded.
func expand(ctx context.Context, opts config.Options, names nscp.GroupNames, logger *slog.Logger) (*expansion, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	doc, err := document.LoadGroups(opts.GroupsFile)
	if err != nil {
		return nil, err
	}
	model, err := loadgroup.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("building load groups: %w", err)
	}
	logger.Debug("load groups built", "groups", len(model.Groups()), "load_cases", len(model.LoadCases()))

	recipes, err := loadRecipes(opts, names)
	if err != nil {
		return nil, err
	}

	e := combo.New(model)
	e.Strict = opts.Strict
	e.Logger = logger

	res, err := combo.ExpandAll(ctx, e, recipes, opts.Workers)
	if err != nil {
		return nil, err
	}
	if len(recipes) > 0 && len(res.Failures) == len(recipes) {
		return nil, fmt.Errorf("none of the %d recipes could be expanded: %w", len(recipes), res.Failures[0])
	}
	logger.Info("expanded", "recipes", len(recipes), "skipped", len(res.Failures), "combinations", len(res.Rows))

	return &expansion{model: model, recipes: recipes, result: res}, nil
}
