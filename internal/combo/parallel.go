package combo

import (
	"context"
	"fmt"

	"github.com/alexiusacademia/gocombo/internal/recipe"
	"golang.org/x/sync/errgroup"
)

// RecipeError records a recipe that could not be expanded
type RecipeError struct {
	Recipe string
	Err    error
}

func (e *RecipeError) Error() string {
	return fmt.Sprintf("recipe %s: %v", e.Recipe, e.Err)
}

func (e *RecipeError) Unwrap() error {
	return e.Err
}

// Result holds the rows of every recipe that expanded, in recipe order,
// and the recipes that were skipped.
type Result struct {
	Rows     []Row
	Failures []*RecipeError
}

// ExpandAll expands recipes concurrently using at most workers goroutines
// (one per recipe when workers <= 0). A failing recipe is skipped and
// recorded; the others still expand. Only context cancellation aborts the run.
func ExpandAll(ctx context.Context, e *Expander, recipes []recipe.Recipe, workers int) (Result, error) {
	rows := make([][]Row, len(recipes))
	errs := make([]error, len(recipes))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, r := range recipes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i], errs[i] = e.Expand(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	for i, r := range recipes {
		if errs[i] != nil {
			e.logger().Warn("skipping recipe", "recipe", r.Name, "error", errs[i])
			res.Failures = append(res.Failures, &RecipeError{Recipe: r.Name, Err: errs[i]})
			continue
		}
		e.logger().Debug("expanded recipe", "recipe", r.Name, "combinations", len(rows[i]))
		res.Rows = append(res.Rows, rows[i]...)
	}
	return res, nil
}
