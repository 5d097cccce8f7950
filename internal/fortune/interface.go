// Package fortune reads the local fortune database: it indexes the available
// categories and runs the external fortune program to pick a fortune.
package fortune

import (
	"context"
	"fortune/pkg/domain"
)

// Fortuner serves categories and fortunes to the API and the CLI.
//
//go:generate mockgen -package mockfortune -source=interface.go -destination=mock/mockfortune.go *
type Fortuner interface {
	// Categories returns the category set built at startup.
	Categories() *domain.CategorySet
	// Fortune returns one fortune from category, or from any category when
	// category is empty.
	Fortune(ctx context.Context, category string) (string, error)
}

// Runner executes the external fortune program.
type Runner interface {
	// Run returns the program's standard output for category verbatim.
	Run(ctx context.Context, category string) (string, error)
}
