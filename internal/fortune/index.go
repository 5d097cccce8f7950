package fortune

import (
	"fmt"
	"fortune/pkg/domain"
	"os"
	"strings"
)

// LoadCategories lists dir and returns every entry whose name has no dot.
// Dotted names are companion files such as "wisdom.dat" or "README.md".
func LoadCategories(dir string) (*domain.CategorySet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read fortune directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}

	return domain.NewCategorySet(names...), nil
}
