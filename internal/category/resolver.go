// ABOUTME: Resolves a project name to its category and generates the sample table.
// ABOUTME: Generation is pure: the seed is passed in and re-applied on every call.

package category

import (
	"fmt"

	"github.com/2389/bdas/internal/table"
)

// Rules returns the rules in precedence order. The last rule is always Default.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Match returns the first rule matching name. It never fails: Default matches everything.
func Match(name string) Rule {
	for _, r := range rules {
		if r.Matches(name) {
			return r
		}
	}
	// unreachable while Default is last
	return rules[len(rules)-1]
}

// Lookup finds a rule by category name.
func Lookup(category string) (Rule, bool) {
	for _, r := range rules {
		if r.Category == category {
			return r, true
		}
	}
	return Rule{}, false
}

// Generate resolves name and builds its table from a source seeded with seed.
func Generate(name string, seed int64) (*table.Table, error) {
	r := Match(name)
	t, err := r.Shape.Build(seed)
	if err != nil {
		return nil, fmt.Errorf("generate %q: %w", name, err)
	}
	return t, nil
}
