package catalog

import (
	"strings"

	"github.com/jonathan/wellness-engine/internal/types"
)

type keywordRule struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// InferTags derives tags from an option's display name using the catalog's
// keyword rules. Matching is a case-insensitive substring test.
func (c *Catalog) InferTags(name string) types.TagSet {
	lower := strings.ToLower(name)
	tags := types.NewTagSet()
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				tags.Add(rule.Tag)
				break
			}
		}
	}
	return tags
}

// InferTags derives tags from a name using the default catalog's rules.
func InferTags(name string) types.TagSet {
	return Default().InferTags(name)
}
