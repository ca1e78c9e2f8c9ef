// Package category maps expense descriptions to a fixed set of categories.
package category

import "strings"

const DefaultName = "lainnya"

// Rule assigns Name to descriptions containing any of Keywords.
type Rule struct {
	Name     string
	Keywords []string
}

// DefaultRules is ordered: the first matching rule wins.
var DefaultRules = []Rule{
	{Name: "makanan", Keywords: []string{"nasi", "makan", "ayam", "kopi", "burger", "kfc", "sarapan"}},
	{Name: "transportasi", Keywords: []string{"grab", "gojek", "angkot", "kereta", "ojek", "bensin"}},
	{Name: "listrik", Keywords: []string{"listrik", "token", "pln"}},
	{Name: "hiburan", Keywords: []string{"spotify", "netflix", "bioskop", "game"}},
	{Name: "belanja", Keywords: []string{"shopee", "tokopedia", "lazada", "beli", "order"}},
}

type Classifier struct {
	rules    []Rule
	fallback string
}

// New copies rules so later changes by the caller don't leak in. Empty rules
// or fallback select the defaults.
func New(rules []Rule, fallback string) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	if fallback == "" {
		fallback = DefaultName
	}

	c := &Classifier{
		rules:    make([]Rule, 0, len(rules)),
		fallback: fallback,
	}
	for _, r := range rules {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		c.rules = append(c.rules, Rule{Name: r.Name, Keywords: keywords})
	}
	return c
}

func (c *Classifier) Classify(description string) string {
	description = strings.ToLower(description)
	for _, r := range c.rules {
		for _, k := range r.Keywords {
			if strings.Contains(description, k) {
				return r.Name
			}
		}
	}
	return c.fallback
}

// Names lists the categories in priority order followed by the fallback.
func (c *Classifier) Names() []string {
	res := make([]string, 0, len(c.rules)+1)
	for _, r := range c.rules {
		res = append(res, r.Name)
	}
	return append(res, c.fallback)
}
