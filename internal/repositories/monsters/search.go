package monsters

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/antzucaro/matchr"
	"golang.org/x/text/cases"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// fold normalizes a name or source for use as a key. Casers are not safe
// for concurrent use so one is built per call.
func fold(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

func tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// matches reports whether a folded name contains the folded query, or
// every query token starts some name token
func matches(query, name string) bool {
	if strings.Contains(name, query) {
		return true
	}
	queryTokens := tokens(query)
	if len(queryTokens) == 0 {
		return false
	}
	nameTokens := tokens(name)
	for _, qt := range queryTokens {
		found := slices.ContainsFunc(nameTokens, func(nt string) bool {
			return strings.HasPrefix(nt, qt)
		})
		if !found {
			return false
		}
	}
	return true
}

type scored struct {
	key   string
	name  string
	score float64
}

// rank returns the keys of names matching the query ordered by exactness,
// then Jaro-Winkler similarity, then name. names maps folded keys to
// display names.
func rank(query string, names map[string]string, limit int) []scored {
	query = fold(query)
	var found []scored
	for key, name := range names {
		if !matches(query, key) {
			continue
		}
		found = append(found, scored{
			key:   key,
			name:  name,
			score: matchr.JaroWinkler(query, key, false),
		})
	}
	slices.SortFunc(found, func(a, b scored) int {
		if exact := boolCmp(b.key == query, a.key == query); exact != 0 {
			return exact
		}
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
	if len(found) > limit {
		found = found[:limit]
	}
	return found
}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// suggest returns display names within an edit distance budget of the
// query, nearest first
func suggest(query string, names map[string]string, limit int) []string {
	query = fold(query)
	budget := max(2, len([]rune(query))/3)

	type near struct {
		key      string
		distance int
	}
	var nearby []near
	for key := range names {
		if d := levenshtein.ComputeDistance(query, key); d <= budget {
			nearby = append(nearby, near{key: key, distance: d})
		}
	}
	slices.SortFunc(nearby, func(a, b near) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})

	suggestions := make([]string, 0, min(len(nearby), limit))
	for _, n := range nearby[:min(len(nearby), limit)] {
		suggestions = append(suggestions, names[n.key])
	}
	return suggestions
}

func searchLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, errors.InvalidArgument(errNegativeSize)
	case limit == 0:
		return DefaultSearchLimit, nil
	default:
		return min(limit, MaxSearchLimit), nil
	}
}

// sortedValues returns the values of m in order
func sortedValues(m map[string]string) []string {
	return slices.Sorted(maps.Values(m))
}

// resolveSource picks the folded source key for a lookup. sources maps
// folded source keys to display sources.
func resolveSource(name, source string, sources map[string]string) (string, error) {
	if source != "" {
		key := fold(source)
		if _, ok := sources[key]; !ok {
			return "", errors.NotFoundf("monster %q not found in source %q", name, source).
				WithMeta("sources", toInterfaces(sortedValues(sources)))
		}
		return key, nil
	}

	switch len(sources) {
	case 0:
		return "", errors.NotFoundf("monster %q not found", name)
	case 1:
		for key := range sources {
			return key, nil
		}
	}
	return "", errors.FailedPreconditionf("monster %q exists in %d sources; a source is required", name, len(sources)).
		WithMeta("sources", toInterfaces(sortedValues(sources)))
}

func notFound(name string, names map[string]string) error {
	err := errors.NotFoundf("monster %q not found", name)
	if suggestions := suggest(name, names, DefaultSearchLimit); len(suggestions) > 0 {
		err = err.WithMeta("suggestions", toInterfaces(suggestions))
	}
	return err
}

// toInterfaces converts strings to a form error metadata can carry over gRPC
func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
