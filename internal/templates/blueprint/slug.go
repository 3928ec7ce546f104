package blueprint

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates"
)

const (
	// OriginalSlug names the empty selection
	OriginalSlug = "original"

	// MaxRepeat caps how many times one selection may repeat
	MaxRepeat = 3
)

// EncodeSlug renders selections as "advanced-giant-x3-young-x2". Counts are
// clamped to MaxRepeat and zero counts are dropped.
func EncodeSlug(selections []Selection) string {
	parts := make([]string, 0, len(selections))
	for _, sel := range selections {
		if sel.Count <= 0 {
			continue
		}
		parts = append(parts, sel.Kind.String())
		if count := min(sel.Count, MaxRepeat); count > 1 {
			parts = append(parts, "x"+strconv.Itoa(count))
		}
	}
	if len(parts) == 0 {
		return OriginalSlug
	}
	return strings.Join(parts, "-")
}

// DecodeSlug parses a slug produced by EncodeSlug. Template names are case
// insensitive and repeat counts above MaxRepeat are clamped.
func DecodeSlug(slug string) ([]Selection, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" || slug == OriginalSlug {
		return nil, nil
	}

	tokens := strings.Split(slug, "-")
	var selections []Selection
	for i := 0; i < len(tokens); i++ {
		kind, err := templates.ParseKind(tokens[i])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid slug %q", slug)
		}

		count := 1
		if i+1 < len(tokens) {
			if n, ok := parseRepeat(tokens[i+1]); ok {
				if n < 1 {
					return nil, errors.InvalidArgumentf("invalid repeat %q in slug %q", tokens[i+1], slug)
				}
				count = min(n, MaxRepeat)
				i++
			}
		}
		selections = append(selections, Selection{Kind: kind, Count: count})
	}
	return selections, nil
}

func parseRepeat(token string) (int, bool) {
	digits, found := strings.CutPrefix(token, "x")
	if !found || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
