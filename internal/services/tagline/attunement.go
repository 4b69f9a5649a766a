package tagline

import (
	"regexp"
	"strings"
)

var (
	requiresAttunementPrefix = regexp.MustCompile(`(?i)^requires attunement`)
	classRestriction         = regexp.MustCompile(`(?i)(^| )by a `)
	leadingConjunction       = regexp.MustCompile(`(?i)^(or|and)\s+`)
	leadingArticle           = regexp.MustCompile(`(?i)^(a|an)\s+`)
)

func isAttunementClause(lower string) bool {
	return strings.Contains(lower, "(requires attunement") ||
		strings.HasPrefix(lower, "requires attunement")
}

// classifyAttunement handles "rare (requires attunement by a wizard)".
// Trailing class names split off by the comma splitter are absorbed into
// the condition, so the returned position may skip several segments.
func classifyAttunement(st *state, segments []string, pos int) (int, bool, error) {
	segment := segments[pos]
	if !isAttunementClause(strings.ToLower(segment)) {
		return pos, false, nil
	}

	clause := segment
	if open := strings.Index(segment, "("); open >= 0 {
		prefix := segment[:open]
		clause = segment[open+1:]
		if strings.TrimSpace(prefix) != "" && !applyRarity(st, prefix) {
			st.warnf("Rarity %q requires manual conversion", strings.TrimSpace(prefix))
		}
	}

	clause = requiresAttunementPrefix.ReplaceAllString(strings.TrimSpace(clause), "")
	clause = strings.TrimSpace(strings.Replace(clause, ")", "", 1))

	if clause == "" {
		st.draft.ReqAttune.Required = true
		st.draft.ReqAttune.Condition = ""
		return pos + 1, true, nil
	}

	condition := strings.ToLower(clause)
	next := pos + 1
	if classRestriction.MatchString(condition) {
		for ; next < len(segments); next++ {
			if !st.catalog.IsClass(className(segments[next])) {
				break
			}
			condition += ", " + strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(segments[next]), ")"))
		}
	}

	st.draft.ReqAttune.Required = true
	st.draft.ReqAttune.Condition = condition
	return next, true, nil
}

// className strips "or a " and a closing paren from a trailing class segment
func className(segment string) string {
	name := strings.TrimSpace(segment)
	name = leadingConjunction.ReplaceAllString(name, "")
	name = leadingArticle.ReplaceAllString(strings.TrimSpace(name), "")
	name = strings.TrimSuffix(strings.TrimSpace(name), ")")
	return strings.TrimSpace(name)
}
