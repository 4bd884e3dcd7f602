package annotate

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxSingleKeywords   = 15
	maxCompoundKeywords = 10
	maxKeywords         = 20
	minKeywordLength    = 4
	minCompoundLength   = 9
)

var (
	tokenPattern    = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9]*\b|\b\d+(?:\.\d+)?%?\b`)
	wordPattern     = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9]*\b`)
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
	keywordStopSet  = buildStopSet()
	keywordStopList = []string{
		"the", "and", "or", "but", "in", "on", "at", "to", "for", "of",
		"with", "by", "is", "are", "was", "were", "been", "be", "have",
		"has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "can", "this", "that", "these", "those",
		"a", "an", "as", "if", "then", "than", "so", "very", "much",
		"more", "most", "such", "no", "not", "only", "own", "same",
		"other", "some", "any", "all", "each", "every", "many", "few",
		"several", "page",
	}
)

func buildStopSet() map[string]struct{} {
	set := make(map[string]struct{}, len(keywordStopList))
	for _, w := range keywordStopList {
		set[w] = struct{}{}
	}
	return set
}

func isStopWord(word string) bool {
	_, ok := keywordStopSet[word]
	return ok
}

// Keywords extracts up to 20 keywords from text: the 15 most frequent
// single terms followed by up to 10 compound terms. Frequency ties and
// compound ordering follow first appearance in the text, so the result
// is stable across runs.
func (a *Annotator) Keywords(text string) []string {
	lower := strings.ToLower(text)

	tokens := tokenPattern.FindAllString(lower, -1)
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, tok := range tokens {
		if isStopWord(tok) || len(tok) < minKeywordLength {
			continue
		}
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})
	if len(order) > maxSingleKeywords {
		order = order[:maxSingleKeywords]
	}

	keywords := append([]string(nil), order...)
	keywords = append(keywords, a.compoundTerms(text)...)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// compoundTerms pairs adjacent non-stop words within each sentence,
// deduplicated in order of first appearance.
func (a *Annotator) compoundTerms(text string) []string {
	seen := make(map[string]struct{})
	var compounds []string
	for _, sentence := range sentenceSplit.Split(text, -1) {
		words := wordPattern.FindAllString(strings.ToLower(sentence), -1)
		for i := 0; i+1 < len(words); i++ {
			if isStopWord(words[i]) || isStopWord(words[i+1]) {
				continue
			}
			compound := words[i] + " " + words[i+1]
			if len(compound) < minCompoundLength {
				continue
			}
			if _, dup := seen[compound]; dup {
				continue
			}
			seen[compound] = struct{}{}
			compounds = append(compounds, compound)
			if len(compounds) == maxCompoundKeywords {
				return compounds
			}
		}
	}
	return compounds
}
