package annotate

import (
	"regexp"
	"strings"
)

const (
	maxRelations      = 15
	minRelationLength = 11
	maxRelationLength = 149
)

// relationPatterns capture numerical, causal, comparative and temporal
// phrases, applied in this order so extraction is deterministic.
var relationPatterns = []*regexp.Regexp{
	// numerical
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:percent|%|times|fold|increase|decrease|ratio|rate)\b`),
	regexp.MustCompile(`(?i)\b(?:increased|decreased|reduced|improved|enhanced)\s+by\s+\d+(?:\.\d+)?\s*(?:percent|%)?\b`),
	regexp.MustCompile(`(?i)\b(?:from|between)\s+\d+(?:\.\d+)?\s+(?:to|and)\s+\d+(?:\.\d+)?\b`),
	// causal
	regexp.MustCompile(`(?i)\b\w+\s+(?:causes?|leads?\s+to|results?\s+in|due\s+to|because\s+of)\s+\w+\b`),
	regexp.MustCompile(`(?i)\b(?:if|when|while|since)\s+\w+.*?\s+then\s+\w+\b`),
	regexp.MustCompile(`(?i)\b\w+\s+(?:affects?|influences?|impacts?)\s+\w+\b`),
	// comparative
	regexp.MustCompile(`(?i)\b\w+\s+(?:is|are|was|were)\s+(?:higher|lower|greater|less|better|worse)\s+than\s+\w+\b`),
	regexp.MustCompile(`(?i)\b(?:compared\s+to|versus|vs\.?)\s+\w+\b`),
	regexp.MustCompile(`(?i)\b(?:more|less)\s+\w+\s+than\s+\w+\b`),
	// temporal
	regexp.MustCompile(`(?i)\b(?:before|after|during|while|when|since|until)\s+\w+.*?\w+\b`),
	regexp.MustCompile(`(?i)\b(?:in|at|on)\s+\d{4}\b|\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}\b`),
}

// Relations extracts up to 15 relation phrases from text. Matches are
// trimmed, deduplicated in first-seen order and kept only when their
// length falls between 11 and 149 characters.
func (a *Annotator) Relations(text string) []string {
	seen := make(map[string]struct{})
	var relations []string
	for _, pattern := range relationPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			rel := strings.TrimSpace(match)
			if len(rel) < minRelationLength || len(rel) > maxRelationLength {
				continue
			}
			if _, dup := seen[rel]; dup {
				continue
			}
			seen[rel] = struct{}{}
			relations = append(relations, rel)
			if len(relations) == maxRelations {
				return relations
			}
		}
	}
	return relations
}
