package scoring

// stopwords is the closed set of common English function words excluded when
// computing keyword coverage: articles, conjunctions, prepositions, forms of
// be/have/do, and modal verbs.
var stopwords = map[string]bool{
	// Articles and determiners
	"a": true, "an": true, "the": true, "this": true, "that": true,
	"these": true, "those": true, "some": true, "any": true, "each": true,
	"all": true, "its": true, "it": true,

	// Conjunctions
	"and": true, "or": true, "but": true, "nor": true, "so": true,
	"yet": true, "if": true, "because": true, "while": true, "although": true,
	"than": true, "then": true, "when": true, "where": true, "which": true,
	"who": true, "whom": true, "whose": true, "what": true, "how": true,

	// Prepositions
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"with": true, "by": true, "from": true, "as": true, "into": true,
	"onto": true, "about": true, "over": true, "under": true, "between": true,
	"through": true, "during": true, "before": true, "after": true,
	"above": true, "below": true, "up": true, "down": true, "out": true,
	"off": true, "via": true,

	// Forms of be, have, do
	"be": true, "is": true, "am": true, "are": true, "was": true,
	"were": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "having": true,
	"do": true, "does": true, "did": true, "doing": true,

	// Modal verbs
	"can": true, "could": true, "will": true, "would": true, "shall": true,
	"should": true, "may": true, "might": true, "must": true,

	// Common fillers
	"not": true, "no": true, "also": true, "very": true, "just": true,
	"there": true, "here": true, "such": true,
}
