package refdata

// defaultStopwords are common English words excluded from extraction.
var defaultStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "it": true,
	"be": true, "was": true, "are": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "shall": true, "must": true,
	"this": true, "that": true, "these": true, "those": true, "we": true,
	"our": true, "you": true, "your": true, "they": true, "them": true,
	"their": true, "i": true, "me": true, "my": true, "he": true, "she": true,
	"his": true, "her": true, "its": true, "us": true, "am": true,
	"were": true, "what": true, "which": true, "who": true, "whom": true,
	"when": true, "where": true, "how": true, "why": true, "not": true,
	"no": true, "nor": true, "so": true, "if": true, "then": true,
	"than": true, "too": true, "very": true, "just": true, "about": true,
	"also": true, "into": true, "each": true, "all": true, "any": true,
	"some": true, "more": true, "most": true, "other": true, "such": true,
	"only": true, "own": true, "same": true, "both": true, "few": true,
	"there": true, "here": true, "up": true, "out": true, "over": true,
	"under": true, "again": true, "further": true, "once": true,
	"while": true, "during": true, "before": true, "after": true,
	"above": true, "below": true, "between": true, "through": true,
	"because": true, "until": true, "against": true, "within": true,
	"without": true, "along": true, "across": true, "behind": true,
	"beyond": true, "plus": true, "per": true, "via": true, "etc": true,
	"able": true, "well": true, "strong": true, "work": true,
	"working": true, "works": true, "year": true, "years": true,
	"experience": true, "experienced": true, "role": true, "job": true,
	"team": true, "teams": true, "candidate": true, "candidates": true,
	"ability": true, "skills": true, "skill": true, "including": true,
	"include": true, "includes": true, "ideal": true, "looking": true,
	"seeking": true, "join": true, "new": true, "using": true, "use": true,
	"used": true, "like": true, "make": true, "help": true, "need": true,
	"needs": true, "want": true,
	"related": true, "various": true, "andor": true, "eg": true, "ie": true,
	"day": true, "days": true, "every": true, "one": true, "two": true,
	"three": true, "someone": true, "person": true, "people": true,
	"great": true, "good": true, "best": true, "better": true, "highly": true,
	"preferred": true, "required": true, "requirements": true, "plusses": true,
	"responsibilities": true, "qualifications": true, "minimum": true,
	"equivalent": true, "degree": true, "bachelor": true, "bachelors": true,
	"master": true, "masters": true, "field": true, "knowledge": true,
	"understanding": true, "familiarity": true, "proficiency": true,
	"excellent": true, "demonstrated": true, "proven": true, "hands": true,
	"opportunity": true, "company": true, "position": true,
}
