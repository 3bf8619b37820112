package refdata

// defaultKnownPhrases are curated multi-word terms pulled out before
// single-word tokenization. Longest-first matching means a phrase listed
// here always beats any shorter phrase it contains.
var defaultKnownPhrases = map[string]bool{
	"machine learning":              true,
	"deep learning":                 true,
	"natural language processing":   true,
	"computer vision":               true,
	"data science":                  true,
	"data engineering":              true,
	"data pipeline":                 true,
	"data pipelines":                true,
	"data analysis":                 true,
	"data visualization":            true,
	"data warehouse":                true,
	"big data":                      true,
	"business intelligence":         true,
	"artificial intelligence":       true,
	"large language models":         true,
	"prompt engineering":            true,
	"software engineering":          true,
	"software development":          true,
	"web development":               true,
	"mobile development":            true,
	"full stack":                    true,
	"front end":                     true,
	"back end":                      true,
	"distributed systems":           true,
	"system design":                 true,
	"systems design":                true,
	"microservices architecture":    true,
	"event driven architecture":     true,
	"service oriented architecture": true,
	"cloud computing":               true,
	"cloud infrastructure":          true,
	"cloud native":                  true,
	"infrastructure as code":        true,
	"container orchestration":       true,
	"site reliability":              true,
	"site reliability engineering":  true,
	"continuous integration":        true,
	"continuous delivery":           true,
	"continuous deployment":         true,
	"version control":               true,
	"code review":                   true,
	"code reviews":                  true,
	"unit testing":                  true,
	"integration testing":           true,
	"test driven development":       true,
	"test automation":               true,
	"quality assurance":             true,
	"performance optimization":      true,
	"capacity planning":             true,
	"incident response":             true,
	"on call":                       true,
	"api design":                    true,
	"rest api":                      true,
	"rest apis":                     true,
	"restful apis":                  true,
	"object oriented":               true,
	"object oriented programming":   true,
	"functional programming":        true,
	"agile methodologies":           true,
	"agile development":             true,
	"project management":            true,
	"product management":            true,
	"stakeholder management":        true,
	"cross functional":              true,
	"cross functional teams":        true,
	"technical leadership":          true,
	"team leadership":               true,
	"problem solving":               true,
	"critical thinking":             true,
	"communication skills":          true,
	"attention to detail":           true,
	"user experience":               true,
	"user interface":                true,
	"user research":                 true,
	"a/b testing":                   true,
	"access control":                true,
	"identity management":           true,
	"threat modeling":               true,
	"penetration testing":           true,
	"security engineering":          true,
	"supply chain":                  true,
	"customer success":              true,
	"go to market":                  true,
}
