package refdata

// defaultSkillSynonyms maps a canonical term to variants a résumé may use
// instead. Matching treats the relation as bidirectional through the
// canonical hub: a keyword equal to any variant also reaches the canonical
// and its sibling variants.
var defaultSkillSynonyms = map[string][]string{
	"kubernetes":       {"k8s", "gke", "eks", "aks", "container orchestration"},
	"docker":           {"containers", "containerization", "oci"},
	"aws":              {"amazon web services", "ec2", "s3", "lambda", "cloudformation"},
	"gcp":              {"google cloud", "google cloud platform", "bigquery", "gke"},
	"azure":            {"microsoft azure", "aks", "azure devops"},
	"cloud":            {"aws", "gcp", "azure", "cloud infrastructure", "cloud computing"},
	"javascript":       {"js", "es6", "ecmascript"},
	"typescript":       {"ts"},
	"python":           {"py", "python3"},
	"golang":           {"go"},
	"postgresql":       {"postgres", "psql"},
	"mysql":            {"mariadb"},
	"mongodb":          {"mongo", "nosql"},
	"redis":            {"memcached", "in-memory cache", "caching"},
	"cicd":             {"continuous integration", "continuous delivery", "continuous deployment", "jenkins", "github actions", "gitlab ci"},
	"terraform":        {"infrastructure as code", "iac", "cloudformation", "pulumi"},
	"microservices":    {"service oriented architecture", "soa", "distributed systems"},
	"machine learning": {"ml", "deep learning", "neural networks"},
	"react":            {"reactjs", "react native"},
	"nodejs":           {"node", "express"},
	"rest":             {"rest api", "rest apis", "restful apis", "api design"},
	"grpc":             {"protobuf", "protocol buffers"},
	"kafka":            {"event streaming", "message queue", "pub/sub"},
	"elasticsearch":    {"opensearch", "elk"},
	"observability":    {"monitoring", "prometheus", "grafana", "datadog", "telemetry"},
	"agile":            {"scrum", "kanban", "sprint planning"},
	"leadership":       {"team leadership", "technical leadership", "mentoring", "mentorship"},
	"testing":          {"unit testing", "integration testing", "test automation", "qa", "quality assurance"},
	"security":         {"appsec", "infosec", "threat modeling", "penetration testing"},
	"sql":              {"postgresql", "mysql", "relational databases"},
	"devops":           {"sre", "site reliability", "platform engineering"},
	"frontend":         {"front end", "ui development", "client-side"},
	"backend":          {"back end", "server-side"},
}
