package refdata

// defaultTechKeywords are technology terms recognized anywhere in a JD.
// Entries use post-tokenizer form, so symbol-bearing names appear as their
// rewrites (cpp, csharp, dotnet, nodejs, cicd).
var defaultTechKeywords = map[string]bool{
	// Languages
	"python": true, "java": true, "javascript": true, "typescript": true,
	"go": true, "golang": true, "rust": true, "ruby": true, "php": true,
	"swift": true, "kotlin": true, "scala": true, "cpp": true, "csharp": true,
	"c": true, "r": true, "perl": true, "elixir": true, "haskell": true,
	"clojure": true, "dart": true, "lua": true, "objective-c": true,
	"sql": true, "bash": true, "powershell": true,

	// Frontend
	"react": true, "reactjs": true, "angular": true, "vue": true,
	"vuejs": true, "svelte": true, "nextjs": true, "nuxt": true,
	"html": true, "css": true, "sass": true, "tailwind": true,
	"webpack": true, "vite": true, "redux": true, "jquery": true,

	// Backend and frameworks
	"nodejs": true, "express": true, "django": true, "flask": true,
	"fastapi": true, "rails": true, "spring": true, "laravel": true,
	"dotnet": true, "graphql": true, "grpc": true, "rest": true,

	// Data stores
	"postgresql": true, "postgres": true, "mysql": true, "mongodb": true,
	"redis": true, "elasticsearch": true, "cassandra": true, "dynamodb": true,
	"sqlite": true, "oracle": true, "mariadb": true, "memcached": true,
	"snowflake": true, "bigquery": true, "redshift": true, "clickhouse": true,

	// Cloud and infrastructure
	"aws": true, "azure": true, "gcp": true, "kubernetes": true,
	"docker": true, "terraform": true, "ansible": true, "puppet": true,
	"chef": true, "helm": true, "istio": true, "nginx": true,
	"cloudformation": true, "lambda": true, "ec2": true, "s3": true,
	"cicd": true, "jenkins": true, "gitlab": true, "github": true,
	"circleci": true, "argocd": true, "vault": true, "consul": true,

	// Messaging and streaming
	"kafka": true, "rabbitmq": true, "sqs": true, "pubsub": true,
	"nats": true, "celery": true, "airflow": true, "spark": true,
	"flink": true, "hadoop": true, "dbt": true,

	// Observability
	"prometheus": true, "grafana": true, "datadog": true, "splunk": true,
	"kibana": true, "opentelemetry": true, "sentry": true,

	// ML / data science
	"tensorflow": true, "pytorch": true, "keras": true, "pandas": true,
	"numpy": true, "scikit-learn": true, "jupyter": true, "mlflow": true,
	"huggingface": true, "langchain": true, "openai": true,

	// Tooling and practices
	"git": true, "jira": true, "linux": true, "unix": true, "agile": true,
	"scrum": true, "kanban": true, "tdd": true, "microservices": true,
	"serverless": true, "devops": true, "sre": true, "oauth": true,
	"saml": true, "api": true, "json": true, "yaml": true, "protobuf": true,
	"websocket": true, "selenium": true, "cypress": true, "playwright": true,
	"figma": true, "tableau": true, "looker": true, "salesforce": true,
}

// defaultActionVerbs are delivery/leadership verbs scanned across the whole
// JD regardless of section.
var defaultActionVerbs = map[string]bool{
	"build": true, "built": true, "design": true, "designed": true,
	"develop": true, "developed": true, "implement": true,
	"implemented": true, "lead": true, "led": true, "manage": true,
	"managed": true, "architect": true, "architected": true, "create": true,
	"created": true, "deliver": true, "delivered": true, "deploy": true,
	"deployed": true, "maintain": true, "maintained": true, "optimize": true,
	"optimized": true, "scale": true, "scaled": true, "automate": true,
	"automated": true, "collaborate": true, "collaborated": true,
	"mentor": true, "mentored": true, "drive": true, "drove": true,
	"owned": true, "improve": true, "improved": true,
	"launch": true, "launched": true, "migrate": true, "migrated": true,
	"monitor": true, "monitored": true, "troubleshoot": true, "debug": true,
	"test": true, "tested": true, "review": true, "reviewed": true,
	"analyze": true, "analyzed": true, "research": true, "prototype": true,
	"integrate": true, "integrated": true, "refactor": true, "ship": true,
	"shipped": true, "coordinate": true, "coordinated": true,
	"communicate": true, "communicated": true, "define": true,
	"defined": true, "establish": true, "established": true,
}
