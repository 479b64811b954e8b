package vocab

// defaultTechnicalSkills are canonical lowercase technical skill names.
var defaultTechnicalSkills = []string{
	// Languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust", "swift",
	"kotlin", "php", "scala", "r", "sql", "html", "css", "bash", "shell",
	// Frameworks and libraries
	"django", "flask", "fastapi", "spring", "react", "angular", "vue", "nodejs", "express",
	"rails", "laravel", "asp.net", "jquery", "bootstrap", "numpy", "pandas", "tensorflow",
	"pytorch", "keras", "scikit-learn", "pytest",
	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "ci/cd", "terraform",
	"ansible", "linux", "nginx", "apache",
	// Databases
	"postgresql", "mysql", "mongodb", "redis", "sqlite", "oracle", "elasticsearch",
	"cassandra", "dynamodb", "neo4j", "firebase",
	// Data science
	"machine learning", "deep learning", "nlp", "data science", "data analysis", "statistics",
	"matplotlib", "seaborn", "tableau", "power bi", "spark", "hadoop", "jupyter", "sas", "spss",
	// Practices and architecture
	"api", "rest", "graphql", "microservices", "backend", "frontend", "agile", "scrum",
	"kanban", "tdd", "bdd", "unit testing", "integration testing", "gitflow", "design patterns",
	// Certifications
	"aws certified", "azure certified", "gcp certified", "pmp", "prince2", "scrum master",
}

var defaultSoftSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "critical thinking",
	"adaptability", "time management", "collaboration", "analytical", "creativity",
	"project management", "public speaking", "negotiation", "decision making",
	"strategic thinking", "mentoring", "coaching", "interpersonal", "organizational",
}

// defaultSkillAliases maps variant spellings to canonical technical skills.
var defaultSkillAliases = map[string]string{
	"golang":                      "go",
	"k8s":                         "kubernetes",
	"node.js":                     "nodejs",
	"reactjs":                     "react",
	"react.js":                    "react",
	"vue.js":                      "vue",
	"vuejs":                       "vue",
	"angularjs":                   "angular",
	"postgres":                    "postgresql",
	"sklearn":                     "scikit-learn",
	"amazon web services":         "aws",
	"google cloud":                "gcp",
	"google cloud platform":       "gcp",
	"ruby on rails":               "rails",
	"restful":                     "rest",
	"back-end":                    "backend",
	"front-end":                   "frontend",
	"ml":                          "machine learning",
	"natural language processing": "nlp",
}

var defaultSeniorityLevels = []string{
	"intern", "junior", "mid", "senior", "staff", "lead", "principal", "architect",
}

var defaultFieldsOfStudy = []string{
	"computer science", "software engineering", "computer engineering", "information technology",
	"information systems", "data science", "mathematics", "statistics", "physics",
	"electrical engineering", "mechanical engineering", "engineering", "business administration",
	"business", "economics", "finance", "marketing", "psychology",
}

var defaultTitleKeywords = []string{
	"engineer", "developer", "programmer", "architect", "manager", "director", "lead",
	"analyst", "scientist", "consultant", "designer", "administrator", "specialist",
	"coordinator", "associate", "intern", "officer", "president", "head", "founder",
	"technician", "researcher", "assistant", "representative", "executive", "strategist",
}

var defaultCompanySuffixes = []string{
	"inc", "llc", "corp", "corporation", "ltd", "limited", "co", "company", "gmbh",
	"technologies", "solutions", "systems", "labs", "group", "partners", "software",
}

var defaultNonCompanyWords = []string{
	"present", "current", "now", "remote", "hybrid", "onsite", "full-time", "part-time",
	"contract", "freelance", "internship", "january", "february", "march", "april", "may",
	"june", "july", "august", "september", "october", "november", "december",
}

var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"as", "is", "are", "was", "were", "be", "been", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must", "can", "this", "that",
	"these", "those", "i", "you", "he", "she", "it", "we", "they", "my", "your", "our",
	"their", "from", "into", "about", "all", "any", "also", "not", "more", "such", "than",
	"work", "working", "team", "role", "position", "job", "candidate",
}
