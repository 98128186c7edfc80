// Package skills normalizes skill and technology names to a canonical vocabulary
// and extracts known skills from free text.
package skills

import "github.com/jonathan/university-match/internal/types"

// synonymTable maps canonical skill names to their textual variants.
// Order matters: lookups walk the table top to bottom and the first group wins.
var synonymTable = []types.SynonymEntry{
	// JavaScript ecosystem
	{Canonical: "javascript", Aliases: []string{"javascript", "js", "ecmascript", "es6", "es2015", "es2020", "vanilla js"}},
	{Canonical: "typescript", Aliases: []string{"typescript", "ts"}},
	{Canonical: "node.js", Aliases: []string{"node.js", "nodejs", "node", "node js"}},
	{Canonical: "react", Aliases: []string{"react", "reactjs", "react.js", "react js"}},
	{Canonical: "vue.js", Aliases: []string{"vue.js", "vue", "vuejs", "vue js", "vue 3"}},
	{Canonical: "angular", Aliases: []string{"angular", "angularjs", "angular.js", "angular 2+"}},
	{Canonical: "next.js", Aliases: []string{"next.js", "nextjs", "next"}},
	{Canonical: "express.js", Aliases: []string{"express.js", "expressjs", "express"}},

	// Python ecosystem
	{Canonical: "python", Aliases: []string{"python", "py", "python3", "python 3"}},
	{Canonical: "django", Aliases: []string{"django", "django rest framework", "drf"}},
	{Canonical: "flask", Aliases: []string{"flask", "flask api"}},
	{Canonical: "fastapi", Aliases: []string{"fastapi", "fast api"}},
	{Canonical: "pandas", Aliases: []string{"pandas", "pd"}},
	{Canonical: "numpy", Aliases: []string{"numpy", "np"}},
	{Canonical: "tensorflow", Aliases: []string{"tensorflow", "tf", "tensorflow 2"}},
	{Canonical: "pytorch", Aliases: []string{"pytorch", "torch"}},
	{Canonical: "scikit-learn", Aliases: []string{"scikit-learn", "sklearn", "scikit learn"}},

	// Java ecosystem
	{Canonical: "java", Aliases: []string{"java", "java 8", "java 11", "java 17", "jdk"}},
	{Canonical: "spring", Aliases: []string{"spring", "spring boot", "springboot", "spring framework"}},
	{Canonical: "kotlin", Aliases: []string{"kotlin", "kt"}},

	// C family
	{Canonical: "c", Aliases: []string{"c language", "c programming"}},
	{Canonical: "c++", Aliases: []string{"c++", "cpp", "c plus plus"}},
	{Canonical: "c#", Aliases: []string{"c#", "csharp", "c sharp", ".net c#"}},
	{Canonical: ".net", Aliases: []string{".net", "dotnet", ".net core", ".net framework", "asp.net"}},

	// Mobile
	{Canonical: "react native", Aliases: []string{"react native", "react-native", "rn"}},
	{Canonical: "flutter", Aliases: []string{"flutter", "dart flutter"}},
	{Canonical: "swift", Aliases: []string{"swift", "swiftui", "swift ui"}},
	{Canonical: "ios", Aliases: []string{"ios", "ios development", "iphone development"}},
	{Canonical: "android", Aliases: []string{"android", "android development", "android studio"}},

	// Databases
	{Canonical: "sql", Aliases: []string{"sql", "structured query language"}},
	{Canonical: "mysql", Aliases: []string{"mysql", "my sql"}},
	{Canonical: "postgresql", Aliases: []string{"postgresql", "postgres", "psql", "pg"}},
	{Canonical: "mongodb", Aliases: []string{"mongodb", "mongo", "mongo db"}},
	{Canonical: "redis", Aliases: []string{"redis", "redis db"}},
	{Canonical: "firebase", Aliases: []string{"firebase", "firestore", "firebase db"}},
	{Canonical: "supabase", Aliases: []string{"supabase", "supabase db"}},

	// Cloud & DevOps
	{Canonical: "aws", Aliases: []string{"aws", "amazon web services", "amazon aws"}},
	{Canonical: "azure", Aliases: []string{"azure", "microsoft azure", "ms azure"}},
	{Canonical: "gcp", Aliases: []string{"gcp", "google cloud", "google cloud platform"}},
	{Canonical: "docker", Aliases: []string{"docker", "docker container", "containerization"}},
	{Canonical: "kubernetes", Aliases: []string{"kubernetes", "k8s", "kube"}},
	{Canonical: "ci/cd", Aliases: []string{"ci/cd", "cicd", "ci cd", "continuous integration", "continuous deployment"}},
	{Canonical: "git", Aliases: []string{"git", "github", "gitlab", "bitbucket", "version control"}},

	// AI / ML
	{Canonical: "machine learning", Aliases: []string{"machine learning", "ml", "makine öğrenmesi"}},
	{Canonical: "deep learning", Aliases: []string{"deep learning", "dl", "derin öğrenme"}},
	{Canonical: "artificial intelligence", Aliases: []string{"artificial intelligence", "ai", "yapay zeka"}},
	{Canonical: "nlp", Aliases: []string{"nlp", "natural language processing", "doğal dil işleme"}},
	{Canonical: "computer vision", Aliases: []string{"computer vision", "cv", "görüntü işleme", "image processing"}},
	{Canonical: "llm", Aliases: []string{"llm", "large language model", "gpt", "chatgpt", "claude", "mistral"}},

	// Data engineering
	{Canonical: "etl", Aliases: []string{"etl", "extract transform load", "data pipeline"}},
	{Canonical: "spark", Aliases: []string{"spark", "apache spark", "pyspark"}},
	{Canonical: "hadoop", Aliases: []string{"hadoop", "apache hadoop", "hdfs"}},
	{Canonical: "kafka", Aliases: []string{"kafka", "apache kafka"}},
	{Canonical: "airflow", Aliases: []string{"airflow", "apache airflow"}},

	// Frontend tooling
	{Canonical: "html", Aliases: []string{"html", "html5", "html 5"}},
	{Canonical: "css", Aliases: []string{"css", "css3", "css 3"}},
	{Canonical: "sass", Aliases: []string{"sass", "scss"}},
	{Canonical: "tailwind", Aliases: []string{"tailwind", "tailwindcss", "tailwind css"}},
	{Canonical: "bootstrap", Aliases: []string{"bootstrap", "bootstrap 5"}},

	// Other languages
	{Canonical: "go", Aliases: []string{"go", "golang", "go lang"}},
	{Canonical: "rust", Aliases: []string{"rust", "rust lang"}},
	{Canonical: "ruby", Aliases: []string{"ruby", "ruby on rails", "rails", "ror"}},
	{Canonical: "php", Aliases: []string{"php", "laravel", "symfony"}},
	{Canonical: "scala", Aliases: []string{"scala"}},
	{Canonical: "r", Aliases: []string{"r", "r language", "r programming"}},

	// Soft skills, Turkish variants included
	{Canonical: "problem solving", Aliases: []string{"problem solving", "problem çözme", "analitik düşünme"}},
	{Canonical: "teamwork", Aliases: []string{"teamwork", "team work", "takım çalışması", "ekip çalışması"}},
	{Canonical: "communication", Aliases: []string{"communication", "iletişim", "communication skills"}},
	{Canonical: "leadership", Aliases: []string{"leadership", "liderlik", "team lead", "takım liderliği"}},
	{Canonical: "agile", Aliases: []string{"agile", "scrum", "kanban", "çevik metodoloji"}},
}

// Synonyms returns a copy of the synonym table in lookup order.
func Synonyms() []types.SynonymEntry {
	out := make([]types.SynonymEntry, len(synonymTable))
	for i, entry := range synonymTable {
		out[i] = types.SynonymEntry{
			Canonical: entry.Canonical,
			Aliases:   append([]string(nil), entry.Aliases...),
		}
	}
	return out
}

// SynonymMap returns the synonym table keyed by canonical name.
func SynonymMap() map[string][]string {
	out := make(map[string][]string, len(synonymTable))
	for _, entry := range synonymTable {
		out[entry.Canonical] = append([]string(nil), entry.Aliases...)
	}
	return out
}

// TotalAliases returns the number of aliases across all canonical groups.
func TotalAliases() int {
	total := 0
	for _, entry := range synonymTable {
		total += len(entry.Aliases)
	}
	return total
}
