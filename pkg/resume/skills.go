package resume

import "github.com/artem13815/talent/pkg/nlp"

// Vocabulary is matched when no job skills are supplied.
var Vocabulary = []string{
	"Go", "Python", "Java", "JavaScript", "TypeScript", "React", "Vue", "Angular", "Node",
	"C++", "C#", "Kotlin", "Swift", "SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka",
	"Docker", "Kubernetes", "AWS", "GCP", "Azure", "Terraform", "CI CD", "REST API", "GraphQL",
	"Machine Learning", "Figma", "Product Management", "Agile", "Scrum",
}

// DetectSkills returns the vocabulary entries mentioned in text, aliases
// included, in vocabulary order and without duplicates.
func DetectSkills(text string, vocabulary []string) []string {
	if len(vocabulary) == 0 {
		vocabulary = Vocabulary
	}
	norm := nlp.Normalize(text)
	out := []string{}
	for _, skill := range vocabulary {
		if mentioned(norm, skill) && !contains(out, skill) {
			out = append(out, skill)
		}
	}
	return out
}

func mentioned(normalizedText, skill string) bool {
	for _, v := range nlp.SkillVariants(skill) {
		if nlp.ContainsPhrase(normalizedText, v) {
			return true
		}
	}
	return false
}

func contains(found []string, skill string) bool {
	for _, f := range found {
		if nlp.SameSkill(f, skill) {
			return true
		}
	}
	return false
}
