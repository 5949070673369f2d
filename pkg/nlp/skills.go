package nlp

// aliases maps a normalized skill onto the spellings recruiters use for it.
var aliases = map[string][]string{
	"postgres":   {"postgresql"},
	"postgresql": {"postgres"},
	"k8s":        {"kubernetes"},
	"kubernetes": {"k8s"},
	"golang":     {"go"},
	"go":         {"golang"},
	"js":         {"javascript"},
	"javascript": {"js"},
	"ts":         {"typescript"},
	"typescript": {"ts"},
	"node":       {"node js", "nodejs"},
	"node js":    {"node", "nodejs"},
	"nodejs":     {"node", "node js"},
	"rest":       {"rest api"},
	"rest api":   {"rest"},
	"ci cd":      {"cicd"},
	"cicd":       {"ci cd"},
	"aws":        {"amazon web services"},
	"gcp":        {"google cloud"},
	"ml":         {"machine learning"},
}

// SkillVariants returns the normalized skill followed by its aliases.
func SkillVariants(skill string) []string {
	base := Normalize(skill)
	if base == "" {
		return []string{}
	}
	out := []string{base}
	seen := map[string]struct{}{base: {}}
	for _, a := range aliases[base] {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// SameSkill reports whether a and b name the same skill, aliases included.
func SameSkill(a, b string) bool {
	nb := Normalize(b)
	if nb == "" {
		return false
	}
	for _, v := range SkillVariants(a) {
		if v == nb {
			return true
		}
	}
	return false
}
