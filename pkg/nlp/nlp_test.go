package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "node js", Normalize("  Node.JS "))
	assert.Equal(t, "c++ and c#", Normalize("C++ and C#"))
	assert.Equal(t, "ci cd", Normalize("CI/CD"))
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Built REST API services, CI/CD pipelines")
	assert.True(t, ContainsPhrase(text, "rest api"))
	assert.True(t, ContainsPhrase(text, "ci cd"))
	assert.False(t, ContainsPhrase(text, "rest apis"))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestSameSkill(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Golang", "Go", true},
		{"go", "golang", true},
		{"Postgres", "PostgreSQL", true},
		{"K8s", "Kubernetes", true},
		{"Node.js", "node", true},
		{"React", "react", true},
		{"React", "Redux", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, SameSkill(tt.a, tt.b))
		})
	}
}
