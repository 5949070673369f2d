package llmgen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/talent/pkg/ai"
)

type chatMock struct{ mock.Mock }

func (m *chatMock) Ask(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

func fixedNow() time.Time { return time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC) }

func TestInterviewQuestionsExtractsFencedJSON(t *testing.T) {
	m := &chatMock{}
	m.On("Ask", mock.Anything, mock.Anything, mock.MatchedBy(func(u string) bool {
		return strings.Contains(u, "React, Go") && strings.Contains(u, "Generate 2 technical")
	})).Return("Here you go:\n```json\n[{\"category\":\"Technical\",\"question\":\"Q\",\"difficulty\":\"Hard\",\"follow_up\":\"F\",\"evaluation_criteria\":[\"x\"]}]\n```", nil)

	qs, err := New(m, fixedNow).InterviewQuestions(context.Background(), ai.QuestionsRequest{
		CandidateProfile: ai.CandidateProfile{Skills: []string{"React", "Go"}},
		InterviewType:    "technical",
		DifficultyLevel:  "senior",
		NumQuestions:     2,
	})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Hard", qs[0].Difficulty)
	m.AssertExpectations(t)
}

func TestMarketAnalysisRejectsGarbage(t *testing.T) {
	m := &chatMock{}
	m.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return("I cannot help with that", nil).Once()
	m.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return(`{"trends":[]}`, nil).Once()

	g := New(m, fixedNow)
	_, err := g.MarketAnalysis(context.Background(), ai.MarketAnalysisRequest{JobTitle: "x"})
	assert.ErrorIs(t, err, ErrUnparsable)
	_, err = g.MarketAnalysis(context.Background(), ai.MarketAnalysisRequest{JobTitle: "x"})
	assert.ErrorIs(t, err, ErrUnparsable)
}

func TestTextGenerators(t *testing.T) {
	m := &chatMock{}
	m.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return("  Dear Ada,\nWelcome.  ", nil).Once()
	m.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota")).Once()

	g := New(m, fixedNow)
	letter, err := g.OfferLetter(context.Background(), ai.OfferLetterRequest{CandidateInfo: ai.CandidateProfile{Name: "Ada"}})
	require.NoError(t, err)
	assert.Equal(t, "Dear Ada,\nWelcome.", letter.Content)
	assert.Equal(t, "2024-01-20T10:00:00Z", letter.GeneratedAt)
	assert.False(t, letter.Fallback)

	_, err = g.JobDescription(context.Background(), ai.JobDescriptionRequest{JobTitle: "x"})
	assert.EqualError(t, err, "quota")
}
