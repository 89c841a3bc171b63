package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemoResponseClassification(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{"challenge", "Создай недельное испытание на выносливость", "НЕДЕЛЬНОЕ ИСПЫТАНИЕ"},
		{"injury analysis", "Проведи анализ риска травм для программы", "АНАЛИЗ РИСКА ТРАВМ"},
		{"injury recommendations", "У меня болит спина, что делать", "РЕКОМЕНДАЦИИ ПРИ ТРАВМАХ"},
		{"workout plan", "Составь план тренировок для новичка", "ПЛАН ТРЕНИРОВКИ"},
		{"generic", "Что ты умеешь?", "ИИ помощник"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, DemoResponse(tt.prompt), tt.expected)
		})
	}
}

func TestDemoChallengeParsesTargets(t *testing.T) {
	prompt := "Создай челлендж. target_reps: 140, target_sets: 4, target_duration: 70"
	response := DemoResponse(prompt)

	assert.Contains(t, response, "Выполнить 140 повторений за 4 подходов")
	assert.Contains(t, response, "70 минут тренировок в неделю")
	// 140 reps over 7 days.
	assert.Contains(t, response, "Понедельник: 20 повторений")
	// 70 minutes over 7 days.
	assert.Contains(t, response, "Ежедневная тренировка по 10 минут")
}

func TestDemoChallengeDefaults(t *testing.T) {
	response := DemoResponse("Создай недельный челлендж")

	assert.Contains(t, response, "Выполнить 100 повторений за 5 подходов")
	assert.Contains(t, response, "30 минут тренировок")
}

func TestDemoChallengeIgnoresInvalidTargets(t *testing.T) {
	response := DemoResponse("челлендж target_reps: ноль")
	assert.Contains(t, response, "Выполнить 100 повторений")
}
