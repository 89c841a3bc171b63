package ai

import (
	"fmt"
	"strings"
)

const plainTextConstraint = `ВАЖНОЕ ОГРАНИЧЕНИЕ: НЕ используй таблицы, символы звездочек (*), маркдаун или другие форматирования.
Используй только обычный текст с нумерованными и буквенными списками.`

// WorkoutPlanPrompt builds a trainer prompt for plan generation
func WorkoutPlanPrompt(userRequest, planType, difficulty string, durationMinutes int) string {
	return fmt.Sprintf(`Ты - профессиональный фитнес-тренер. Создай подробный план тренировки.

ЗАПРОС ПОЛЬЗОВАТЕЛЯ: %s

ТИП ТРЕНИРОВКИ: %s
СЛОЖНОСТЬ: %s
ДЛИТЕЛЬНОСТЬ: %d минут

Структура плана:
1. Разминка (упражнения и время)
2. Основная часть (упражнения, подходы, повторения, техника)
3. Заминка (растяжка)
4. Рекомендации (частота, питание, восстановление)

Учитывай тип тренировки, сложность и длительность при составлении плана.
Будь конкретен и мотивирующ.

%s`, userRequest, planType, difficulty, durationMinutes, plainTextConstraint)
}

// RecommendationsPrompt builds a sports doctor prompt for users with
// injuries or limitations
func RecommendationsPrompt(combinedRequest string) string {
	return fmt.Sprintf(`Ты - спортивный врач. Пользователь сообщает о следующих ограничениях: %s

Предоставь:
1. Безопасные упражнения (с объяснением почему они безопасны)
2. Упражнения которых следует избегать (и почему)
3. Общие рекомендации по тренировкам
4. Советы по восстановлению и профилактике

Будь профессиональным и заботливым.

%s`, combinedRequest, plainTextConstraint)
}

// ChallengePrompt builds a coach prompt for weekly challenge generation.
// Target metrics, when present, are spelled out so the model cannot
// ignore them.
func ChallengePrompt(challengeType string, targetMetrics map[string]int) string {
	var parts []string
	if v, ok := targetMetrics["target_reps"]; ok && v > 0 {
		parts = append(parts, fmt.Sprintf("Цель по повторениям: %d", v))
	}
	if v, ok := targetMetrics["target_sets"]; ok && v > 0 {
		parts = append(parts, fmt.Sprintf("Цель по подходам: %d", v))
	}
	if v, ok := targetMetrics["target_duration"]; ok && v > 0 {
		parts = append(parts, fmt.Sprintf("Цель по длительности (мин): %d", v))
	}
	metricsStr := ""
	if len(parts) > 0 {
		metricsStr = " " + strings.Join(parts, ", ") + "."
	}

	return fmt.Sprintf(`Ты - мотивационный фитнес-коуч. Создай увлекательное недельное испытание.

ТИП ИСПЫТАНИЯ: %s
%s

ВАЖНО: Ты ОБЯЗАН использовать эти цели в своем ответе. Не игнорируй их!
Включи в свой план конкретные цифры: количество повторений, подходов и минут тренировки, соответствующие целям пользователя.

Структура испытания:
1. Название и цель
2. План на каждый день недели (с указанием количества повторений, подходов и времени)
3. Советы по выполнению
4. Ожидаемые результаты

Сделай испытание достижимым но challenging.`, challengeType, metricsStr)
}

// InjuryAnalysisPrompt builds a strict-format prompt for risk analysis.
// The format instructions let the response parser find the risk level on
// a known line.
func InjuryAnalysisPrompt(planExercises, userExercises, userRiskFactors string) string {
	var descriptionParts []string
	if planExercises != "" {
		descriptionParts = append(descriptionParts, "План тренировок: "+planExercises)
	}
	if userExercises != "" {
		descriptionParts = append(descriptionParts, "Описание упражнений от пользователя: "+userExercises)
	}
	if userRiskFactors != "" {
		descriptionParts = append(descriptionParts, "Факторы риска от пользователя: "+userRiskFactors)
	}
	fullDescription := strings.Join(descriptionParts, "\n")

	return fmt.Sprintf(`Ты - спортивный врач и специалист по фитнесу. Проанализируй риск травмы на основе предоставленных данных.

ДАННЫЕ ДЛЯ АНАЛИЗА:
%s

СТРОГО ВОЗВРАЩАЙ ОТВЕТ В СЛЕДУЮЩЕМ ФОРМАТЕ:

1. Уровень риска: [ВСТАВЬТЕ ЗДЕСЬ: Низкий/Средний/Высокий]
Объяснение уровня риска в 1-2 предложениях.

2. Основные факторы риска
- Фактор 1
- Фактор 2
- Фактор 3

3. Рекомендации по снижению риска
- Рекомендация 1
- Рекомендация 2
- Рекомендация 3

4. Альтернативные безопасные упражнения
- Упражнение 1 и почему оно безопаснее
- Упражнение 2 и почему оно безопаснее

ВАЖНО:
1. Первой строкой после заголовка "1. Уровень риска:" ДОЛЖНО БЫТЬ только одно слово: "Низкий", "Средний" или "Высокий"
2. НЕ используй символы решетки (#), звездочки (*), таблицы или маркдаун-форматирование
3. Используй только обычные цифры с точками для нумерации и дефисы для списков
4. Будь конкретным и профессиональным
5. Учитывай факторы риска пользователя`, fullDescription)
}
