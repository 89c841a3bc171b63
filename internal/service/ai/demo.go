package ai

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fitai/internal/logger"
)

var (
	challengeKeywords = []string{
		"челлендж", "испытание", "challenge", "недельное", "выносливость",
		"сила", "техника", "consistency", "недельный",
	}
	injuryAnalysisKeywords = []string{
		"анализ риска травм", "анализ риска", "риск травм",
		"травмоопасность", "опасность травм",
	}
	injuryRecommendationKeywords = []string{
		"травм", "болит", "травма", "ограничен",
	}

	targetRepsRe     = regexp.MustCompile(`target_reps[^\d]*(\d+)`)
	targetSetsRe     = regexp.MustCompile(`target_sets[^\d]*(\d+)`)
	targetDurationRe = regexp.MustCompile(`target_duration[^\d]*(\d+)`)
)

const demoGenericResponse = "Я - ИИ помощник для фитнеса. Задайте вопрос о тренировках, питании или здоровье."

// DemoResponse classifies the prompt by keywords and returns a canned
// answer matching the request kind
func DemoResponse(prompt string) string {
	promptLower := strings.ToLower(prompt)

	switch {
	case containsAny(promptLower, challengeKeywords):
		logger.Log.Info("Demo mode: weekly challenge")
		return demoChallenge(prompt)
	case containsAny(promptLower, injuryAnalysisKeywords):
		logger.Log.Info("Demo mode: injury risk analysis")
		return demoInjuryPrediction()
	case containsAny(promptLower, injuryRecommendationKeywords):
		logger.Log.Info("Demo mode: injury recommendations")
		return demoRecommendations()
	case strings.Contains(promptLower, "план тренировок") || strings.Contains(promptLower, "workout"):
		logger.Log.Info("Demo mode: workout plan")
		return demoWorkoutPlan()
	default:
		logger.Log.Info("Demo mode: generic response")
		return demoGenericResponse
	}
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}

func demoWorkoutPlan() string {
	return `ПЛАН ТРЕНИРОВКИ ДЛЯ НАЧИНАЮЩИХ

1. Разминка (10 минут)
- Ходьба на месте: 3 минуты
- Вращения суставов: 4 минуты
- Легкая растяжка: 3 минуты

2. Основная часть (30 минут)
- Приседания: 3 подхода по 12 повторений
- Отжимания с колен: 3 подхода по 8 повторений
- Планка: 3 подхода по 30 секунд
- Выпады: 3 подхода по 10 повторений на каждую ногу

3. Заминка (10 минут)
- Растяжка мышц ног и спины

4. Рекомендации
- Тренируйтесь 3 раза в неделю
- Пейте достаточно воды
- Спите не менее 7 часов`
}

func demoRecommendations() string {
	return `РЕКОМЕНДАЦИИ ПРИ ТРАВМАХ СПИНЫ И КОЛЕНЕЙ

1. Безопасные упражнения
- Плавание: минимальная нагрузка на суставы
- Велотренажер: контролируемая нагрузка на колени
- Упражнения на пресс лежа: без осевой нагрузки на позвоночник

2. Упражнения которых следует избегать
- Приседания со штангой: осевая нагрузка на позвоночник
- Прыжки: ударная нагрузка на колени
- Становая тяга: высокий риск при проблемах со спиной

3. Общие рекомендации
- Начинайте с малых весов
- Следите за техникой выполнения
- Прекращайте упражнение при боли

4. Советы по восстановлению
- Полноценный сон
- Легкая растяжка каждый день
- Консультация с врачом при усилении боли`
}

func demoInjuryPrediction() string {
	return `АНАЛИЗ РИСКА ТРАВМ

1. Уровень риска: Средний
Программа содержит упражнения с умеренной нагрузкой на суставы и позвоночник.

2. Основные факторы риска
- Недостаточная разминка перед силовыми упражнениями
- Возможные нарушения техники при утомлении
- Прогрессия нагрузки без контроля восстановления

3. Рекомендации по снижению риска
- Увеличьте время разминки до 10-15 минут
- Снижайте вес при нарушении техники
- Добавьте день отдыха между силовыми тренировками

4. Альтернативные безопасные упражнения
- Жим ногами вместо приседаний со штангой, меньше осевая нагрузка
- Подтягивания в гравитроне вместо становой тяги, контролируемое движение`
}

func demoChallenge(prompt string) string {
	targetReps := extractMetric(targetRepsRe, prompt, 100)
	targetSets := extractMetric(targetSetsRe, prompt, 5)
	targetDuration := extractMetric(targetDurationRe, prompt, 30)

	dailyReps := targetReps / 7
	perSet := targetReps / (7 * targetSets)
	dailyMinutes := targetDuration / 7

	return fmt.Sprintf(`НЕДЕЛЬНОЕ ИСПЫТАНИЕ: "СИЛА ВОЛИ"

ЦЕЛЬ: Выполнить %d повторений за %d подходов, суммарно %d минут тренировок в неделю

ПЛАН НА НЕДЕЛЮ:
Понедельник: %d повторений, %d подхода
Вторник: %d повторений, %d подхода
Среда: %d повторений, %d подхода
Четверг: %d повторений, %d подхода
Пятница: %d повторений, %d подхода
Суббота: %d повторений, %d подхода
Воскресенье: %d повторений, %d подхода

Ежедневная тренировка по %d минут

КАК ВЫПОЛНЯТЬ:
- Разбейте на подходы: %d подхода по %d повторений
- Отдыхайте между подходами 60-90 секунд
- Следите за техникой

ЦЕЛЕВЫЕ МЕТРИКИ:
- Повторения: %d в неделю
- Подходы: %d в день
- Длительность: %d минут в неделю

НАГРАДА: Улучшение силы на 15%%

СОВЕТ: Выполняйте в удобное время`,
		targetReps, targetSets, targetDuration,
		dailyReps, targetSets,
		dailyReps, targetSets,
		dailyReps, targetSets,
		dailyReps, targetSets,
		dailyReps, targetSets,
		dailyReps, targetSets,
		dailyReps, targetSets,
		dailyMinutes,
		targetSets, perSet,
		targetReps, targetSets, targetDuration)
}

func extractMetric(re *regexp.Regexp, prompt string, defaultValue int) int {
	match := re.FindStringSubmatch(prompt)
	if match == nil {
		return defaultValue
	}
	value, err := strconv.Atoi(match[1])
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
