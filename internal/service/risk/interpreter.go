// Package risk extracts structured risk assessments from free-form
// model responses.
package risk

import (
	"regexp"
	"strings"

	"fitai/internal/logger"

	"github.com/sirupsen/logrus"
)

// Risk levels stored with predictions
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Interpreter turns a raw model response into structured fields
type Interpreter interface {
	ExtractRiskLevel(response string) string
	ExtractRecommendations(response string) string
}

// HeuristicInterpreter parses responses with layered pattern matching.
// Models do not always honor the requested format, so each layer covers
// a looser shape than the previous one.
type HeuristicInterpreter struct{}

// NewHeuristicInterpreter returns the default interpreter
func NewHeuristicInterpreter() *HeuristicInterpreter {
	return &HeuristicInterpreter{}
}

var labeledRiskPatterns = []*regexp.Regexp{
	// 1. Уровень риска: Высокий
	regexp.MustCompile(`1\.\s*уровень\s+риска\s*[:\-]\s*(низкий|средний|высокий)`),
	// ### 1. Уровень риска: Высокий
	regexp.MustCompile(`#+\s*1\.\s*уровень\s+риска\s*[:\-]\s*(низкий|средний|высокий)`),
	// Уровень риска: Высокий
	regexp.MustCompile(`уровень\s+риска\s*[:\-]\s*(низкий|средний|высокий)`),
	// Риск: Высокий
	regexp.MustCompile(`риск\s*[:\-]\s*(низкий|средний|высокий)`),
	// **Уровень риска:** Высокий
	regexp.MustCompile(`\*\*уровень\s+риска:\*\*\s*(низкий|средний|высокий)`),
	// риск — высокий
	regexp.MustCompile(`(?:риск|опасность|уровень)\s+—\s*(низкий|средний|высокий)`),
	// English fallbacks
	regexp.MustCompile(`1\.\s*risk\s+level\s*[:\-]\s*(low|medium|high)`),
	regexp.MustCompile(`risk\s+level\s*[:\-]\s*(low|medium|high)`),
}

var highRiskPhrases = []string{
	"риск высокий", "высокий риск", "опасность высокая",
	"high risk", "risk is high",
}

func normalizeRiskWord(word string) string {
	switch word {
	case "низкий", "low":
		return LevelLow
	case "средний", "medium":
		return LevelMedium
	case "высокий", "high":
		return LevelHigh
	}
	return ""
}

// ExtractRiskLevel determines the risk level stated in the response,
// falling back to "medium" when nothing definite is found
func (h *HeuristicInterpreter) ExtractRiskLevel(response string) string {
	if response == "" {
		return LevelMedium
	}
	textLower := strings.ToLower(response)

	// Layer 1: labeled patterns matching the requested response format
	for _, pattern := range labeledRiskPatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			if level := normalizeRiskWord(match[1]); level != "" {
				logger.Log.WithFields(logrus.Fields{"level": level}).Debug("Risk level found by labeled pattern")
				return level
			}
		}
	}

	// Layer 2: risk word next to a context word in the first ten lines
	lines := strings.Split(textLower, "\n")
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(line, "высокий") && containsAnyWord(line, "риск", "уровень", "опасность"):
			return LevelHigh
		case strings.Contains(line, "средний") && containsAnyWord(line, "риск", "уровень"):
			return LevelMedium
		case strings.Contains(line, "низкий") && containsAnyWord(line, "риск", "уровень"):
			return LevelLow
		}
	}

	// Layer 3: whole-text frequency, strict majority only
	highCount := strings.Count(textLower, "высокий") + strings.Count(textLower, "high")
	mediumCount := strings.Count(textLower, "средний") + strings.Count(textLower, "medium")
	lowCount := strings.Count(textLower, "низкий") + strings.Count(textLower, "low")

	switch {
	case highCount > mediumCount && highCount > lowCount:
		return LevelHigh
	case mediumCount > highCount && mediumCount > lowCount:
		return LevelMedium
	case lowCount > highCount && lowCount > mediumCount:
		return LevelLow
	}

	// Layer 4: fixed high-risk phrases
	for _, phrase := range highRiskPhrases {
		if strings.Contains(textLower, phrase) {
			return LevelHigh
		}
	}

	logger.Log.Debug("Risk level not found in response, defaulting to medium")
	return LevelMedium
}

func containsAnyWord(line string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(line, word) {
			return true
		}
	}
	return false
}

var recommendationHeaders = []string{
	"рекомендации:", "советы:", "советы по снижению риска:",
	"рекомендации по снижению риска:", "что делать:", "как снизить риск:",
}

var headingPrefixes = []string{"#", "**", "###", "---", "=="}

func isHeadingLine(line string) bool {
	for _, prefix := range headingPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// ExtractRecommendations pulls the recommendations section out of the
// response. Returns "" when no recognizable section exists.
func (h *HeuristicInterpreter) ExtractRecommendations(response string) string {
	if response == "" {
		return ""
	}

	lines := strings.Split(response, "\n")
	start := -1
	for i, line := range lines {
		lineLower := strings.ToLower(strings.TrimSpace(line))
		for _, header := range recommendationHeaders {
			if strings.Contains(lineLower, header) {
				start = i
				break
			}
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return ""
	}

	var result []string
	rest := lines[start+1:]
	if len(rest) > 9 {
		rest = rest[:9]
	}
	for _, line := range rest {
		stripped := strings.TrimSpace(line)
		if stripped != "" && !isHeadingLine(stripped) {
			result = append(result, stripped)
		} else if len(result) > 0 && isHeadingLine(stripped) {
			break
		}
	}
	return strings.Join(result, "\n")
}
