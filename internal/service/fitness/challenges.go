package fitness

import (
	"context"
	"fmt"

	"fitai/internal/repository/db"
	"fitai/internal/service/ai"
)

// ChallengeRequest describes the weekly challenge to generate. Target
// fields are optional.
type ChallengeRequest struct {
	WeekNumber     int    `json:"week_number"`
	ChallengeType  string `json:"challenge_type"`
	TargetReps     *int   `json:"target_reps,omitempty"`
	TargetSets     *int   `json:"target_sets,omitempty"`
	TargetDuration *int   `json:"target_duration,omitempty"`
}

func (r ChallengeRequest) targetMetrics() map[string]int {
	metrics := make(map[string]int)
	if r.TargetReps != nil {
		metrics["target_reps"] = *r.TargetReps
	}
	if r.TargetSets != nil {
		metrics["target_sets"] = *r.TargetSets
	}
	if r.TargetDuration != nil {
		metrics["target_duration"] = *r.TargetDuration
	}
	return metrics
}

// ListChallenges returns a page of the user's challenges
func (s *Service) ListChallenges(userID int64, skip, limit int) ([]db.WeeklyChallenge, error) {
	return s.db.GetWeeklyChallengesByUser(userID, skip, limit)
}

// GetChallengeForWeek returns the user's challenge for the given week
func (s *Service) GetChallengeForWeek(userID int64, weekNumber int) (*db.WeeklyChallenge, error) {
	return s.db.GetWeeklyChallengeForWeek(userID, weekNumber)
}

// CreateChallenge generates a challenge through the gateway and stores it
func (s *Service) CreateChallenge(ctx context.Context, userID int64, req ChallengeRequest) (*db.WeeklyChallenge, error) {
	metrics := req.targetMetrics()
	prompt := ai.ChallengePrompt(req.ChallengeType, metrics)
	resp := s.gateway.Request(ctx, prompt)

	challenge, err := s.db.CreateWeeklyChallenge(db.CreateWeeklyChallengeParams{
		UserID:               userID,
		AIGeneratedChallenge: resp.Text,
		WeekNumber:           req.WeekNumber,
		ChallengeType:        req.ChallengeType,
		TargetMetrics:        metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store challenge: %w", err)
	}

	s.recordInteraction(userID, "weekly_challenge", req.ChallengeType, prompt, resp)
	return challenge, nil
}

func (s *Service) ownedChallenge(userID, challengeID int64) (*db.WeeklyChallenge, error) {
	challenge, err := s.db.GetWeeklyChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.UserID != userID {
		return nil, db.ErrNotFound
	}
	return challenge, nil
}

// UpdateChallenge applies a status update to a challenge owned by the user
func (s *Service) UpdateChallenge(userID, challengeID int64, update db.WeeklyChallengeUpdate) (*db.WeeklyChallenge, error) {
	if _, err := s.ownedChallenge(userID, challengeID); err != nil {
		return nil, err
	}
	return s.db.UpdateWeeklyChallenge(challengeID, update)
}

// CompleteChallenge marks a challenge done with a completion timestamp
func (s *Service) CompleteChallenge(userID, challengeID int64) (*db.WeeklyChallenge, error) {
	if _, err := s.ownedChallenge(userID, challengeID); err != nil {
		return nil, err
	}
	return s.db.MarkWeeklyChallengeCompleted(challengeID)
}

// DeleteChallenge removes a challenge owned by the user
func (s *Service) DeleteChallenge(userID, challengeID int64) error {
	if _, err := s.ownedChallenge(userID, challengeID); err != nil {
		return err
	}
	return s.db.DeleteWeeklyChallenge(challengeID)
}
