package workoutlog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pledgefit/internal/adherence"
	"pledgefit/internal/email"
	"pledgefit/internal/logger"
	"pledgefit/internal/metrics"
	"pledgefit/internal/pledge"
	"pledgefit/internal/subscription"
	"pledgefit/internal/user"
	"pledgefit/internal/workout"
)

var (
	ErrUnknownWorkout     = errors.New("unknown workout")
	ErrProgramNotComplete = errors.New("program has not finished yet")
	ErrAlreadySettled     = errors.New("subscription already settled")
)

// Service is the adherence engine. Every operation takes the server clock
// as an explicit parameter; nothing here reads time.Now, so the same logic
// is used by handlers and replayed verbatim in tests.
type Service interface {
	RequestWorkoutLog(ctx context.Context, userID, workoutID int, now time.Time) (*WorkoutLog, error)
	GetCooldownStatus(ctx context.Context, userID int, now time.Time) (adherence.Window, error)
	GetCurrentWeekStatus(ctx context.Context, userID int, now time.Time) (*WeekStatus, error)
	GetEligibility(ctx context.Context, userID int, now time.Time) (*adherence.Eligibility, error)
	Settle(ctx context.Context, subscriptionID int, now time.Time) (*SettlementResult, error)
}

type service struct {
	logRepo      Repository
	subRepo      subscription.Repository
	workoutRepo  workout.Repository
	userRepo     user.Repository
	pledgeRepo   pledge.Repository
	emailService *email.Service
}

func NewService(
	logRepo Repository,
	subRepo subscription.Repository,
	workoutRepo workout.Repository,
	userRepo user.Repository,
	pledgeRepo pledge.Repository,
	emailService *email.Service,
) Service {
	return &service{
		logRepo:      logRepo,
		subRepo:      subRepo,
		workoutRepo:  workoutRepo,
		userRepo:     userRepo,
		pledgeRepo:   pledgeRepo,
		emailService: emailService,
	}
}

func (s *service) RequestWorkoutLog(ctx context.Context, userID, workoutID int, now time.Time) (*WorkoutLog, error) {
	w, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, workout.ErrWorkoutNotFound) {
			return nil, ErrUnknownWorkout
		}
		return nil, err
	}

	log, err := s.logRepo.CreateLog(ctx, userID, workoutID, now)
	if err != nil {
		var cooldownErr *CooldownActiveError
		if errors.As(err, &cooldownErr) {
			metrics.RecordCooldownRejection()
		}
		return nil, err
	}

	metrics.RecordWorkoutLog()

	// Confirmation is best effort; a queue hiccup must not fail the log.
	u, _ := s.userRepo.FindByID(ctx, userID)
	if u != nil {
		s.emailService.SendWorkoutLogged(ctx, u.Email, u.Name, w.Title, log.WeekNumber, log.LoggedAt)
	}

	return log, nil
}

func (s *service) GetCooldownStatus(ctx context.Context, userID int, now time.Time) (adherence.Window, error) {
	last, err := s.logRepo.GetLastLog(ctx, userID)
	if err != nil {
		return adherence.Window{}, err
	}

	var lastLogAt *time.Time
	if last != nil {
		lastLogAt = &last.LoggedAt
	}

	return adherence.EvaluateCooldown(lastLogAt, now), nil
}

func (s *service) GetCurrentWeekStatus(ctx context.Context, userID int, now time.Time) (*WeekStatus, error) {
	sub, err := s.subRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotSubscribed
		}
		return nil, err
	}

	weekNumber, weekEndsAt := subscription.CurrentWeek(sub.ActivatedAt, now, sub.ProgramWeeks)
	variation := subscription.Variation(weekNumber)

	workouts, err := s.workoutRepo.ListByVariation(ctx, variation, sub.RequiredPerWeek)
	if err != nil {
		return nil, err
	}

	windowStart, windowEnd := subscription.WeekWindow(sub.ActivatedAt, weekNumber)
	logs, err := s.logRepo.ListInWindow(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	window, err := s.GetCooldownStatus(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &WeekStatus{
		WeekNumber:     weekNumber,
		Variation:      variation,
		WeekEndsAt:     weekEndsAt,
		CooldownActive: window.Active,
		HoursRemaining: window.HoursRemaining,
		UnlocksAt:      window.UnlocksAt,
		AmountPaid:     sub.PledgeCents,
		Workouts:       buildWorkoutViews(workouts, logs),
	}, nil
}

func (s *service) GetEligibility(ctx context.Context, userID int, now time.Time) (*adherence.Eligibility, error) {
	sub, err := s.subRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotSubscribed
		}
		return nil, err
	}

	return s.buildEligibility(ctx, sub, now)
}

// buildEligibility reconstructs the full week history from the log store
// and replays it. Nothing incremental is trusted: a retried request or a
// backfilled log changes the counts, and the replay picks that up.
func (s *service) buildEligibility(ctx context.Context, sub *subscription.Subscription, now time.Time) (*adherence.Eligibility, error) {
	lastElapsed := subscription.LastElapsedWeek(sub.ActivatedAt, now, sub.ProgramWeeks)

	history := make([]adherence.WeekRecord, 0, lastElapsed)
	for week := 1; week <= lastElapsed; week++ {
		start, end := subscription.WeekWindow(sub.ActivatedAt, week)
		count, err := s.logRepo.CountInWindow(ctx, sub.UserID, start, end)
		if err != nil {
			return nil, err
		}
		history = append(history, adherence.WeekRecord{
			WeekNumber:     week,
			WindowStart:    start,
			WindowEnd:      end,
			CompletedCount: count,
			Required:       sub.RequiredPerWeek,
		})
	}

	state := adherence.EvaluateAdherence(history, sub.GraceWeeks)
	if !state.RefundEligible {
		s.noteEligibilityLoss(ctx, sub, &state)
	}
	return &state, nil
}

// noteEligibilityLoss fires the one-time loss notice. The guarded update in
// the repository picks a single winner among concurrent observers; nothing
// here fails the read that triggered it.
func (s *service) noteEligibilityLoss(ctx context.Context, sub *subscription.Subscription, state *adherence.Eligibility) {
	first, err := s.subRepo.MarkEligibilityLossNotified(ctx, sub.ID)
	if err != nil {
		logger.Errorf("Failed to mark eligibility loss for subscription %d: %v", sub.ID, err)
		return
	}
	if !first {
		return
	}

	metrics.RecordEligibilityLoss()
	logger.Info("Refund eligibility lost",
		"subscription_id", sub.ID,
		"user_id", sub.UserID,
		"lost_at_week", state.LostAtWeek,
	)

	u, _ := s.userRepo.FindByID(ctx, sub.UserID)
	if u != nil {
		s.emailService.SendEligibilityLost(ctx, u.Email, u.Name, state.LostAtWeek)
	}
}

func (s *service) Settle(ctx context.Context, subscriptionID int, now time.Time) (*SettlementResult, error) {
	sub, err := s.subRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	// completed means an earlier attempt moved the status but died before
	// finishing the pledge write. Settlement resumes from there; the pledge
	// repository refuses a second settlement row, so the balance cannot
	// move twice.
	switch sub.Status {
	case subscription.StatusActive, subscription.StatusCompleted:
	default:
		return nil, ErrAlreadySettled
	}

	if !subscription.ProgramComplete(sub.ActivatedAt, now, sub.ProgramWeeks) {
		return nil, ErrProgramNotComplete
	}

	state, err := s.buildEligibility(ctx, sub, now)
	if err != nil {
		return nil, err
	}

	if sub.Status == subscription.StatusActive {
		if err := s.subRepo.TransitionStatus(ctx, sub.ID, subscription.StatusActive, subscription.StatusCompleted); err != nil {
			return nil, err
		}
	}

	outcome := OutcomeForfeited
	txType := pledge.TxForfeit
	finalStatus := subscription.StatusForfeited
	if state.RefundEligible {
		outcome = OutcomeRefunded
		txType = pledge.TxRefund
		finalStatus = subscription.StatusRefunded
	}

	if err := s.pledgeRepo.AddSettlement(ctx, sub.UserID, -sub.PledgeCents, txType); err != nil {
		logger.Errorf("Failed to settle pledge for subscription %d: %v", sub.ID, err)
		return nil, err
	}

	if err := s.subRepo.TransitionStatus(ctx, sub.ID, subscription.StatusCompleted, finalStatus); err != nil {
		return nil, err
	}

	logger.Info("Subscription settled",
		"subscription_id", sub.ID,
		"user_id", sub.UserID,
		"outcome", string(outcome),
	)
	metrics.RecordSettlement(string(outcome))

	u, _ := s.userRepo.FindByID(ctx, sub.UserID)
	if u != nil {
		if outcome == OutcomeRefunded {
			s.emailService.SendRefundProcessed(ctx, u.Email, u.Name, sub.PledgeCents)
		} else {
			s.emailService.SendPledgeForfeited(ctx, u.Email, u.Name, sub.PledgeCents, state.LostAtWeek)
		}
	}

	return &SettlementResult{
		SubscriptionID: sub.ID,
		Outcome:        outcome,
		AmountCents:    sub.PledgeCents,
		Eligibility:    *state,
	}, nil
}
