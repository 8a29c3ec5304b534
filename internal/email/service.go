package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"pledgefit/internal/logger"
	"pledgefit/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const queueKey = "notifications"

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.send(ctx, "generic", to, name, subject, body)
}

func (s *Service) send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := EmailJob{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		return err
	}

	metrics.EmailQueueLength.Inc()
	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	metrics.EmailQueueLength.Dec()

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			metrics.EmailQueueLength.Inc()
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after 3 attempts", job.To)
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), queueKey+":failed", data)
	metrics.RecordEmail(job.Type, "failed")
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendWorkoutLogged(ctx context.Context, email, name, workoutTitle string, weekNumber int, loggedAt time.Time) error {
	subject := "Workout Logged - " + workoutTitle
	body := fmt.Sprintf(`Hi %s,

Nice work! Your workout is in the books.

Workout: %s
Week: %d
Logged: %s

Next session unlocks in 18 hours.

- PledgeFit`, name, workoutTitle, weekNumber, loggedAt.Format("Jan 2, 2006 at 3:04 PM"))

	return s.send(ctx, "workout_logged", email, name, subject, body)
}

func (s *Service) SendRefundProcessed(ctx context.Context, email, name string, amountCents int64) error {
	subject := "Your Pledge Refund Is On Its Way"
	body := fmt.Sprintf(`Hi %s,

You did it. You stayed on track for the full program and your pledge of $%.2f is being refunded in full.

- PledgeFit`, name, float64(amountCents)/100)

	return s.send(ctx, "refund_processed", email, name, subject, body)
}

func (s *Service) SendPledgeForfeited(ctx context.Context, email, name string, amountCents int64, lostAtWeek int) error {
	subject := "Program Complete - Pledge Outcome"
	body := fmt.Sprintf(`Hi %s,

Your program has ended. Refund eligibility was lost in week %d after two missed weeks in a row, so your pledge of $%.2f will not be refunded.

Your workout history stays available in the app.

- PledgeFit`, name, lostAtWeek, float64(amountCents)/100)

	return s.send(ctx, "pledge_forfeited", email, name, subject, body)
}

func (s *Service) SendEligibilityLost(ctx context.Context, email, name string, lostAtWeek int) error {
	subject := "Refund Eligibility Lost"
	body := fmt.Sprintf(`Hi %s,

Two missed weeks in a row means your pledge can no longer be refunded. Eligibility was lost in week %d.

The program itself keeps going. Finish it for you, not the money.

- PledgeFit`, name, lostAtWeek)

	return s.send(ctx, "eligibility_lost", email, name, subject, body)
}
