package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tti-backend/internal/models"
	"tti-backend/internal/repository"
	"tti-backend/internal/services"
)

// Pool drains queue:notifications. Jobs are side effects of payment and quiz
// events: confirmation emails and per-user websocket pushes. Handlers run at
// most once per job thanks to a Redis lock keyed on the job ID.
type Pool struct {
	redis       *redis.Client
	pubsub      *redis.Client
	email       *services.EmailService
	userRepo    *repository.UserRepo
	courseRepo  *repository.CourseRepo
	workerCount int
	stopChan    chan struct{}
}

func NewPool(
	redisClient *redis.Client,
	pubsubClient *redis.Client,
	email *services.EmailService,
	userRepo *repository.UserRepo,
	courseRepo *repository.CourseRepo,
	workerCount int,
) *Pool {
	return &Pool{
		redis:       redisClient,
		pubsub:      pubsubClient,
		email:       email,
		userRepo:    userRepo,
		courseRepo:  courseRepo,
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		go p.worker(i)
	}

	log.Printf("Started %d worker goroutines", p.workerCount)
}

func (p *Pool) Stop() {
	close(p.stopChan)
}

func (p *Pool) worker(id int) {
	for {
		select {
		case <-p.stopChan:
			log.Printf("Worker %d shutting down", id)
			return
		default:
		}

		ctx := context.Background()

		// BLPOP with 30s timeout
		result, err := p.redis.BLPop(ctx, 30*time.Second, "queue:notifications").Result()
		if err != nil {
			continue // Timeout or error, retry
		}

		if len(result) < 2 {
			continue
		}

		var job models.NotificationJob
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			log.Printf("Worker %d: failed to parse job: %v", id, err)
			continue
		}

		// Try to acquire lock
		lockKey := fmt.Sprintf("job_lock:%s", job.ID.String())
		locked, err := p.redis.SetNX(ctx, lockKey, "1", 10*time.Minute).Result()
		if err != nil || !locked {
			continue // Another worker has this job
		}

		log.Printf("Worker %d: processing notification %s (type: %s)", id, job.ID, job.Type)

		var processErr error
		switch job.Type {
		case "enrollment-paid":
			processErr = p.processEnrollmentPaid(ctx, &job)
		case "quiz-passed":
			processErr = p.processQuizPassed(ctx, &job)
		default:
			processErr = fmt.Errorf("unknown notification type: %s", job.Type)
		}

		if processErr != nil {
			log.Printf("Worker %d: notification %s failed: %v", id, job.ID, processErr)
		}

		p.redis.Del(ctx, lockKey)
	}
}

func (p *Pool) processEnrollmentPaid(ctx context.Context, job *models.NotificationJob) error {
	user, err := p.userRepo.GetByID(ctx, job.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	course, err := p.courseRepo.GetByID(ctx, job.CourseID)
	if err != nil {
		return fmt.Errorf("failed to load course: %w", err)
	}

	if err := p.email.SendEnrollmentConfirmation(user.Email, user.Name, course.Title); err != nil {
		log.Printf("Failed to send enrollment confirmation to %s: %v", user.Email, err)
	}

	p.publish(ctx, job.UserID, models.WSMessage{
		Type: "enrollment_confirmed",
		Payload: models.EnrollmentEvent{
			CourseID:    course.ID,
			CourseTitle: course.Title,
		},
	})
	return nil
}

func (p *Pool) processQuizPassed(ctx context.Context, job *models.NotificationJob) error {
	p.publish(ctx, job.UserID, models.WSMessage{
		Type: "module_completed",
		Payload: models.ModuleEvent{
			CourseID:     job.CourseID,
			ModuleNumber: job.ModuleNumber,
		},
	})

	if job.NextUnlocked > 0 {
		p.publish(ctx, job.UserID, models.WSMessage{
			Type: "module_unlocked",
			Payload: models.ModuleEvent{
				CourseID:     job.CourseID,
				ModuleNumber: job.NextUnlocked,
			},
		})
	}
	return nil
}

func (p *Pool) publish(ctx context.Context, userID uuid.UUID, msg models.WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	channel := "user_updates:" + userID.String()
	if err := p.pubsub.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("Failed to publish %s to %s: %v", msg.Type, channel, err)
	}
}
