package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"

	"tti-backend/internal/models"
	"tti-backend/internal/repository"
)

const notificationQueue = "queue:notifications"

// CheckoutService drives the Stripe payment flow: it opens checkout sessions
// for course enrollment and settles them from the webhook or the status
// poller, whichever arrives first.
type CheckoutService struct {
	courseRepo     *repository.CourseRepo
	enrollmentRepo *repository.EnrollmentRepo
	paymentRepo    *repository.PaymentRepo
	queue          *redis.Client
	webhookSecret  string
}

func NewCheckoutService(
	apiKey, webhookSecret string,
	courseRepo *repository.CourseRepo,
	enrollmentRepo *repository.EnrollmentRepo,
	paymentRepo *repository.PaymentRepo,
	queue *redis.Client,
) *CheckoutService {
	stripe.Key = apiKey
	return &CheckoutService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		paymentRepo:    paymentRepo,
		queue:          queue,
		webhookSecret:  webhookSecret,
	}
}

type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type PaymentStatus struct {
	SessionID     string    `json:"session_id"`
	PaymentStatus string    `json:"payment_status"`
	CourseID      uuid.UUID `json:"course_id"`
}

// CreateSession opens a Stripe checkout session for a course and records a
// pending enrollment plus an initiated transaction against it.
func (s *CheckoutService) CreateSession(ctx context.Context, user *models.User, courseID uuid.UUID, originURL string) (*CheckoutSession, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Course not found"}
		}
		return nil, err
	}
	if course.IsComingSoon {
		return nil, &ValidationError{Fields: map[string]string{
			"course_id": "Course is not yet open for enrollment"}}
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, user.ID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, &ConflictError{Message: "Already enrolled in this course"}
	}

	// Stripe wants the smallest currency unit; price and equipment fee are
	// charged together.
	amount := int64((course.Price + course.EquipmentFee) * 100)

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(user.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("inr"),
				UnitAmount: stripe.Int64(amount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(course.Title),
					Description: stripe.String(course.Description),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(originURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(originURL + "/payment-cancelled"),
	}
	params.AddMetadata("user_id", user.ID.String())
	params.AddMetadata("course_id", courseID.String())

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	enrollment := &models.Enrollment{
		UserID:        user.ID,
		CourseID:      courseID,
		PaymentStatus: "pending",
		SessionID:     &sess.ID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	txn := &models.PaymentTransaction{
		ID:            uuid.New(),
		SessionID:     sess.ID,
		UserID:        user.ID,
		UserEmail:     user.Email,
		CourseID:      courseID,
		Amount:        float64(amount) / 100,
		Currency:      "inr",
		PaymentStatus: "initiated",
	}
	if err := s.paymentRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return &CheckoutSession{SessionID: sess.ID, CheckoutURL: sess.URL}, nil
}

// GetStatus polls Stripe for a session and settles the enrollment if payment
// has cleared. The frontend calls this from the success page, so a slow or
// missed webhook cannot strand a paid user.
func (s *CheckoutService) GetStatus(ctx context.Context, sessionID string) (*PaymentStatus, error) {
	txn, err := s.paymentRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Payment session not found"}
		}
		return nil, err
	}

	if txn.PaymentStatus == "paid" {
		return &PaymentStatus{SessionID: sessionID, PaymentStatus: "paid", CourseID: txn.CourseID}, nil
	}

	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checkout session: %w", err)
	}

	if sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		if err := s.settle(ctx, sessionID); err != nil {
			return nil, err
		}
		return &PaymentStatus{SessionID: sessionID, PaymentStatus: "paid", CourseID: txn.CourseID}, nil
	}

	return &PaymentStatus{SessionID: sessionID, PaymentStatus: txn.PaymentStatus, CourseID: txn.CourseID}, nil
}

// HandleWebhook verifies a Stripe event signature and settles completed
// checkout sessions. Replayed events are harmless; settlement is idempotent.
func (s *CheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return &UnauthorizedError{Message: "Invalid webhook signature"}
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to decode webhook session: %w", err)
	}

	return s.settle(ctx, sess.ID)
}

// settle marks the transaction and enrollment paid, then queues the
// confirmation notification. Only the first transition enqueues.
func (s *CheckoutService) settle(ctx context.Context, sessionID string) error {
	txn, err := s.paymentRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	if txn.PaymentStatus == "paid" {
		return nil
	}

	if err := s.paymentRepo.UpdateStatus(ctx, sessionID, "paid"); err != nil {
		return err
	}
	enrollment, err := s.enrollmentRepo.MarkPaidBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	job := models.NotificationJob{
		ID:       uuid.New(),
		UserID:   enrollment.UserID,
		Type:     "enrollment-paid",
		CourseID: enrollment.CourseID,
	}
	if err := s.enqueue(ctx, job); err != nil {
		log.Printf("⚠ Failed to enqueue enrollment notification: %v", err)
	}

	return nil
}

func (s *CheckoutService) enqueue(ctx context.Context, job models.NotificationJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.queue.LPush(ctx, notificationQueue, data).Err()
}
