package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sportsboard/internal/platform/id"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/platform/ratelimit"
)

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type contactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required"`
	Message string `validate:"required,min=20"`
}

type ContactReceipt struct {
	ID          string
	SubmittedAt time.Time
}

// FieldError describes one invalid contact form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every invalid field of a submission. It matches
// ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

type ContactServiceOptions struct {
	SubmitDelay time.Duration
	Limiter     ratelimit.Limiter
	IDGenerator id.Generator
	Logger      *logging.Logger
	Now         func() time.Time
}

// ContactService accepts contact form submissions. Submissions are
// acknowledged and logged, never stored.
type ContactService struct {
	validator   *validator.Validate
	delay       time.Duration
	limiter     ratelimit.Limiter
	idGenerator id.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewContactService(opts ContactServiceOptions) *ContactService {
	if opts.IDGenerator == nil {
		opts.IDGenerator = id.NewUUIDGenerator()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &ContactService{
		validator:   validator.New(),
		delay:       opts.SubmitDelay,
		limiter:     opts.Limiter,
		idGenerator: opts.IDGenerator,
		logger:      opts.Logger,
		now:         opts.Now,
	}
}

// Submit validates input and acknowledges it after the configured delay.
// clientKey scopes the rate limit budget.
func (s *ContactService) Submit(ctx context.Context, clientKey string, input ContactInput) (ContactReceipt, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContactService.Submit")
	defer span.End()

	form := contactForm{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}
	if err := s.validate(ctx, form); err != nil {
		return ContactReceipt{}, err
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, clientKey)
		if err != nil {
			return ContactReceipt{}, fmt.Errorf("%w: contact rate limiter: %v", ErrDependencyUnavailable, err)
		}
		if !allowed {
			return ContactReceipt{}, fmt.Errorf("%w: too many contact submissions, try again later", ErrRateLimited)
		}
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ContactReceipt{}, fmt.Errorf("submit contact form: %w", ctx.Err())
		case <-timer.C:
		}
	}

	receiptID, err := s.idGenerator.NewID()
	if err != nil {
		return ContactReceipt{}, fmt.Errorf("generate contact receipt id: %w", err)
	}

	receipt := ContactReceipt{ID: receiptID, SubmittedAt: s.now().UTC()}
	s.logger.InfoContext(ctx, "contact form submitted",
		"receipt_id", receipt.ID,
		"subject", form.Subject,
		"message_length", len(form.Message),
	)

	return receipt, nil
}

func (s *ContactService) validate(ctx context.Context, form contactForm) error {
	err := s.validator.StructCtx(ctx, form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: contactFieldMessage(fe),
		})
	}
	return out
}

func contactFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters long"
	default:
		return fe.Field() + " is invalid"
	}
}
