// internal/domain/inquiry/service.go
package inquiry

import (
	"context"
	"fmt"
	"strings"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/pkg/deeplink"
)

// ValidationError carries a message suitable to show the user directly.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Tracker records analytics events for inquiry actions
type Tracker interface {
	Track(ctx context.Context, sessionID, event, page string, extra map[string]interface{}) error
}

// Notifier delivers transient user-facing feedback
type Notifier interface {
	Emit(ctx context.Context, sessionID, message, severity string) error
}

// Service composes the contact, booking and inquiry handoffs. Like
// checkout, nothing is stored server-side: the deep link carries the
// whole request into WhatsApp, the phone dialer or the mail client.
type Service struct {
	tracker  Tracker
	notifier Notifier
	config   *config.Config
}

// NewService creates a new inquiry service
func NewService(tracker Tracker, notifier Notifier, cfg *config.Config) *Service {
	return &Service{
		tracker:  tracker,
		notifier: notifier,
		config:   cfg,
	}
}

// ContactRequest is a submitted contact form. Name and Phone are
// required; the rest is optional.
type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// BookingRequest is a submitted site inspection booking. Everything
// except Location is required.
type BookingRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

// Handoff is a composed message and the deep link that carries it
type Handoff struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// SubmitContact validates a contact form and composes the WhatsApp
// handoff. Invalid input yields a ValidationError and no link.
func (s *Service) SubmitContact(ctx context.Context, sessionID string, req *ContactRequest) (*Handoff, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	if name == "" || phone == "" {
		return nil, s.reject(ctx, sessionID, "Please fill in all required fields")
	}
	if len(deeplink.DigitsOnly(phone)) < 10 {
		return nil, s.reject(ctx, sessionID, "Please enter a valid phone number")
	}

	var b strings.Builder
	b.WriteString("*NEW CONTACT REQUEST*\n\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	if req.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", req.Email)
	}
	if req.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", req.Service)
	}
	if msg := strings.TrimSpace(req.Message); msg != "" {
		fmt.Fprintf(&b, "Message: %s\n\n", msg)
	}
	b.WriteString("Please contact this customer as soon as possible.")

	message := b.String()

	s.notify(ctx, sessionID, "Your message has been sent! We will contact you shortly.", "success")
	s.track(ctx, sessionID, "contact_form_submitted", "contact", map[string]interface{}{
		"has_email": req.Email != "",
		"service":   serviceOrNone(req.Service),
	})

	return &Handoff{
		Message: message,
		URL:     deeplink.WhatsApp(s.config.Business.WhatsAppNumber, message),
	}, nil
}

// SubmitBooking validates a booking form and composes the WhatsApp
// handoff for a site inspection.
func (s *Service) SubmitBooking(ctx context.Context, sessionID string, req *BookingRequest) (*Handoff, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	if name == "" || phone == "" || req.Service == "" || req.Date == "" || req.Time == "" {
		return nil, s.reject(ctx, sessionID, "Please fill in all required fields")
	}

	var b strings.Builder
	b.WriteString("*SITE INSPECTION BOOKING*\n\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Service: %s\n", req.Service)
	fmt.Fprintf(&b, "Date: %s\n", req.Date)
	fmt.Fprintf(&b, "Time: %s\n", req.Time)
	if loc := strings.TrimSpace(req.Location); loc != "" {
		fmt.Fprintf(&b, "Location: %s\n\n", loc)
	}
	b.WriteString("Please confirm this booking and send a technician.")

	message := b.String()

	s.notify(ctx, sessionID, "Booking request sent! We will confirm via WhatsApp.", "success")
	s.track(ctx, sessionID, "booking_submitted", "booking", map[string]interface{}{
		"service": req.Service,
	})

	return &Handoff{
		Message: message,
		URL:     deeplink.WhatsApp(s.config.Business.WhatsAppNumber, message),
	}, nil
}

// InquireProduct composes the interest message for a single product
func (s *Service) InquireProduct(ctx context.Context, sessionID, productName string) (*Handoff, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, &ValidationError{Message: "Please select a product"}
	}

	message := fmt.Sprintf("I'm interested in %s. Please provide more details and pricing.", productName)

	s.track(ctx, sessionID, "product_inquiry", "shop", map[string]interface{}{
		"product": productName,
	})

	return &Handoff{
		Message: message,
		URL:     deeplink.WhatsApp(s.config.Business.WhatsAppNumber, message),
	}, nil
}

// EmergencyCall returns the dialer link for the emergency line. The
// caller is expected to have confirmed the call with the user.
func (s *Service) EmergencyCall(ctx context.Context, sessionID string) *Handoff {
	s.track(ctx, sessionID, "emergency_call", "home", nil)

	return &Handoff{
		URL: deeplink.Tel(s.config.Business.EmergencyNumber),
	}
}

// EmailInquiry composes a mailto link to the business address
func (s *Service) EmailInquiry(ctx context.Context, sessionID, subject, body string) *Handoff {
	if subject == "" {
		subject = "Inquiry - " + s.config.App.Name
	}

	s.track(ctx, sessionID, "email_inquiry", "contact", nil)

	return &Handoff{
		Message: body,
		URL:     deeplink.Mailto(s.config.Business.PrimaryEmail, subject, body),
	}
}

// reject shows the validation message as an error toast and returns it
// as the operation error.
func (s *Service) reject(ctx context.Context, sessionID, message string) error {
	s.notify(ctx, sessionID, message, "error")
	return &ValidationError{Message: message}
}

func (s *Service) notify(ctx context.Context, sessionID, message, severity string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Emit(ctx, sessionID, message, severity)
}

func (s *Service) track(ctx context.Context, sessionID, event, page string, extra map[string]interface{}) {
	if s.tracker == nil {
		return
	}
	_ = s.tracker.Track(ctx, sessionID, event, page, extra)
}

func serviceOrNone(service string) string {
	if service == "" {
		return "none"
	}
	return service
}
