// internal/domain/inquiry/service_test.go
package inquiry

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/kingu-electrical/kingu-backend/internal/config"
)

type fakeTracker struct {
	events []string
	extras []map[string]interface{}
}

func (f *fakeTracker) Track(ctx context.Context, sessionID, event, page string, extra map[string]interface{}) error {
	f.events = append(f.events, event)
	f.extras = append(f.extras, extra)
	return nil
}

type fakeNotifier struct {
	messages   []string
	severities []string
}

func (f *fakeNotifier) Emit(ctx context.Context, sessionID, message, severity string) error {
	f.messages = append(f.messages, message)
	f.severities = append(f.severities, severity)
	return nil
}

func newTestService() (*Service, *fakeTracker, *fakeNotifier) {
	cfg := &config.Config{
		App: config.AppConfig{Name: "Kingu Electrical"},
		Business: config.BusinessConfig{
			WhatsAppNumber:  "+255682843552",
			EmergencyNumber: "+255682843552",
			PrimaryEmail:    "Kinguelectricaltz@gmail.com",
		},
	}
	tracker := &fakeTracker{}
	notifier := &fakeNotifier{}
	return NewService(tracker, notifier, cfg), tracker, notifier
}

func TestSubmitContact(t *testing.T) {
	svc, tracker, notifier := newTestService()

	handoff, err := svc.SubmitContact(context.Background(), "s1", &ContactRequest{
		Name:    "Juma Hassan",
		Phone:   "+255 712 345 678",
		Email:   "juma@example.com",
		Service: "Generator Installation",
		Message: "Need a quote for a 50kVA unit",
	})
	if err != nil {
		t.Fatal(err)
	}

	wantLines := []string{
		"*NEW CONTACT REQUEST*",
		"Name: Juma Hassan",
		"Phone: +255 712 345 678",
		"Email: juma@example.com",
		"Service: Generator Installation",
		"Message: Need a quote for a 50kVA unit",
		"Please contact this customer as soon as possible.",
	}
	for _, line := range wantLines {
		if !strings.Contains(handoff.Message, line) {
			t.Errorf("message missing %q\n%s", line, handoff.Message)
		}
	}

	parsed, err := url.Parse(handoff.URL)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Host != "wa.me" || parsed.Path != "/255682843552" {
		t.Errorf("unexpected link target: %s", handoff.URL)
	}
	if parsed.Query().Get("text") != handoff.Message {
		t.Error("deep link text differs from composed message")
	}

	if len(tracker.events) != 1 || tracker.events[0] != "contact_form_submitted" {
		t.Errorf("events = %v", tracker.events)
	}
	if tracker.extras[0]["has_email"] != true || tracker.extras[0]["service"] != "Generator Installation" {
		t.Errorf("event payload = %+v", tracker.extras[0])
	}
	if len(notifier.severities) != 1 || notifier.severities[0] != "success" {
		t.Errorf("notifications = %v", notifier.severities)
	}
}

func TestSubmitContactOmitsEmptyOptionals(t *testing.T) {
	svc, tracker, _ := newTestService()

	handoff, err := svc.SubmitContact(context.Background(), "s1", &ContactRequest{
		Name:  "Asha",
		Phone: "0712345678",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, label := range []string{"Email:", "Service:", "Message:"} {
		if strings.Contains(handoff.Message, label) {
			t.Errorf("message should not contain %q when field is empty", label)
		}
	}
	if tracker.extras[0]["service"] != "none" {
		t.Errorf("missing service should be recorded as none, got %v", tracker.extras[0]["service"])
	}
}

func TestSubmitContactValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *ContactRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     &ContactRequest{Phone: "0712345678"},
			wantMsg: "Please fill in all required fields",
		},
		{
			name:    "missing phone",
			req:     &ContactRequest{Name: "Asha"},
			wantMsg: "Please fill in all required fields",
		},
		{
			name:    "short phone",
			req:     &ContactRequest{Name: "Asha", Phone: "071234"},
			wantMsg: "Please enter a valid phone number",
		},
		{
			name:    "whitespace only name",
			req:     &ContactRequest{Name: "   ", Phone: "0712345678"},
			wantMsg: "Please fill in all required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tracker, notifier := newTestService()

			handoff, err := svc.SubmitContact(context.Background(), "s1", tt.req)
			if handoff != nil {
				t.Error("invalid input must not produce a link")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantMsg)
			}

			if len(tracker.events) != 0 {
				t.Error("rejected submission must not be tracked")
			}
			if len(notifier.severities) != 1 || notifier.severities[0] != "error" {
				t.Errorf("expected one error toast, got %v", notifier.severities)
			}
		})
	}
}

func TestSubmitBooking(t *testing.T) {
	svc, tracker, _ := newTestService()

	handoff, err := svc.SubmitBooking(context.Background(), "s1", &BookingRequest{
		Name:     "Juma Hassan",
		Phone:    "0712345678",
		Service:  "Industrial Wiring",
		Date:     "2026-09-15",
		Time:     "10:00",
		Location: "Kariakoo, Dar es Salaam",
	})
	if err != nil {
		t.Fatal(err)
	}

	wantLines := []string{
		"*SITE INSPECTION BOOKING*",
		"Service: Industrial Wiring",
		"Date: 2026-09-15",
		"Time: 10:00",
		"Location: Kariakoo, Dar es Salaam",
		"Please confirm this booking and send a technician.",
	}
	for _, line := range wantLines {
		if !strings.Contains(handoff.Message, line) {
			t.Errorf("message missing %q", line)
		}
	}

	if len(tracker.events) != 1 || tracker.events[0] != "booking_submitted" {
		t.Errorf("events = %v", tracker.events)
	}
	if tracker.extras[0]["service"] != "Industrial Wiring" {
		t.Errorf("event payload = %+v", tracker.extras[0])
	}
}

func TestSubmitBookingRequiresAllFields(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitBooking(context.Background(), "s1", &BookingRequest{
		Name:    "Juma",
		Phone:   "0712345678",
		Service: "Industrial Wiring",
		// no date/time
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestInquireProduct(t *testing.T) {
	svc, tracker, _ := newTestService()

	handoff, err := svc.InquireProduct(context.Background(), "s1", "Diesel Generator 50kVA")
	if err != nil {
		t.Fatal(err)
	}

	want := "I'm interested in Diesel Generator 50kVA. Please provide more details and pricing."
	if handoff.Message != want {
		t.Errorf("message = %q, want %q", handoff.Message, want)
	}
	if tracker.extras[0]["product"] != "Diesel Generator 50kVA" {
		t.Errorf("event payload = %+v", tracker.extras[0])
	}
}

func TestEmergencyCall(t *testing.T) {
	svc, tracker, _ := newTestService()

	handoff := svc.EmergencyCall(context.Background(), "s1")

	if handoff.URL != "tel:+255682843552" {
		t.Errorf("url = %q", handoff.URL)
	}
	if len(tracker.events) != 1 || tracker.events[0] != "emergency_call" {
		t.Errorf("events = %v", tracker.events)
	}
}

func TestEmailInquiry(t *testing.T) {
	svc, _, _ := newTestService()

	handoff := svc.EmailInquiry(context.Background(), "s1", "", "Please send your price list")

	if !strings.HasPrefix(handoff.URL, "mailto:Kinguelectricaltz@gmail.com?") {
		t.Errorf("url = %q", handoff.URL)
	}
	if !strings.Contains(handoff.URL, "Inquiry+-+Kingu+Electrical") &&
		!strings.Contains(handoff.URL, "Inquiry%20-%20Kingu%20Electrical") {
		t.Errorf("default subject missing from %q", handoff.URL)
	}
}
