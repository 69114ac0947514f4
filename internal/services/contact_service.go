package services

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/store"
)

// ContactRequest is a structured contact form submission
type ContactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// ContactOutcome is the uniform result surfaced to the submitter, whichever
// channel handled the submission
type ContactOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService persists contact submissions through exactly one of two
// equivalent channels: a remote endpoint when configured and reachable, the
// local messages collection otherwise. The fallback fires only on transport
// failure, never on a reachable endpoint's failure response.
type ContactService struct {
	messages    *store.Collection[models.Message]
	upstreamURL string
	client      *http.Client
	now         func() time.Time
}

// NewContactService creates a contact service. An empty upstreamURL persists
// every submission locally.
func NewContactService(s *store.Store, upstreamURL string) *ContactService {
	return &ContactService{
		messages:    store.NewCollection[models.Message](s, store.CollectionMessages),
		upstreamURL: upstreamURL,
		client:      &http.Client{Timeout: 15 * time.Second},
		now:         time.Now,
	}
}

// Validate checks the submission the way the persistence endpoint does:
// name, email and message are required and the email must be structurally
// valid. A failed outcome writes nothing.
func (s *ContactService) Validate(req *ContactRequest) *ContactOutcome {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return &ContactOutcome{Success: false, Message: "الرجاء ملء جميع الحقول المطلوبة", Status: http.StatusBadRequest}
	}
	if !emailPattern.MatchString(req.Email) {
		return &ContactOutcome{Success: false, Message: "عنوان البريد الإلكتروني غير صحيح", Status: http.StatusBadRequest}
	}
	return nil
}

// Submit validates the request, then persists it remotely or locally
func (s *ContactService) Submit(req ContactRequest) ContactOutcome {
	if outcome := s.Validate(&req); outcome != nil {
		return *outcome
	}

	if s.upstreamURL != "" {
		outcome, transportErr := s.submitUpstream(req)
		if transportErr == nil {
			return outcome
		}
		log.Printf("contact: upstream unreachable (%v), saving locally", transportErr)
		if err := s.saveLocal(req); err != nil {
			log.Printf("contact: local fallback failed: %v", err)
			return ContactOutcome{Success: false, Message: "حدث خطأ في حفظ الرسالة", Status: http.StatusInternalServerError}
		}
		return ContactOutcome{Success: true, Message: "تم إرسال الرسالة بنجاح! سنتواصل معكم قريباً.", Status: http.StatusOK}
	}

	if err := s.saveLocal(req); err != nil {
		log.Printf("contact: failed to save message: %v", err)
		return ContactOutcome{Success: false, Message: "حدث خطأ في حفظ الرسالة", Status: http.StatusInternalServerError}
	}
	return ContactOutcome{Success: true, Message: "تم إرسال الرسالة بنجاح", Status: http.StatusOK}
}

// submitUpstream posts the submission form-encoded to the remote endpoint.
// A non-nil error means the endpoint could not be reached or answered
// something that is not a submission result; the caller falls back.
func (s *ContactService) submitUpstream(req ContactRequest) (ContactOutcome, error) {
	form := url.Values{
		"name":    {req.Name},
		"email":   {req.Email},
		"phone":   {req.Phone},
		"subject": {req.Subject},
		"message": {req.Message},
	}

	resp, err := s.client.PostForm(s.upstreamURL, form)
	if err != nil {
		return ContactOutcome{}, err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ContactOutcome{}, err
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	return ContactOutcome{Success: result.Success, Message: result.Message, Status: status}, nil
}

// saveLocal writes the submission into the messages collection with the
// same record shape the remote endpoint produces
func (s *ContactService) saveLocal(req ContactRequest) error {
	subject := req.Subject
	if subject == "" {
		subject = models.DefaultMessageSubject
	}
	_, err := s.messages.Add(models.Message{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Subject:      subject,
		Message:      req.Message,
		Status:       models.MessageStatusUnread,
		DateReceived: s.now().Format("2006-01-02T15:04:05"),
		Priority:     models.MessagePriorityNormal,
	})
	return err
}
