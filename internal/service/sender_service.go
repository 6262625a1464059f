package service

import (
	"bytes"
	"fmt"
	"html/template"

	"salonbook/internal/entities"
	"salonbook/internal/schedule"

	"github.com/sirupsen/logrus"
)

// Appointment events that trigger a client notification.
const (
	EventBooked    = "booked"
	EventCancelled = "cancelled"
)

// SenderService sends booking notifications to the client over SMS and
// email. Sends are fire-and-forget: a delivery failure is logged, never
// surfaced to the booking flow. All times are rendered straight off the
// stored wall-clock value; no zone conversion happens anywhere.
type SenderService struct {
	SalonName string
}

func NewSenderService(salonName string) *SenderService {
	if salonName == "" {
		salonName = "the salon"
	}
	return &SenderService{SalonName: salonName}
}

type appointmentEmailData struct {
	SalonName   string
	ClientName  string
	Code        string
	ServiceName string
	MasterName  string
	StartsAt    string
	Event       string
}

var appointmentEmailTmpl = template.Must(template.New("appointment_email").Parse(`
<p>Hello {{.ClientName}},</p>
<p>Your appointment at <strong>{{.SalonName}}</strong> has been {{.Event}}.</p>
<ul>
  <li>Booking code: {{.Code}}</li>
  <li>Service: {{.ServiceName}}</li>
  <li>Master: {{.MasterName}}</li>
  <li>When: {{.StartsAt}}</li>
</ul>
<p>{{.SalonName}}</p>
`))

// NotifyAppointment dispatches both channels for an appointment event.
// Clients without an email address only get the SMS.
func (s *SenderService) NotifyAppointment(app *entities.AppointmentResponse, event string) {
	if s == nil || app == nil {
		return
	}

	startsAt := displayTime(app.StartTime)
	clientName := app.ClientFirstName
	if clientName == "" {
		clientName = "client"
	}

	smsBody := fmt.Sprintf("%s: your appointment for %s on %s has been %s. Code: %s",
		s.SalonName, app.ServiceName, startsAt, event, app.Code)

	go func() {
		if app.ClientPhone != "" {
			if err := SendSMS(app.ClientPhone, smsBody); err != nil {
				logrus.Warnf("booking %s: SMS notification failed: %v", app.Code, err)
			}
		}
		if app.ClientEmail == "" {
			return
		}

		data := appointmentEmailData{
			SalonName:   s.SalonName,
			ClientName:  clientName,
			Code:        app.Code,
			ServiceName: app.ServiceName,
			MasterName:  app.EmployeeName,
			StartsAt:    startsAt,
			Event:       event,
		}
		var htmlBody bytes.Buffer
		if err := appointmentEmailTmpl.Execute(&htmlBody, data); err != nil {
			logrus.Warnf("booking %s: email template failed: %v", app.Code, err)
			return
		}
		subject := fmt.Sprintf("Your %s appointment is %s - %s", s.SalonName, event, app.Code)
		plainBody := fmt.Sprintf("Hello %s,\n\nYour appointment at %s has been %s.\n\nBooking code: %s\nService: %s\nMaster: %s\nWhen: %s\n\n%s",
			clientName, s.SalonName, event, app.Code, app.ServiceName, app.EmployeeName, startsAt, s.SalonName)

		if err := SendEmailWithSendGrid(app.ClientEmail, clientName, subject, plainBody, htmlBody.String()); err != nil {
			logrus.Warnf("booking %s: email notification failed: %v", app.Code, err)
		}
	}()
}

// displayTime turns a stored wall-clock timestamp into "30.01.2026 12:05"
// using the literal digits of the value.
func displayTime(raw string) string {
	if len(raw) < 16 {
		return raw
	}
	day := raw[8:10] + "." + raw[5:7] + "." + raw[:4]
	return day + " " + schedule.RawTimeOfDay(raw)
}
