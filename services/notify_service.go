// services/notify_service.go
package services

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"shatel-registry/utils"
)

// NotifyService sends an activation SMS to a service's own number once the
// service row is committed. It stays disabled unless Twilio credentials are
// configured; failures are logged and never surfaced to the SOAP caller.
type NotifyService struct {
	client *twilio.RestClient
	from   string
}

func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")

	if accountSid == "" || authToken == "" || from == "" {
		return &NotifyService{}
	}

	return &NotifyService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *NotifyService) Enabled() bool {
	return s.client != nil
}

func (s *NotifyService) ServiceActivated(phoneNumber, serviceName string) {
	if !s.Enabled() {
		return
	}

	if !utils.ValidatePhone(phoneNumber) {
		log.Printf("Skipping activation SMS: %q is not a deliverable number", phoneNumber)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("Your service %q is now active.", serviceName))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send activation SMS to %s: %v", phoneNumber, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Activation SMS sent to %s, SID: %s", phoneNumber, *resp.Sid)
	} else {
		log.Printf("Activation SMS sent to %s, but no SID returned", phoneNumber)
	}
}
