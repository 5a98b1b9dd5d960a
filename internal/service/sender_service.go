package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	"vehiclebooking/internal/utils"
)

// SenderService turns booking status changes into email and SMS
// notifications. Delivery is asynchronous and best effort: failures are
// logged and never fail the operation that triggered them.
type SenderService struct {
	Users UserStore
}

func NewSenderService(users UserStore) *SenderService {
	return &SenderService{Users: users}
}

func (s *SenderService) BookingStatusChanged(booking *db.Booking, vehicle *db.Vehicle, status string) {
	user, err := s.Users.GetByID(booking.UserID)
	if err != nil {
		logrus.Printf("Could not load user %d for booking notification: %v", booking.UserID, err)
		return
	}

	data := entities.BookingEmailData{
		UserName:           user.FirstName + " " + user.LastName,
		BookingCode:        booking.Code,
		VehicleName:        fmt.Sprintf("%s %s (%d)", vehicle.Make, vehicle.Model, vehicle.Year),
		StartDateFormatted: booking.StartDate.Format("02 Jan 2006"),
		EndDateFormatted:   booking.EndDate.Format("02 Jan 2006"),
		TotalPrice:         booking.TotalPrice,
		Status:             status,
		CurrentYear:        time.Now().Year(),
	}

	subject := fmt.Sprintf("Your vehicle booking is %s - Code: %s", status, data.BookingCode)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour booking is %s.\n\n"+
			"Booking Details:\n"+
			"Booking Code: %s\n"+
			"Vehicle: %s\n"+
			"Pick-up: %s\n"+
			"Return: %s\n"+
			"Total: %.2f\n\n"+
			"Thank you for booking with us.",
		data.UserName, status, data.BookingCode, data.VehicleName,
		data.StartDateFormatted, data.EndDateFormatted, data.TotalPrice,
	)

	smsMessage := fmt.Sprintf("Vehicle Booking: booking %s is %s. Pick-up: %s. More details in your email.",
		data.BookingCode, status, booking.StartDate.Format(utils.DateLayout))

	go func(toEmail, toName, subject, body string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, body, ""); err != nil {
			logrus.Printf("Email for booking %s failed: %v", data.BookingCode, err)
		}
	}(user.Email, data.UserName, subject, plainTextBody)

	go func(toPhone, body string) {
		if err := SendSMS(toPhone, body); err != nil {
			logrus.Printf("SMS for booking %s failed: %v", data.BookingCode, err)
		}
	}(user.Phone, smsMessage)
}
