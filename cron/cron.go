package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/medicore/hospital-backend/db"
	"github.com/medicore/hospital-backend/models"
	"github.com/medicore/hospital-backend/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute and look for appointments exactly one hour out
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders mails patients whose confirmed appointment starts
// one hour from now. Appointment times are wall-clock values in the clinic's
// timezone, so the comparison runs there; times sit on a 30-minute grid, so
// the minutely scan matches each slot exactly once.
func sendAppointmentReminders() {
	now := time.Now().In(utils.ClinicLocation())
	target := now.Add(time.Hour)

	var appointments []models.Appointment
	err := db.DB.
		Preload("Patient.User").
		Preload("Doctor.User").
		Where("status = ?", models.StatusConfirmed).
		Where("appointment_date = ? AND appointment_time = ?",
			utils.NormalizeDate(target), target.Format("15:04")).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Patient.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment in one hour.</p>
		<ul>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Type:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,<br>Hospital Administration</p>
	`, appointment.Patient.User.Name, appointment.Doctor.User.Name,
		appointment.AppointmentDate.Format("2006-01-02"),
		appointment.AppointmentTime,
		appointment.AppointmentType)

	return utils.SendEmail(appointment.Patient.User.Email, subject, body)
}
