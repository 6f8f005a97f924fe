package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/medicore/hospital-app/db"
	"github.com/medicore/hospital-app/models"
	"github.com/medicore/hospital-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// dueForReminder reports whether the appointment should get a reminder at
// now: pending, has an email address, and starts 55 to 65 minutes out. A
// malformed date or time is an error so the caller can log and skip it.
func dueForReminder(a *models.Appointment, now time.Time) (bool, error) {
	if a.Status != models.StatusPending || a.Email == "" {
		return false, nil
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, time.Local)
	if err != nil {
		return false, err
	}

	if start.Before(now.Add(55*time.Minute)) || start.After(now.Add(65*time.Minute)) {
		return false, nil
	}
	return true, nil
}

// sendAppointmentReminders emails every patient whose pending appointment
// starts within the next hour.
func sendAppointmentReminders() {
	now := time.Now()

	var appointments []models.Appointment
	err := db.DB.
		Where("status = ? AND date IN ?", models.StatusPending,
			[]string{now.Format("2006-01-02"), now.AddDate(0, 0, 1).Format("2006-01-02")}).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		due, err := dueForReminder(&appointment, now)
		if err != nil {
			log.Printf("Skipping appointment %d: bad date/time: %v", appointment.ID, err)
			continue
		}
		if !due {
			continue
		}

		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Hospital:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>MediCore Hospital</p>
	`, appointment.PatientName,
		appointment.Date,
		appointment.Time,
		appointment.DoctorName,
		appointment.HospitalName)

	return utils.SendEmail(appointment.Email, subject, body)
}
