package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/db"
	"github.com/medicore/hospital-backend/models"
	"github.com/medicore/hospital-backend/redis"
	"github.com/medicore/hospital-backend/utils"
	"gorm.io/gorm"
)

// GetAvailableSlots returns the bookable "HH:MM" slots for a doctor on a
// date. Missing doctor, missing working window or a failed lookup all yield
// an empty list rather than an error, so the booking form never breaks.
func GetAvailableSlots(c *fiber.Ctx) error {
	empty := []string{}

	doctorID := c.QueryInt("doctor_id")
	date, err := utils.ParseDate(c.Query("date"))
	if doctorID <= 0 || err != nil {
		return c.JSON(empty)
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, doctorID).Error; err != nil {
		return c.JSON(empty)
	}
	if !doctor.HasWorkingWindow() {
		return c.JSON(empty)
	}

	slots := utils.GenerateTimeSlots(*doctor.AvailableFrom, *doctor.AvailableTo)
	booked, err := utils.BookedTimes(doctor.ID, date)
	if err != nil {
		return c.JSON(empty)
	}

	return c.JSON(utils.FilterBookedSlots(slots, booked))
}

// CreateAppointmentRequest is the booking payload.
type CreateAppointmentRequest struct {
	PatientID       uint                   `json:"patient_id"`
	DoctorID        uint                   `json:"doctor_id"`
	DepartmentID    *uint                  `json:"department_id"`
	AppointmentDate string                 `json:"appointment_date"` // "YYYY-MM-DD"
	AppointmentTime string                 `json:"appointment_time"` // "HH:MM"
	AppointmentType models.AppointmentType `json:"appointment_type"`
	ReasonForVisit  string                 `json:"reason_for_visit"`
	Duration        int                    `json:"duration"`
}

// CreateAppointment validates and books a new appointment. The validation
// sequence short-circuits on the first failure: patient exists, doctor exists
// and is active, patients may only book for themselves, and the requested
// slot must be free. The insert re-checks the slot inside a transaction and
// the partial unique index on (doctor, date, time) is the final word against
// concurrent bookings.
func CreateAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := utils.ParseDate(req.AppointmentDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment date",
			Error:   err.Error(),
		})
	}
	if _, _, err := utils.ParseClock(req.AppointmentTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment time",
			Error:   err.Error(),
		})
	}
	if req.AppointmentType != "" && !req.AppointmentType.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown appointment type",
		})
	}

	var patient models.Patient
	if err := db.DB.Preload("User").First(&patient, req.PatientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
		})
	}

	var doctor models.Doctor
	if err := db.DB.Preload("User").
		Where("id = ? AND is_active = ?", req.DoctorID, true).
		First(&doctor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found or inactive",
		})
	}

	// Patients book for themselves only.
	if models.Role(role) == models.RolePatient && patient.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only book appointments for yourself",
		})
	}

	// Friendly early rejection before we touch the transaction.
	available, err := utils.CheckSlotAvailable(nil, doctor.ID, date, req.AppointmentTime, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
		})
	}
	if !available {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This time slot is already booked. Please choose another time.",
		})
	}

	appointment := models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		DepartmentID:    req.DepartmentID,
		AppointmentDate: utils.NormalizeDate(date),
		AppointmentTime: req.AppointmentTime,
		AppointmentType: req.AppointmentType,
		Status:          models.StatusScheduled,
		Duration:        req.Duration,
		ReasonForVisit:  req.ReasonForVisit,
	}
	if appointment.DepartmentID == nil {
		appointment.DepartmentID = doctor.DepartmentID
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Re-check inside the transaction to narrow the race window; the
		// unique index still backstops anything that slips through.
		available, err := utils.CheckSlotAvailable(tx, doctor.ID, date, req.AppointmentTime, 0)
		if err != nil {
			return err
		}
		if !available {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "This time slot is already booked. Please choose another time.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAppointmentViews()
	sendBookingEmails(&appointment, &patient, &doctor)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    appointment,
	})
}

// RescheduleRequest carries the new slot for an existing appointment.
type RescheduleRequest struct {
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

// RescheduleAppointment moves an appointment to a new date/time. The
// appointment's own slot is excluded from the conflict set, so moving it onto
// the slot it already occupies succeeds.
func RescheduleAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	var req RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := utils.ParseDate(req.AppointmentDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment date",
			Error:   err.Error(),
		})
	}
	if _, _, err := utils.ParseClock(req.AppointmentTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment time",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the row so concurrent reschedules serialize.
		if err := tx.Raw(`
			SELECT *
			FROM appointments
			WHERE id = ? AND deleted_at IS NULL FOR UPDATE
		`, id).Scan(&appointment).Error; err != nil {
			return err
		}
		if appointment.ID == 0 {
			return gorm.ErrRecordNotFound
		}

		available, err := utils.CheckSlotAvailable(tx, appointment.DoctorID, date, req.AppointmentTime, appointment.ID)
		if err != nil {
			return err
		}
		if !available {
			return gorm.ErrDuplicatedKey
		}

		appointment.AppointmentDate = utils.NormalizeDate(date)
		appointment.AppointmentTime = req.AppointmentTime
		return tx.Model(&models.Appointment{}).
			Where("id = ?", appointment.ID).
			Updates(map[string]interface{}{
				"appointment_date": appointment.AppointmentDate,
				"appointment_time": appointment.AppointmentTime,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Appointment not found",
			})
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "This time slot is already booked",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reschedule appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAppointmentViews()

	return c.JSON(fiber.Map{
		"success": true,
		"data":    appointment,
	})
}

// UpdateStatusRequest carries the target lifecycle status.
type UpdateStatusRequest struct {
	Status models.AppointmentStatus `json:"status"`
}

// UpdateAppointmentStatus applies the status transition table. Setting the
// status an appointment already holds is a no-op success; disallowed
// transitions are rejected.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, req.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment status",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAppointmentViews()

	return c.JSON(fiber.Map{
		"success": true,
		"data":    appointment,
	})
}

// CancelAppointment sets the cancelled status. Cancellation never deletes the
// row. Staff may cancel any appointment; a patient only their own.
func CancelAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	if models.Role(role) == models.RolePatient {
		var patient models.Patient
		if err := db.DB.Where("user_id = ?", userID).First(&patient).Error; err != nil ||
			appointment.PatientID != patient.ID {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "You can only cancel your own appointments",
			})
		}
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAppointmentViews()

	return c.JSON(fiber.Map{
		"success": true,
		"data":    appointment,
	})
}

// GetAppointments lists appointments scoped to the caller's role: patients
// and doctors see only their own, staff see everything. The unfiltered
// listing for each role view is served through the redis cache.
func GetAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	hasFilters := c.Query("status") != "" || c.Query("date") != "" ||
		c.Query("doctor_id") != "" || c.Query("patient_id") != "" ||
		c.Query("department_id") != ""

	cacheKey := ""
	if !hasFilters {
		switch models.Role(role) {
		case models.RolePatient, models.RoleDoctor:
			cacheKey = redis.AppointmentViewKey(role, userID)
		default:
			cacheKey = redis.AppointmentViewKey(role, 0)
		}
		var cached []models.Appointment
		if found, err := redis.GetJSON(cacheKey, &cached); err == nil && found {
			return c.JSON(cached)
		}
	}

	query := db.DB.
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Department")

	switch models.Role(role) {
	case models.RolePatient:
		var patient models.Patient
		if err := db.DB.Where("user_id = ?", userID).First(&patient).Error; err != nil {
			return c.JSON([]models.Appointment{})
		}
		query = query.Where("patient_id = ?", patient.ID)
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
			return c.JSON([]models.Appointment{})
		}
		query = query.Where("doctor_id = ?", doctor.ID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date filter",
				Error:   err.Error(),
			})
		}
		query = query.Where("appointment_date = ?", utils.NormalizeDate(date))
	}
	if doctorID := c.QueryInt("doctor_id"); doctorID > 0 {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if patientID := c.QueryInt("patient_id"); patientID > 0 {
		query = query.Where("patient_id = ?", patientID)
	}
	if departmentID := c.QueryInt("department_id"); departmentID > 0 {
		query = query.Where("department_id = ?", departmentID)
	}

	var appointments []models.Appointment
	if err := query.
		Order("appointment_date desc, appointment_time desc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	if cacheKey != "" {
		if err := redis.SetJSON(cacheKey, appointments); err != nil {
			log.Printf("Failed to cache appointment view %s: %v", cacheKey, err)
		}
	}

	return c.JSON(appointments)
}

// GetAppointment returns one appointment. Patients and doctors may only read
// their own.
func GetAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	var appointment models.Appointment
	if err := db.DB.
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Department").
		First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	switch models.Role(role) {
	case models.RolePatient:
		var patient models.Patient
		if err := db.DB.Where("user_id = ?", userID).First(&patient).Error; err != nil ||
			appointment.PatientID != patient.ID {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "You can only view your own appointments",
			})
		}
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil ||
			appointment.DoctorID != doctor.ID {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "You can only view your own appointments",
			})
		}
	}

	return c.JSON(appointment)
}

// sendBookingEmails notifies both parties about a new booking. The
// appointment is already committed, so delivery trouble is logged rather
// than returned to the caller.
func sendBookingEmails(appointment *models.Appointment, patient *models.Patient, doctor *models.Doctor) {
	when := fmt.Sprintf("%s at %s",
		appointment.AppointmentDate.Format("2006-01-02"), appointment.AppointmentTime)

	patientBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been booked.</p>
		<ul>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>When:</strong> %s</li>
			<li><strong>Type:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,<br>Hospital Administration</p>
	`, patient.User.Name, doctor.User.Name, when, appointment.AppointmentType, appointment.Status)
	if err := utils.SendEmail(patient.User.Email, "Appointment Booked", patientBody); err != nil {
		log.Printf("Failed to send booking email to patient %d: %v", patient.ID, err)
	}

	doctorBody := fmt.Sprintf(`
		<p>Dear Dr. %s,</p>
		<p>A new appointment has been scheduled with you.</p>
		<ul>
			<li><strong>Patient:</strong> %s</li>
			<li><strong>When:</strong> %s</li>
			<li><strong>Type:</strong> %s</li>
		</ul>
		<p>Best regards,<br>Hospital Administration</p>
	`, doctor.User.Name, patient.User.Name, when, appointment.AppointmentType)
	if err := utils.SendEmail(doctor.User.Email, "New Appointment Scheduled", doctorBody); err != nil {
		log.Printf("Failed to send booking email to doctor %d: %v", doctor.ID, err)
	}
}
