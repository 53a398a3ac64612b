package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/db"
	"github.com/medicore/hospital-backend/models"
	"github.com/medicore/hospital-backend/utils"
)

// RecentAppointmentRow is the flattened listing the admin dashboard renders.
type RecentAppointmentRow struct {
	ID          uint                     `json:"id"`
	PatientName string                   `json:"patient_name"`
	DoctorName  string                   `json:"doctor_name"`
	Department  string                   `json:"department"`
	Date        time.Time                `json:"date"`
	Time        string                   `json:"time"`
	Status      models.AppointmentStatus `json:"status"`
}

// GetAdminStats returns the dashboard counters.
func GetAdminStats(c *fiber.Ctx) error {
	var totalPatients, totalDoctors, todayAppointments, totalDepartments int64

	if err := db.DB.Model(&models.Patient{}).Count(&totalPatients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch statistics",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Model(&models.Doctor{}).
		Where("is_active = ?", true).
		Count(&totalDoctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch statistics",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Model(&models.Department{}).
		Where("is_active = ?", true).
		Count(&totalDepartments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch statistics",
			Error:   err.Error(),
		})
	}

	today := utils.NormalizeDate(time.Now())
	if err := db.DB.Model(&models.Appointment{}).
		Where("appointment_date = ?", today).
		Count(&todayAppointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch statistics",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"total_patients":     totalPatients,
		"total_doctors":      totalDoctors,
		"total_departments":  totalDepartments,
		"today_appointments": todayAppointments,
	})
}

// GetRecentAppointments returns upcoming appointments for the dashboard. User
// names come from one batched lookup over the collected account IDs instead
// of a query per row.
func GetRecentAppointments(c *fiber.Ctx) error {
	limit := 10
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	today := utils.NormalizeDate(time.Now())
	var appointments []models.Appointment
	if err := db.DB.
		Preload("Patient").
		Preload("Doctor").
		Preload("Department").
		Where("appointment_date >= ?", today).
		Order("appointment_date asc, appointment_time asc").
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	var users []models.User
	ids := CollectProfileUserIDs(appointments)
	if len(ids) > 0 {
		if err := db.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch appointments",
				Error:   err.Error(),
			})
		}
	}

	return c.JSON(BuildRecentAppointmentRows(appointments, users))
}

// GetDepartmentStats returns per-department doctor and appointment counts.
func GetDepartmentStats(c *fiber.Ctx) error {
	var departments []models.Department
	if err := db.DB.Where("is_active = ?", true).Order("name asc").Find(&departments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch department statistics",
			Error:   err.Error(),
		})
	}

	type deptCount struct {
		DepartmentID uint
		Count        int64
	}

	var doctorCounts []deptCount
	if err := db.DB.Model(&models.Doctor{}).
		Select("department_id, count(*) as count").
		Where("is_active = ? AND department_id IS NOT NULL", true).
		Group("department_id").
		Scan(&doctorCounts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch department statistics",
			Error:   err.Error(),
		})
	}

	var appointmentCounts []deptCount
	if err := db.DB.Model(&models.Appointment{}).
		Select("department_id, count(*) as count").
		Where("department_id IS NOT NULL").
		Group("department_id").
		Scan(&appointmentCounts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch department statistics",
			Error:   err.Error(),
		})
	}

	doctorsByDept := make(map[uint]int64, len(doctorCounts))
	for _, dc := range doctorCounts {
		doctorsByDept[dc.DepartmentID] = dc.Count
	}
	appointmentsByDept := make(map[uint]int64, len(appointmentCounts))
	for _, ac := range appointmentCounts {
		appointmentsByDept[ac.DepartmentID] = ac.Count
	}

	stats := make([]fiber.Map, 0, len(departments))
	for _, dept := range departments {
		stats = append(stats, fiber.Map{
			"id":           dept.ID,
			"name":         dept.Name,
			"doctors":      doctorsByDept[dept.ID],
			"appointments": appointmentsByDept[dept.ID],
		})
	}
	return c.JSON(stats)
}

// CollectProfileUserIDs gathers the distinct account IDs behind the patient
// and doctor profiles of the given appointments.
func CollectProfileUserIDs(appointments []models.Appointment) []uint {
	seen := make(map[uint]bool)
	var ids []uint
	add := func(id uint) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, apt := range appointments {
		add(apt.Patient.UserID)
		add(apt.Doctor.UserID)
	}
	return ids
}

// BuildRecentAppointmentRows joins appointments with the batch-fetched users
// into dashboard rows.
func BuildRecentAppointmentRows(appointments []models.Appointment, users []models.User) []RecentAppointmentRow {
	nameByID := make(map[uint]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.Name
	}

	rows := make([]RecentAppointmentRow, 0, len(appointments))
	for _, apt := range appointments {
		department := "N/A"
		if apt.Department.ID != 0 {
			department = apt.Department.Name
		}
		rows = append(rows, RecentAppointmentRow{
			ID:          apt.ID,
			PatientName: nameByID[apt.Patient.UserID],
			DoctorName:  nameByID[apt.Doctor.UserID],
			Department:  department,
			Date:        apt.AppointmentDate,
			Time:        apt.AppointmentTime,
			Status:      apt.Status,
		})
	}
	return rows
}
