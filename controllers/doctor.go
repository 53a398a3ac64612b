package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/db"
	"github.com/medicore/hospital-backend/models"
	"github.com/medicore/hospital-backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateDoctorRequest bundles the account and the clinical profile an admin
// creates in one step.
type CreateDoctorRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Specialization  string  `json:"specialization"`
	Qualification   string  `json:"qualification"`
	Experience      int     `json:"experience"`
	DepartmentID    *uint   `json:"department_id"`
	LicenseNumber   string  `json:"license_number"`
	ConsultationFee float64 `json:"consultation_fee"`
	Bio             string  `json:"bio"`
	AvailableFrom   *string `json:"available_from"`
	AvailableTo     *string `json:"available_to"`
}

// GetDoctors lists doctor profiles with optional filters.
func GetDoctors(c *fiber.Ctx) error {
	query := db.DB.Preload("User").Preload("Department")

	if departmentID := c.QueryInt("department_id"); departmentID > 0 {
		query = query.Where("department_id = ?", departmentID)
	}
	if spec := c.Query("specialization"); spec != "" {
		query = query.Where("specialization ILIKE ?", "%"+spec+"%")
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var doctors []models.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctors)
}

// GetDoctor returns a doctor profile by ID.
func GetDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.Preload("User").Preload("Department").First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}
	return c.JSON(doctor)
}

// CreateDoctor creates the user account and the doctor profile together.
func CreateDoctor(c *fiber.Ctx) error {
	var req CreateDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Specialization == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
		})
	}

	if req.AvailableFrom != nil && *req.AvailableFrom != "" {
		if _, _, err := utils.ParseClock(*req.AvailableFrom); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid availability window",
				Error:   err.Error(),
			})
		}
	}
	if req.AvailableTo != nil && *req.AvailableTo != "" {
		if _, _, err := utils.ParseClock(*req.AvailableTo); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid availability window",
				Error:   err.Error(),
			})
		}
	}

	var existing models.User
	if db.DB.Where("email = ?", req.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
		})
	}

	var doctor models.Doctor
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashedPassword),
			Role:     models.RoleDoctor,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		doctor = models.Doctor{
			UserID:          user.ID,
			Specialization:  req.Specialization,
			Qualification:   req.Qualification,
			Experience:      req.Experience,
			DepartmentID:    req.DepartmentID,
			LicenseNumber:   req.LicenseNumber,
			ConsultationFee: req.ConsultationFee,
			Bio:             req.Bio,
			AvailableFrom:   req.AvailableFrom,
			AvailableTo:     req.AvailableTo,
			IsActive:        true,
		}
		return tx.Create(&doctor).Error
	})
	if err != nil {
		log.Printf("Error creating doctor: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Preload("User").Preload("Department").First(&doctor, doctor.ID).Error; err == nil {
		doctor.User.Password = ""
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// UpdateDoctor updates a doctor profile.
func UpdateDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if doctor.AvailableFrom != nil && *doctor.AvailableFrom != "" {
		if _, _, err := utils.ParseClock(*doctor.AvailableFrom); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid availability window",
				Error:   err.Error(),
			})
		}
	}
	if doctor.AvailableTo != nil && *doctor.AvailableTo != "" {
		if _, _, err := utils.ParseClock(*doctor.AvailableTo); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid availability window",
				Error:   err.Error(),
			})
		}
	}

	if err := db.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update doctor",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}

// ToggleDoctorStatus flips a doctor between active and inactive. Inactive
// doctors cannot be booked.
func ToggleDoctorStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	doctor.IsActive = !doctor.IsActive
	if err := db.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update doctor",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}

// DeleteDoctor soft-deletes a doctor profile. Doctors with appointments still
// holding a slot cannot be removed.
func DeleteDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	var upcoming int64
	if err := db.DB.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctor.ID).
		Where("status IN ?", models.HoldingStatuses).
		Count(&upcoming).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete doctor",
			Error:   err.Error(),
		})
	}
	if upcoming > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot delete a doctor with upcoming appointments",
		})
	}

	if err := db.DB.Delete(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete doctor",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadDoctorPhoto stores a profile photo on Cloudinary and saves its URL.
func UploadDoctorPhoto(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing photo file",
			Error:   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to read photo file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, "doctor-"+id, "doctors")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	doctor.ImageURL = url
	if err := db.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save photo URL",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}
