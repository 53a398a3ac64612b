package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/db"
	"github.com/medicore/hospital-backend/models"
	"github.com/medicore/hospital-backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreatePatientRequest bundles the account and the medical profile the front
// desk registers in one step.
type CreatePatientRequest struct {
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Password               string     `json:"password"`
	DateOfBirth            *time.Time `json:"date_of_birth"`
	Gender                 string     `json:"gender"`
	BloodGroup             string     `json:"blood_group"`
	Address                string     `json:"address"`
	PhoneNumber            string     `json:"phone_number"`
	EmergencyContactName   string     `json:"emergency_contact_name"`
	EmergencyContactNumber string     `json:"emergency_contact_number"`
	Allergies              string     `json:"allergies"`
	ChronicDiseases        string     `json:"chronic_diseases"`
	CurrentMedications     string     `json:"current_medications"`
	InsuranceProvider      string     `json:"insurance_provider"`
	InsuranceNumber        string     `json:"insurance_number"`
}

// GetPatients lists patient profiles, optionally filtered by a name/email
// search against the linked account.
func GetPatients(c *fiber.Ctx) error {
	query := db.DB.Preload("User")

	if search := c.Query("search"); search != "" {
		query = query.
			Joins("JOIN users ON users.id = patients.user_id").
			Where("users.name ILIKE ? OR users.email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}
	return c.JSON(patients)
}

// GetPatient returns a patient profile by ID.
func GetPatient(c *fiber.Ctx) error {
	id := c.Params("id")
	var patient models.Patient
	if err := db.DB.Preload("User").First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
		})
	}
	return c.JSON(patient)
}

// CreatePatient creates the user account and the patient profile together.
func CreatePatient(c *fiber.Ctx) error {
	var req CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
		})
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

	var patient models.Patient
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashedPassword),
			Role:     models.RolePatient,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		patient = models.Patient{
			UserID:                 user.ID,
			DateOfBirth:            req.DateOfBirth,
			Gender:                 req.Gender,
			BloodGroup:             req.BloodGroup,
			Address:                req.Address,
			PhoneNumber:            req.PhoneNumber,
			EmergencyContactName:   req.EmergencyContactName,
			EmergencyContactNumber: req.EmergencyContactNumber,
			Allergies:              req.Allergies,
			ChronicDiseases:        req.ChronicDiseases,
			CurrentMedications:     req.CurrentMedications,
			InsuranceProvider:      req.InsuranceProvider,
			InsuranceNumber:        req.InsuranceNumber,
		}
		return tx.Create(&patient).Error
	})
	if err != nil {
		log.Printf("Error creating patient: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create patient",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Preload("User").First(&patient, patient.ID).Error; err == nil {
		patient.User.Password = ""
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

// UpdatePatient updates a patient profile.
func UpdatePatient(c *fiber.Ctx) error {
	id := c.Params("id")
	var patient models.Patient
	if err := db.DB.First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
		})
	}
	if err := c.BodyParser(&patient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&patient).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update patient",
			Error:   err.Error(),
		})
	}
	return c.JSON(patient)
}

// TogglePatientAccountStatus flips the linked account between active and
// deactivated. Deactivated accounts cannot sign in.
func TogglePatientAccountStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var patient models.Patient
	if err := db.DB.Preload("User").First(&patient, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
		})
	}

	patient.User.IsActive = !patient.User.IsActive
	if err := db.DB.Save(&patient.User).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update patient account",
			Error:   err.Error(),
		})
	}

	patient.User.Password = ""
	return c.JSON(patient)
}
