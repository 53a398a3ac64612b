package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/db"
	"github.com/medicore/hospital-backend/models"
	"github.com/medicore/hospital-backend/utils"
)

// GetDepartments lists departments, optionally filtered by a name search.
func GetDepartments(c *fiber.Ctx) error {
	query := db.DB.Order("name asc")
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var departments []models.Department
	if err := query.Find(&departments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch departments",
			Error:   err.Error(),
		})
	}
	return c.JSON(departments)
}

// GetDepartment returns a department by ID.
func GetDepartment(c *fiber.Ctx) error {
	id := c.Params("id")
	var department models.Department
	if err := db.DB.First(&department, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Department not found",
		})
	}
	return c.JSON(department)
}

// CreateDepartment creates a new department.
func CreateDepartment(c *fiber.Ctx) error {
	department := new(models.Department)
	if err := c.BodyParser(department); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if department.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Department name is required",
		})
	}

	department.IsActive = true
	if err := db.DB.Create(department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create department",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(department)
}

// UpdateDepartment updates an existing department.
func UpdateDepartment(c *fiber.Ctx) error {
	id := c.Params("id")
	var department models.Department
	if err := db.DB.First(&department, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Department not found",
		})
	}
	if err := c.BodyParser(&department); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update department",
			Error:   err.Error(),
		})
	}
	return c.JSON(department)
}

// ToggleDepartmentStatus flips a department between active and inactive.
func ToggleDepartmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var department models.Department
	if err := db.DB.First(&department, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Department not found",
		})
	}

	department.IsActive = !department.IsActive
	if err := db.DB.Save(&department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update department",
			Error:   err.Error(),
		})
	}
	return c.JSON(department)
}

// DeleteDepartment soft-deletes a department with no doctors assigned.
func DeleteDepartment(c *fiber.Ctx) error {
	id := c.Params("id")
	var department models.Department
	if err := db.DB.First(&department, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Department not found",
		})
	}

	var doctorCount int64
	if err := db.DB.Model(&models.Doctor{}).
		Where("department_id = ?", department.ID).
		Count(&doctorCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete department",
			Error:   err.Error(),
		})
	}
	if doctorCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot delete a department with doctors assigned",
		})
	}

	if err := db.DB.Delete(&department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete department",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
