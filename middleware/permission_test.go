package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/models"
)

func newRoleApp(role string, allowed ...models.Role) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("role", role)
		}
		return c.Next()
	})
	app.Patch("/guarded", RequireRole(allowed...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRole_CancellationRoles(t *testing.T) {
	// The set used on the cancel route: staff plus the patient; nurses stay
	// out.
	allowed := []models.Role{models.RoleAdmin, models.RoleReceptionist, models.RoleDoctor, models.RolePatient}

	cases := []struct {
		name string
		role string
		want int
	}{
		{"admin allowed", "admin", fiber.StatusOK},
		{"receptionist allowed", "receptionist", fiber.StatusOK},
		{"doctor allowed", "doctor", fiber.StatusOK},
		{"patient allowed", "patient", fiber.StatusOK},
		{"nurse rejected", "nurse", fiber.StatusForbidden},
		{"unknown role rejected", "janitor", fiber.StatusForbidden},
		{"missing role", "", fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newRoleApp(tc.role, allowed...)
			req := httptest.NewRequest(fiber.MethodPatch, "/guarded", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestRequireRole_StaffOnly(t *testing.T) {
	app := newRoleApp("patient", models.StaffRoles...)

	req := httptest.NewRequest(fiber.MethodPatch, "/guarded", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
}
