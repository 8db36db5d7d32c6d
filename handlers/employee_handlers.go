package handlers

import (
	"app/database"
	"app/models"
	"app/utils"
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// HandleListEmployees returns every employee ordered by name. Password hashes
// never leave the model.
func HandleListEmployees(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, `
		SELECT id, name, email, phone, role, is_active, created_at, updated_at
		FROM employees ORDER BY name
	`)
	if err != nil {
		log.Printf("Error listing employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve employees"})
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Role, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			log.Printf("Error scanning employee row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve employees"})
		}
		employees = append(employees, e)
	}
	return c.JSON(employees)
}

// HandleCreateEmployee adds a staff member with a bcrypt-hashed password.
func HandleCreateEmployee(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var input models.CreateEmployeeRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "name, email and password are required"})
	}
	role, ok := utils.ValidateAndNormalizeRole(input.Role)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid role"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for %s: %v", input.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create employee"})
	}

	employee := models.Employee{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     role,
		IsActive: true,
	}
	err = db.QueryRow(ctx, `
		INSERT INTO employees (name, email, phone, role, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, created_at, updated_at
	`, employee.Name, employee.Email, employee.Phone, employee.Role, string(hash),
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		log.Printf("Error creating employee %s: %v", input.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create employee"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": employee})
}

// HandleUpdateEmployee updates the editable employee fields. The password is
// only rehashed when a new one is supplied.
func HandleUpdateEmployee(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid employee id"})
	}
	var input struct {
		Name     string  `json:"name"`
		Email    string  `json:"email"`
		Phone    *string `json:"phone,omitempty"`
		Role     string  `json:"role"`
		Password string  `json:"password,omitempty"`
		IsActive *bool   `json:"is_active,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	role, ok := utils.ValidateAndNormalizeRole(input.Role)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid role"})
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	var updated models.Employee
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password for employee %d: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update employee"})
		}
		err = db.QueryRow(ctx, `
			UPDATE employees
			SET name = $1, email = $2, phone = $3, role = $4, password_hash = $5, is_active = $6, updated_at = NOW()
			WHERE id = $7
			RETURNING id, name, email, phone, role, is_active, created_at, updated_at
		`, input.Name, input.Email, input.Phone, role, string(hash), isActive, id,
		).Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Phone, &updated.Role,
			&updated.IsActive, &updated.CreatedAt, &updated.UpdatedAt)
	} else {
		err = db.QueryRow(ctx, `
			UPDATE employees
			SET name = $1, email = $2, phone = $3, role = $4, is_active = $5, updated_at = NOW()
			WHERE id = $6
			RETURNING id, name, email, phone, role, is_active, created_at, updated_at
		`, input.Name, input.Email, input.Phone, role, isActive, id,
		).Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Phone, &updated.Role,
			&updated.IsActive, &updated.CreatedAt, &updated.UpdatedAt)
	}
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Employee not found"})
		}
		log.Printf("Error updating employee %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update employee"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": updated})
}

// HandleDeleteEmployee deactivates an employee instead of deleting the row,
// so salary history stays attached.
func HandleDeleteEmployee(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid employee id"})
	}

	tag, err := db.Exec(ctx, `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deactivating employee %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete employee"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Employee not found"})
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Employee deactivated"})
}

// HandleListSalaryPayments returns the salary history for one employee,
// newest payment first.
func HandleListSalaryPayments(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid employee id"})
	}

	rows, err := db.Query(ctx, `
		SELECT id, employee_id, amount, payment_date, notes
		FROM salary_payments WHERE employee_id = $1
		ORDER BY payment_date DESC, id DESC
	`, id)
	if err != nil {
		log.Printf("Error listing salary payments for employee %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve salary payments"})
	}
	defer rows.Close()

	payments := []models.SalaryPayment{}
	for rows.Next() {
		var p models.SalaryPayment
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Amount, &p.PaymentDate, &p.Notes); err != nil {
			log.Printf("Error scanning salary payment row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve salary payments"})
		}
		payments = append(payments, p)
	}
	return c.JSON(payments)
}

// HandleCreateSalaryPayment records a salary payment for an employee.
func HandleCreateSalaryPayment(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid employee id"})
	}
	var input struct {
		Amount float64 `json:"amount"`
		Notes  *string `json:"notes,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "amount must be positive"})
	}

	payment := models.SalaryPayment{EmployeeID: int64(id), Amount: input.Amount, Notes: input.Notes}
	err = db.QueryRow(ctx, `
		INSERT INTO salary_payments (employee_id, amount, payment_date, notes)
		VALUES ($1, $2, CURRENT_DATE, $3)
		RETURNING id, payment_date
	`, id, input.Amount, input.Notes).Scan(&payment.ID, &payment.PaymentDate)
	if err != nil {
		log.Printf("Error recording salary payment for employee %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to record salary payment"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": payment})
}
