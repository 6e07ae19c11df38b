package employee

import (
	"testing"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fields(t *testing.T, err error) []string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	var out []string
	for _, e := range verrs {
		out = append(out, e.Field)
	}
	return out
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		MonthlySalary: decimal.NewFromInt(3000),
	}
	assert.NoError(t, valid.Validate())

	bad := CreateEmployeeRequest{
		ID:            "EMP 001",
		Email:         "nope",
		OfficeID:      strPtr("office-1"),
		JoiningDate:   strPtr("01/02/2024"),
		MonthlySalary: decimal.NewFromInt(-1),
	}
	assert.ElementsMatch(t,
		[]string{"employee_id", "name", "email", "office_id", "joining_date", "monthly_salary"},
		fields(t, bad.Validate()))
}

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	req := UpdateEmployeeRequest{ID: "EMP001", Name: strPtr("")}
	assert.Equal(t, []string{"name"}, fields(t, req.Validate()))

	status := 3
	req = UpdateEmployeeRequest{ID: "EMP001", Status: &status}
	assert.Equal(t, []string{"status"}, fields(t, req.Validate()))

	assert.True(t, (&UpdateEmployeeRequest{ID: "EMP001"}).IsEmpty())
}

func TestEmployee_ToResponseRoundsSalary(t *testing.T) {
	e := Employee{ID: "EMP001", MonthlySalary: decimal.RequireFromString("1234.5678"), Status: StatusActive}
	assert.Equal(t, "1234.57", e.ToResponse().MonthlySalary.String())
}
