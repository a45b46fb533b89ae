package overtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/victorsdou/payroll-backend-go/internal/domain/employee"
	"github.com/victorsdou/payroll-backend-go/internal/domain/overtime"
	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
	"github.com/victorsdou/payroll-backend-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtimeRepo overtime.OvertimeRepository
	payslipRepo  payroll.PayslipRepository
	periodRepo   payroll.PeriodRepository
	employeeRepo employee.EmployeeRepository
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	payslipRepo payroll.PayslipRepository,
	periodRepo payroll.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo: overtimeRepo,
		payslipRepo:  payslipRepo,
		periodRepo:   periodRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *OvertimeServiceImpl) Add(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRecordResponse{}, err
	}

	// A record is either holiday work or weekday overtime, never both.
	if req.HolidayHours.IsPositive() && (req.Tier1Hours.IsPositive() || req.Tier2Hours.IsPositive()) {
		return overtime.OvertimeRecordResponse{}, overtime.ErrConflictingOvertimeKind
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return overtime.OvertimeRecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	record := overtime.OvertimeRecord{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		IsHoliday:  req.IsHoliday,
		Note:       req.Note,
	}
	if req.IsHoliday {
		record.HolidayHours = req.HolidayHours
	} else {
		record.Tier1Hours = req.Tier1Hours
		record.Tier2Hours = req.Tier2Hours
	}

	created, err := s.overtimeRepo.Create(ctx, record)
	if err != nil {
		return overtime.OvertimeRecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

// Remove deletes an overtime record unless the payslip covering its period is
// already paid; paid periods keep their audit trail intact.
func (s *OvertimeServiceImpl) Remove(ctx context.Context, id string) error {
	record, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	period, err := s.periodRepo.GetByYearMonth(ctx, record.Date.Year(), int(record.Date.Month()))
	if err != nil && !errors.Is(err, payroll.ErrPeriodNotFound) {
		return err
	}
	if err == nil {
		payslip, err := s.payslipRepo.GetByEmployeePeriod(ctx, record.EmployeeID, period.ID)
		if err != nil && !errors.Is(err, payroll.ErrPayslipNotFound) {
			return err
		}
		if err == nil && payslip.Status == payroll.PayslipStatusPaid {
			return fmt.Errorf("%w: overtime record belongs to a paid period", overtime.ErrPayslipAlreadyPaid)
		}
	}

	return s.overtimeRepo.Delete(ctx, id)
}

func (s *OvertimeServiceImpl) ListForPeriod(ctx context.Context, employeeID string, year, month int) ([]overtime.OvertimeRecordResponse, error) {
	req := payroll.ProcessPeriodRequest{Year: year, Month: month}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bounds := payroll.PayrollPeriod{Year: year, Month: month}
	start, end := bounds.Bounds()

	records, err := s.overtimeRepo.ListForRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]overtime.OvertimeRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result, nil
}

func mapToRecordResponse(r overtime.OvertimeRecord) overtime.OvertimeRecordResponse {
	return overtime.OvertimeRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		Date:         r.Date.Format("2006-01-02"),
		IsHoliday:    r.IsHoliday,
		HolidayHours: r.HolidayHours,
		Tier1Hours:   r.Tier1Hours,
		Tier2Hours:   r.Tier2Hours,
		Note:         r.Note,
	}
}
