package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
	path      string
}

func NewEmployeeRepository(dir string) (employee.EmployeeRepository, error) {
	r := &employeeRepositoryImpl{
		employees: make(map[string]employee.Employee),
		path:      storeFile(dir, "employees"),
	}

	var records []employee.Employee
	if err := loadSnapshot(r.path, &records); err != nil {
		return nil, err
	}
	for _, e := range records {
		r.employees[e.ID] = e
	}
	return r, nil
}

func (r *employeeRepositoryImpl) persistLocked() error {
	records := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		records = append(records, e)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return saveSnapshot(r.path, records)
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if strings.EqualFold(existing.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	r.employees[emp.ID] = emp
	if err := r.persistLocked(); err != nil {
		delete(r.employees, emp.ID)
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if strings.EqualFold(emp.Email, email) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		employees = append(employees, emp)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].Name < employees[j].Name })
	return employees, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.employees[emp.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	r.employees[emp.ID] = emp
	if err := r.persistLocked(); err != nil {
		r.employees[emp.ID] = prev
		return err
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.employees[id]
	if !ok {
		return nil
	}
	delete(r.employees, id)
	if err := r.persistLocked(); err != nil {
		r.employees[id] = prev
		return err
	}
	return nil
}
