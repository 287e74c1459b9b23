package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/repo"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type CustomerService struct {
	Repo *repo.GormRepo
}

func NewCustomerService(r *repo.GormRepo) *CustomerService {
	return &CustomerService{Repo: r}
}

func (s *CustomerService) FindAll(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.GetCustomers(ctx)
}

func (s *CustomerService) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.Repo.GetCustomer(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, id)
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customer, err := s.Repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: customer %q", ErrNotFound, email)
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) FindByStatus(ctx context.Context, status models.CustomerStatus) ([]models.Customer, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown customer status %q", ErrValidation, status)
	}
	return s.Repo.GetCustomersByStatus(ctx, status)
}

func (s *CustomerService) FindActive(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.GetCustomersByStatus(ctx, models.CustomerStatusActive)
}

func (s *CustomerService) SearchByName(ctx context.Context, q string) ([]models.Customer, error) {
	return s.Repo.SearchCustomersByName(ctx, q)
}

func (s *CustomerService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.Repo.CustomerExistsByEmail(ctx, email)
}

// Save creates or updates a customer. New customers get ACTIVE status
// and a registration date when none is set; an already registered email
// is rejected.
func (s *CustomerService) Save(ctx context.Context, customer *models.Customer) error {
	if customer == nil {
		return fmt.Errorf("%w: customer is required", ErrValidation)
	}
	if strings.TrimSpace(customer.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if strings.TrimSpace(customer.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrValidation)
	}
	if strings.TrimSpace(customer.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailRe.MatchString(customer.Email) {
		return fmt.Errorf("%w: invalid email %q", ErrValidation, customer.Email)
	}

	if customer.ID == 0 {
		exists, err := s.Repo.CustomerExistsByEmail(ctx, customer.Email)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: email %q already registered", ErrValidation, customer.Email)
		}
		if customer.Status == "" {
			customer.Status = models.CustomerStatusActive
		}
		if customer.RegistrationDate.IsZero() {
			customer.RegistrationDate = time.Now().UTC()
		}
	}

	return s.Repo.SaveCustomer(ctx, customer)
}

func (s *CustomerService) UpdateStatus(ctx context.Context, id uint, status models.CustomerStatus) (*models.Customer, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown customer status %q", ErrValidation, status)
	}
	customer, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Status = status
	if err := s.Repo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Suspend(ctx context.Context, id uint) (*models.Customer, error) {
	return s.UpdateStatus(ctx, id, models.CustomerStatusSuspended)
}

func (s *CustomerService) Activate(ctx context.Context, id uint) (*models.Customer, error) {
	return s.UpdateStatus(ctx, id, models.CustomerStatusActive)
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	exists, err := s.Repo.CustomerExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: customer %d", ErrNotFound, id)
	}
	return s.Repo.DeleteCustomer(ctx, id)
}

func (s *CustomerService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountCustomers(ctx)
}
