package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ezsail-backend/models"

	mysqldrv "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService covers the platform-admin operations: operators, hotels and
// staff accounts.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func isDuplicateEntry(err error) bool {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return true
	}
	// sqlite (tests) and other drivers
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

func (s *AdminService) CreateOperator(companyName, contactEmail, phone string, commissionPct float64) (*models.Operator, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, errors.New("validation: company_name is required")
	}
	if math.IsNaN(commissionPct) || math.IsInf(commissionPct, 0) || commissionPct < 0 || commissionPct > 100 {
		return nil, errors.New("validation: commission_pct must be between 0 and 100")
	}

	op := models.Operator{
		CompanyName:           companyName,
		ContactEmail:          strings.TrimSpace(contactEmail),
		Phone:                 strings.TrimSpace(phone),
		PlatformCommissionPct: commissionPct,
	}
	if err := s.DB.Create(&op).Error; err != nil {
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}
	return &op, nil
}

func (s *AdminService) ListOperators() ([]models.Operator, error) {
	var ops []models.Operator
	if err := s.DB.Order("id ASC").Find(&ops).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve operators: %w", err)
	}
	if ops == nil {
		ops = []models.Operator{}
	}
	return ops, nil
}

// SetOperatorCommission updates the percentage applied to every future
// charter itinerary of the operator. Existing itineraries keep their stored
// breakdown.
func (s *AdminService) SetOperatorCommission(operatorID uint, pct float64) (*models.Operator, error) {
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 || pct > 100 {
		return nil, errors.New("validation: commission_pct must be between 0 and 100")
	}

	var op models.Operator
	if err := s.DB.First(&op, operatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("operator_not_found")
		}
		return nil, err
	}
	if err := s.DB.Model(&op).Update("platform_commission_pct", pct).Error; err != nil {
		return nil, fmt.Errorf("failed to update operator commission: %w", err)
	}
	op.PlatformCommissionPct = pct
	return &op, nil
}

func (s *AdminService) CreateHotel(name, city, contactEmail, phone string) (*models.Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("validation: name is required")
	}
	h := models.Hotel{
		Name:         name,
		City:         strings.TrimSpace(city),
		ContactEmail: strings.TrimSpace(contactEmail),
		Phone:        strings.TrimSpace(phone),
	}
	if err := s.DB.Create(&h).Error; err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return &h, nil
}

func (s *AdminService) ListHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}
	return hotels, nil
}

type CreateUserInput struct {
	FullName   string
	Email      string
	Password   string
	Role       string
	OperatorID *uint
	HotelID    *uint
}

// CreateUser provisions a b2b or concierge account. b2b users need an
// operator, concierges a hotel.
func (s *AdminService) CreateUser(in CreateUserInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return nil, errors.New("validation: email and password are required")
	}
	if !models.IsValidRole(in.Role) {
		return nil, errors.New("validation: invalid role")
	}
	switch in.Role {
	case models.RoleB2B:
		if in.OperatorID == nil || *in.OperatorID == 0 {
			return nil, errors.New("validation: b2b user requires operator_id")
		}
		var op models.Operator
		if err := s.DB.First(&op, *in.OperatorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("operator_not_found")
			}
			return nil, err
		}
	case models.RoleConcierge:
		if in.HotelID == nil || *in.HotelID == 0 {
			return nil, errors.New("validation: concierge user requires hotel_id")
		}
		var h models.Hotel
		if err := s.DB.First(&h, *in.HotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("hotel_not_found")
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		FullName:   strings.TrimSpace(in.FullName),
		Email:      in.Email,
		Password:   string(hash),
		Role:       in.Role,
		OperatorID: in.OperatorID,
		HotelID:    in.HotelID,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, errors.New("email_already_registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}
