package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

type personModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex;size:150"`
	Email        string    `gorm:"column:email;uniqueIndex;size:254"`
	PasswordHash string    `gorm:"column:password_hash"`
	FirstName    string    `gorm:"column:first_name;size:30"`
	LastName     string    `gorm:"column:last_name;size:30"`
	Role         string    `gorm:"column:role;size:20"`
	IsActive     bool      `gorm:"column:is_active"`
	DateJoined   time.Time `gorm:"column:date_joined"`
}

func (personModel) TableName() string { return "persons" }

type phoneNumberModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	PersonID int64  `gorm:"column:person_id;index"`
	Number   string `gorm:"column:number;size:15"`
}

func (phoneNumberModel) TableName() string { return "phone_numbers" }

func toDomainPerson(m personModel) *domain.Person {
	return &domain.Person{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         domain.PersonRole(m.Role),
		IsActive:     m.IsActive,
		DateJoined:   m.DateJoined,
	}
}

func toPersonModel(p *domain.Person) personModel {
	return personModel{
		ID:           p.ID,
		Username:     strings.TrimSpace(p.Username),
		Email:        strings.TrimSpace(strings.ToLower(p.Email)),
		PasswordHash: p.PasswordHash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Role:         string(p.Role),
		IsActive:     p.IsActive,
		DateJoined:   p.DateJoined,
	}
}

// Create inserts the person and any attached phone numbers in one
// transaction.
func (r *PersonRepository) Create(ctx context.Context, p *domain.Person) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toPersonModel(p)
		if m.DateJoined.IsZero() {
			m.DateJoined = time.Now()
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		phones := p.PhoneNumbers
		*p = *toDomainPerson(m)
		for _, ph := range phones {
			pm := phoneNumberModel{PersonID: m.ID, Number: ph.Number}
			if err := tx.Create(&pm).Error; err != nil {
				return err
			}
			p.PhoneNumbers = append(p.PhoneNumbers, domain.PhoneNumber{
				ID:       pm.ID,
				PersonID: pm.PersonID,
				Number:   pm.Number,
			})
		}
		return nil
	})
}

func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	var m personModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	p := toDomainPerson(m)
	var phones []phoneNumberModel
	if err := r.db.WithContext(ctx).Where("person_id = ?", id).Find(&phones).Error; err != nil {
		return nil, err
	}
	for _, ph := range phones {
		p.PhoneNumbers = append(p.PhoneNumbers, domain.PhoneNumber{
			ID:       ph.ID,
			PersonID: ph.PersonID,
			Number:   ph.Number,
		})
	}
	return p, nil
}

func (r *PersonRepository) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	var m personModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPerson(m), nil
}

func (r *PersonRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&personModel{}).
		Where("username = ?", strings.TrimSpace(username)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *PersonRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&personModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// SetRole flips the explicit role attribute, e.g. when an employee record
// is linked.
func (r *PersonRepository) SetRole(ctx context.Context, personID int64, role domain.PersonRole) error {
	return r.db.WithContext(ctx).Model(&personModel{}).
		Where("id = ?", personID).
		Update("role", string(role)).Error
}
