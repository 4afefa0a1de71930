package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"confportal/internal/domain"
)

// ErrRegistrationAlreadyPaid means the registration was claimed by an earlier
// verification whose payment row could not be found for the supplied payment id.
var ErrRegistrationAlreadyPaid = errors.New("registration already paid")

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreateWithClaim persists a verified payment and marks its registration paid
// in one transaction. The registration update is conditional on is_paid=false,
// so concurrent verifications for the same registration race on a single row:
// the loser finds the winner's payment by razorpay_payment_id and returns it.
// Returns (payment, created) where created is false for the idempotent path.
func (r *PaymentRepository) CreateWithClaim(ctx context.Context, p *domain.Payment, registrationNo string) (*domain.Payment, bool, error) {
	var (
		out     *domain.Payment
		created bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Registration{}).
			Where("id = ? AND is_paid = ?", p.RegistrationID, false).
			Updates(map[string]any{
				"is_paid":           true,
				"reg_num_generated": true,
				"registration_no":   registrationNo,
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var existing domain.Payment
			err := tx.Where("razorpay_payment_id = ?", p.RazorpayPaymentID).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationAlreadyPaid
			}
			if err != nil {
				return err
			}
			out = &existing
			return nil
		}

		if err := tx.Create(p).Error; err != nil {
			if !isUniqueViolation(err) {
				return err
			}
			// same payment id verified against a different registration before;
			// roll the claim back and surface the stored row
			return ErrRegistrationAlreadyPaid
		}
		out = p
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).
		Preload("Registration").
		Preload("Registration.Event").
		Preload("Registration.Category").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByRazorpayPaymentID(ctx context.Context, razorpayPaymentID string) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).
		Where("razorpay_payment_id = ?", razorpayPaymentID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Preload("Registration").
		Preload("Registration.Event").
		Preload("Registration.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// modernc sqlite driver used in local/dev setups
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
