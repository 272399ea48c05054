package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"boba-pos/models"
)

type RedeemResult struct {
	PointsRedeemed  int
	DiscountAmount  float64
	RemainingPoints int
}

type AccrueResult struct {
	PointsAdded    int
	NewTotalPoints int
}

type RewardService interface {
	Redeem(ctx context.Context, customerID uint, points int) (*RedeemResult, error)
	Accrue(ctx context.Context, customerID uint, points int) (*AccrueResult, error)
	LookupByPhone(ctx context.Context, phone string) (*models.Customer, error)
}

type rewardService struct {
	db *gorm.DB
}

func NewRewardService(db *gorm.DB) RewardService {
	return &rewardService{db: db}
}

// PointsPerDollar is the redemption rate: 10 points buy $1 off.
const PointsPerDollar = 10

// Redeem decrements the balance with a single conditional update, so
// two concurrent redemptions can never both drain the same points.
func (s *rewardService) Redeem(ctx context.Context, customerID uint, points int) (*RedeemResult, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}

	res := s.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ? AND reward_points >= ?", customerID, points).
		UpdateColumn("reward_points", gorm.Expr("reward_points - ?", points))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var customer models.Customer
		if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, err
		}
		return nil, ErrInsufficientPoints
	}

	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		return nil, err
	}
	return &RedeemResult{
		PointsRedeemed:  points,
		DiscountAmount:  float64(points) / PointsPerDollar,
		RemainingPoints: customer.RewardPoints,
	}, nil
}

// Accrue adds points additively in the database, never read-then-write.
func (s *rewardService) Accrue(ctx context.Context, customerID uint, points int) (*AccrueResult, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}

	res := s.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		UpdateColumn("reward_points", gorm.Expr("reward_points + ?", points))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrCustomerNotFound
	}

	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		return nil, err
	}
	return &AccrueResult{PointsAdded: points, NewTotalPoints: customer.RewardPoints}, nil
}

func (s *rewardService) LookupByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return findCustomerByPhone(s.db.WithContext(ctx), phone)
}
