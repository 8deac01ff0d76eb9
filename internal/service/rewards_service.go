package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/repository"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/pkg/entity"
)

type RewardsService struct {
	rewardsRepo     repository.RewardsRepositoryI
	redemptionsRepo repository.RedemptionsRepositoryI
	kidsRepo        repository.KidsRepositoryI
	familiesRepo    repository.FamiliesRepositoryI
}

func NewRewardsService(
	rewardsRepo repository.RewardsRepositoryI,
	redemptionsRepo repository.RedemptionsRepositoryI,
	kidsRepo repository.KidsRepositoryI,
	familiesRepo repository.FamiliesRepositoryI,
) *RewardsService {
	if rewardsRepo == nil || redemptionsRepo == nil || kidsRepo == nil || familiesRepo == nil {
		log.Fatal("on rewards service provided nil repos")
	}
	return &RewardsService{
		rewardsRepo:     rewardsRepo,
		redemptionsRepo: redemptionsRepo,
		kidsRepo:        kidsRepo,
		familiesRepo:    familiesRepo,
	}
}

func (rs *RewardsService) family(ctx context.Context, ownerID uuid.UUID) (*entity.Family, error) {
	family, err := rs.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	return family, nil
}

func (rs *RewardsService) CreateReward(ctx context.Context, ownerID uuid.UUID, req *CreateRewardRequest) (*entity.Reward, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	family, err := rs.family(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	r := entity.Reward{
		FamilyID:   family.ID,
		Title:      req.Title,
		PointsCost: req.PointsCost,
		IsActive:   true,
	}
	id, err := rs.rewardsRepo.Create(ctx, &r)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	reward, err := rs.rewardsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return reward, nil
}

func (rs *RewardsService) GetRewards(ctx context.Context, ownerID uuid.UUID, includeInactive bool) ([]*entity.Reward, error) {
	family, err := rs.family(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	rewardsList, err := rs.rewardsRepo.GetByFamilyID(ctx, family.ID, includeInactive)
	if err != nil {
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return rewardsList, nil
}

func (rs *RewardsService) familyReward(ctx context.Context, ownerID, rewardID uuid.UUID) (*entity.Reward, error) {
	family, err := rs.family(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	reward, err := rs.rewardsRepo.GetByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardNotFound) {
			return nil, err
		}
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	if reward.FamilyID != family.ID {
		return nil, errorvalues.ErrWrongFamily
	}
	return reward, nil
}

func (rs *RewardsService) UpdateReward(ctx context.Context, ownerID, rewardID uuid.UUID, req *UpdateRewardRequest) (*entity.Reward, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	reward, err := rs.familyReward(ctx, ownerID, rewardID)
	if err != nil {
		return nil, err
	}
	reward.Title = req.Title
	reward.PointsCost = req.PointsCost
	reward.IsActive = req.IsActive
	err = rs.rewardsRepo.Update(ctx, reward)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardNotFound) {
			return nil, err
		}
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return reward, nil
}

func (rs *RewardsService) DeleteReward(ctx context.Context, ownerID, rewardID uuid.UUID) error {
	reward, err := rs.familyReward(ctx, ownerID, rewardID)
	if err != nil {
		return err
	}
	err = rs.rewardsRepo.Delete(ctx, reward.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardNotFound) {
			return err
		}
		return errors.New("rewards repository error: " + err.Error())
	}
	return nil
}

// RequestRedemption checks affordability up front so kids see the rejection
// immediately, but the balance is only debited when a parent approves.
func (rs *RewardsService) RequestRedemption(ctx context.Context, req *RedemptionRequest) (*entity.Redemption, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	reward, err := rs.rewardsRepo.GetByID(ctx, req.RewardID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardNotFound) {
			return nil, err
		}
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	if !reward.IsActive {
		return nil, errorvalues.ErrRewardNotFound
	}
	kid, err := rs.kidsRepo.GetByID(ctx, req.KidID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKidNotFound) {
			return nil, err
		}
		return nil, errors.New("kids repository error: " + err.Error())
	}
	if kid.FamilyID != reward.FamilyID {
		return nil, errorvalues.ErrWrongFamily
	}
	if !rewards.CanAfford(kid.PointsBalance, reward.PointsCost) {
		return nil, errorvalues.ErrInsufficientBalance
	}
	redemption := &entity.Redemption{
		RewardID:   reward.ID,
		KidID:      kid.ID,
		PointsCost: reward.PointsCost,
		Status:     entity.RedemptionStatusPending,
	}
	id, err := rs.redemptionsRepo.Create(ctx, redemption)
	if err != nil {
		return nil, errors.New("redemptions repository error: " + err.Error())
	}
	redemption.ID = id
	return redemption, nil
}

func (rs *RewardsService) ListPendingRedemptions(ctx context.Context, ownerID uuid.UUID) ([]*entity.Redemption, error) {
	family, err := rs.family(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	redemptions, err := rs.redemptionsRepo.ListPendingByFamily(ctx, family.ID)
	if err != nil {
		return nil, errors.New("redemptions repository error: " + err.Error())
	}
	return redemptions, nil
}

func (rs *RewardsService) ListKidRedemptions(ctx context.Context, ownerID, kidID uuid.UUID, limit int) ([]*entity.Redemption, error) {
	family, err := rs.family(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	kid, err := rs.kidsRepo.GetByID(ctx, kidID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKidNotFound) {
			return nil, err
		}
		return nil, errors.New("kids repository error: " + err.Error())
	}
	if kid.FamilyID != family.ID {
		return nil, errorvalues.ErrWrongFamily
	}
	redemptions, err := rs.redemptionsRepo.ListByKid(ctx, kidID, limit)
	if err != nil {
		return nil, errors.New("redemptions repository error: " + err.Error())
	}
	return redemptions, nil
}

// familyRedemption loads the redemption and verifies its kid belongs to the
// caller's family.
func (rs *RewardsService) familyRedemption(ctx context.Context, ownerID, redemptionID uuid.UUID) (*entity.Redemption, *entity.Kid, error) {
	family, err := rs.family(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	redemption, err := rs.redemptionsRepo.GetByID(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRedemptionNotFound) {
			return nil, nil, err
		}
		return nil, nil, errors.New("redemptions repository error: " + err.Error())
	}
	kid, err := rs.kidsRepo.GetByID(ctx, redemption.KidID)
	if err != nil {
		return nil, nil, errors.New("kids repository error: " + err.Error())
	}
	if kid.FamilyID != family.ID {
		return nil, nil, errorvalues.ErrWrongFamily
	}
	return redemption, kid, nil
}

// ApproveRedemption re-checks the balance at approval time: earlier approvals
// may have drained it since the request was made.
func (rs *RewardsService) ApproveRedemption(ctx context.Context, ownerID, redemptionID uuid.UUID) (*entity.Redemption, error) {
	redemption, kid, err := rs.familyRedemption(ctx, ownerID, redemptionID)
	if err != nil {
		return nil, err
	}
	if redemption.Status != entity.RedemptionStatusPending {
		return nil, errorvalues.ErrRedemptionProcessed
	}
	if !rewards.CanAfford(kid.PointsBalance, redemption.PointsCost) {
		return nil, errorvalues.ErrInsufficientBalance
	}
	newBalance := rewards.NewBalance(kid.PointsBalance, -redemption.PointsCost)
	err = rs.redemptionsRepo.Approve(ctx, redemption.ID, ownerID, kid.ID, newBalance)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRedemptionProcessed) {
			return nil, err
		}
		return nil, errors.New("redemptions repository error: " + err.Error())
	}
	redemption.Status = entity.RedemptionStatusApproved
	redemption.ApprovedByID = &ownerID
	return redemption, nil
}

func (rs *RewardsService) RejectRedemption(ctx context.Context, ownerID, redemptionID uuid.UUID) error {
	redemption, _, err := rs.familyRedemption(ctx, ownerID, redemptionID)
	if err != nil {
		return err
	}
	if redemption.Status != entity.RedemptionStatusPending {
		return errorvalues.ErrRedemptionProcessed
	}
	err = rs.redemptionsRepo.Reject(ctx, redemption.ID, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRedemptionProcessed) {
			return err
		}
		return errors.New("redemptions repository error: " + err.Error())
	}
	return nil
}

func (rs *RewardsService) FulfillRedemption(ctx context.Context, ownerID, redemptionID uuid.UUID) error {
	redemption, _, err := rs.familyRedemption(ctx, ownerID, redemptionID)
	if err != nil {
		return err
	}
	if redemption.Status != entity.RedemptionStatusApproved {
		return errorvalues.ErrRedemptionProcessed
	}
	err = rs.redemptionsRepo.Fulfill(ctx, redemption.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRedemptionProcessed) {
			return err
		}
		return errors.New("redemptions repository error: " + err.Error())
	}
	return nil
}
