package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/repository"
	"github.com/jobport-bd/applicant-service/pkg/logger"
	"github.com/jobport-bd/applicant-service/pkg/normalize"
	"github.com/jobport-bd/applicant-service/pkg/query"
	"github.com/jobport-bd/applicant-service/pkg/validation"
)

// userFilterFields is the listing filter whitelist for accounts. Keys not in
// this list are ignored.
var userFilterFields = []query.Field{
	{Key: "firstName", Column: "first_name"},
	{Key: "lastName", Column: "last_name"},
	{Key: "phone", Column: "phone"},
	{Key: "email", Column: "email"},
}

// userSortableColumns maps accepted sortBy keys to columns.
var userSortableColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"createdAt": "created_at",
}

type UserService struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
}

func NewUserService(userRepo repository.UserRepository, validator *validation.Validator) *UserService {
	return &UserService{
		userRepo:  userRepo,
		validator: validator,
	}
}

func parseUserID(id string) (uint, error) {
	parsed, err := strconv.ParseUint(id, 10, 64)
	if err != nil || parsed == 0 {
		return 0, apperrors.ErrInvalidUserID
	}
	return uint(parsed), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapInternal(err)
	}

	return SanitizeUser(user), nil
}

// GetAll lists accounts with whitelisted partial-match filters and a clamped
// pagination window.
func (s *UserService) GetAll(ctx context.Context, filter dto.UserFilter, opts query.Options) ([]dto.UserResponse, int64, query.Pagination, error) {
	filters := map[string]string{
		"firstName": filter.FirstName,
		"lastName":  filter.LastName,
		"phone":     filter.Phone,
		"email":     filter.Email,
	}

	conditions := query.BuildConditions(filters, userFilterFields)
	orderBy := query.ResolveSort(opts, userSortableColumns)
	page := query.Calculate(opts)

	users, total, err := s.userRepo.List(ctx, conditions, orderBy, page)
	if err != nil {
		return nil, 0, page, apperrors.WrapInternal(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *SanitizeUser(&users[i]))
	}

	return responses, total, page, nil
}

// Update applies a partial account update. The registered email is immutable:
// any attempt to send one is rejected outright rather than ignored.
func (s *UserService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		return nil, apperrors.ErrEmailImmutable
	}

	if messages := s.validator.Validate(req); len(messages) > 0 {
		return nil, apperrors.NewValidationError(validation.Join(messages))
	}

	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		fields["phone"] = normalize.Phone(*req.Phone)
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}

	if len(fields) > 0 {
		if err := s.userRepo.Updates(ctx, userID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, apperrors.WrapInternal(err)
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapInternal(err)
	}

	return SanitizeUser(user), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	userID, err := parseUserID(id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.WrapInternal(err)
	}

	logger.GetLogger().Info("Account deleted", zap.Uint("user_id", userID))
	return nil
}

// DeleteMany removes a batch of accounts. The batch is all-or-nothing at the
// validation stage: one malformed or missing identifier fails the request
// before anything is deleted.
func (s *UserService) DeleteMany(ctx context.Context, req *dto.DeleteManyRequest) (int64, error) {
	if len(req.IDs) == 0 {
		return 0, apperrors.NewValidationError("At least one id is required.")
	}

	ids := make([]uint, 0, len(req.IDs))
	for _, id := range req.IDs {
		if id <= 0 {
			return 0, apperrors.ErrInvalidUserID
		}
		ids = append(ids, uint(id))
	}

	count, err := s.userRepo.CountByIDs(ctx, ids)
	if err != nil {
		return 0, apperrors.WrapInternal(err)
	}
	if count != int64(len(ids)) {
		return 0, apperrors.ErrUserNotFound
	}

	deleted, err := s.userRepo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, apperrors.WrapInternal(err)
	}

	return deleted, nil
}
