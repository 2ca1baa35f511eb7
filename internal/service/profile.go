package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/internal/repository"
	"github.com/jobport-bd/applicant-service/pkg/logger"
	"github.com/jobport-bd/applicant-service/pkg/normalize"
	"github.com/jobport-bd/applicant-service/pkg/query"
	"github.com/jobport-bd/applicant-service/pkg/validation"
)

const dobLayout = "2006-01-02"

// profileFilterFields is the listing filter whitelist for profiles. userId
// is an identifier filter: it matches exactly and is dropped when malformed.
var profileFilterFields = []query.Field{
	{Key: "userId", Column: "user_id", ID: true},
	{Key: "name", Column: "name"},
	{Key: "email", Column: "email"},
	{Key: "mobile", Column: "mobile"},
}

var profileSortableColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

// ProfileService owns applicant application records. A profile is created
// against an existing account and its owner never changes afterwards.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	validator   *validation.Validator
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, validator *validation.Validator) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		validator:   validator,
	}
}

func parseProfileID(id string) (uint, error) {
	parsed, err := strconv.ParseUint(id, 10, 64)
	if err != nil || parsed == 0 {
		return 0, apperrors.ErrInvalidProfileID
	}
	return uint(parsed), nil
}

// Create validates and stores a new application record. The owning account
// must exist; mobile numbers are stored in the canonical local form and the
// email lowercased.
func (s *ProfileService) Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	if messages := s.validator.Validate(req); len(messages) > 0 {
		return nil, apperrors.NewValidationError(validation.Join(messages))
	}

	ownerID, err := strconv.ParseUint(req.UserID, 10, 64)
	if err != nil || ownerID == 0 {
		return nil, apperrors.ErrInvalidUserID
	}

	if _, err := s.userRepo.GetByID(ctx, uint(ownerID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapInternal(err)
	}

	dob, err := time.Parse(dobLayout, req.Dob)
	if err != nil {
		return nil, apperrors.NewValidationError("Please provide a valid date of birth.")
	}

	mobile := normalize.Phone(req.Mobile)
	confirmMobile := normalize.Phone(req.ConfirmMobile)
	if mobile != confirmMobile {
		return nil, apperrors.NewValidationError("Mobile numbers do not match.")
	}

	profile := &model.Profile{
		UserID:   uint(ownerID),
		Name:     req.Name,
		NameBn:   req.NameBn,
		Father:   req.Father,
		FatherBn: req.FatherBn,
		Mother:   req.Mother,
		MotherBn: req.MotherBn,

		Dob:    dob,
		Gender: req.Gender,

		Nid:      req.Nid,
		NidNo:    req.NidNo,
		Breg:     req.Breg,
		Passport: req.Passport,

		Email:         normalize.Email(req.Email),
		Mobile:        mobile,
		ConfirmMobile: confirmMobile,

		Nationality:   req.Nationality,
		Religion:      req.Religion,
		MaritalStatus: req.MaritalStatus,
		Quota:         req.Quota,
		DepStatus:     req.DepStatus,

		PresentAddress: datatypes.NewJSONType(toAddressRecord(req.PresentAddress)),
		SSC:            datatypes.NewJSONType(toEducationRecord(req.SSC)),
		HSC:            datatypes.NewJSONType(toEducationRecord(req.HSC)),
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	logger.GetLogger().Info("Profile created",
		zap.Uint("profile_id", profile.ID),
		zap.Uint("user_id", profile.UserID))

	return SanitizeProfile(profile), nil
}

func (s *ProfileService) GetByID(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	profileID, err := parseProfileID(id)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.WrapInternal(err)
	}

	return SanitizeProfile(profile), nil
}

// GetAll lists profiles with whitelisted filters. The userId filter matches
// exactly; the rest match as case-insensitive substrings.
func (s *ProfileService) GetAll(ctx context.Context, filter dto.ProfileFilter, opts query.Options) ([]dto.ProfileResponse, int64, query.Pagination, error) {
	filters := map[string]string{
		"userId": filter.UserID,
		"name":   filter.Name,
		"email":  filter.Email,
		"mobile": filter.Mobile,
	}

	conditions := query.BuildConditions(filters, profileFilterFields)
	orderBy := query.ResolveSort(opts, profileSortableColumns)
	page := query.Calculate(opts)

	profiles, total, err := s.profileRepo.List(ctx, conditions, orderBy, page)
	if err != nil {
		return nil, 0, page, apperrors.WrapInternal(err)
	}

	responses := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *SanitizeProfile(&profiles[i]))
	}

	return responses, total, page, nil
}

// Update applies a partial profile update. The owner is immutable; the NID
// invariant is re-checked against the record as it will exist after the
// update, so a flag flip cannot leave the number missing.
func (s *ProfileService) Update(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profileID, err := parseProfileID(id)
	if err != nil {
		return nil, err
	}

	if req.UserID != nil {
		return nil, apperrors.ErrProfileOwnerFixed
	}

	if messages := s.validator.Validate(req); len(messages) > 0 {
		return nil, apperrors.NewValidationError(validation.Join(messages))
	}

	existing, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.WrapInternal(err)
	}

	effectiveNid := existing.Nid
	if req.Nid != nil {
		effectiveNid = *req.Nid
	}
	effectiveNidNo := existing.NidNo
	if req.NidNo != nil {
		effectiveNidNo = *req.NidNo
	}
	if effectiveNid == "1" && effectiveNidNo == "" {
		return nil, apperrors.NewValidationError("NID number is required when NID is set")
	}

	fields := map[string]interface{}{}
	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}

	setString("name", req.Name)
	setString("name_bn", req.NameBn)
	setString("father", req.Father)
	setString("father_bn", req.FatherBn)
	setString("mother", req.Mother)
	setString("mother_bn", req.MotherBn)
	setString("gender", req.Gender)
	setString("nid", req.Nid)
	setString("nid_no", req.NidNo)
	setString("breg", req.Breg)
	setString("passport", req.Passport)
	setString("nationality", req.Nationality)
	setString("religion", req.Religion)
	setString("marital_status", req.MaritalStatus)
	setString("quota", req.Quota)
	setString("dep_status", req.DepStatus)

	if req.Dob != nil {
		dob, err := time.Parse(dobLayout, *req.Dob)
		if err != nil {
			return nil, apperrors.NewValidationError("Please provide a valid date of birth.")
		}
		fields["dob"] = dob
	}
	if req.Email != nil {
		fields["email"] = normalize.Email(*req.Email)
	}
	if req.Mobile != nil {
		fields["mobile"] = normalize.Phone(*req.Mobile)
	}
	if req.ConfirmMobile != nil {
		fields["confirm_mobile"] = normalize.Phone(*req.ConfirmMobile)
	}

	if req.PresentAddress != nil {
		fields["present_address"] = datatypes.NewJSONType(toAddressRecord(*req.PresentAddress))
	}
	if req.SSC != nil {
		fields["ssc"] = datatypes.NewJSONType(toEducationRecord(*req.SSC))
	}
	if req.HSC != nil {
		fields["hsc"] = datatypes.NewJSONType(toEducationRecord(*req.HSC))
	}

	if len(fields) > 0 {
		if err := s.profileRepo.Updates(ctx, profileID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProfileNotFound
			}
			return nil, apperrors.WrapInternal(err)
		}
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	return SanitizeProfile(profile), nil
}

func (s *ProfileService) Delete(ctx context.Context, id string) error {
	profileID, err := parseProfileID(id)
	if err != nil {
		return err
	}

	if err := s.profileRepo.Delete(ctx, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.WrapInternal(err)
	}

	logger.GetLogger().Info("Profile deleted", zap.Uint("profile_id", profileID))
	return nil
}

// DeleteMany removes a batch of profiles, rejecting the whole batch when any
// identifier is malformed or unknown.
func (s *ProfileService) DeleteMany(ctx context.Context, req *dto.DeleteManyRequest) (int64, error) {
	if len(req.IDs) == 0 {
		return 0, apperrors.NewValidationError("At least one id is required.")
	}

	ids := make([]uint, 0, len(req.IDs))
	for _, id := range req.IDs {
		if id <= 0 {
			return 0, apperrors.ErrInvalidProfileID
		}
		ids = append(ids, uint(id))
	}

	count, err := s.profileRepo.CountByIDs(ctx, ids)
	if err != nil {
		return 0, apperrors.WrapInternal(err)
	}
	if count != int64(len(ids)) {
		return 0, apperrors.ErrProfileNotFound
	}

	deleted, err := s.profileRepo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, apperrors.WrapInternal(err)
	}

	return deleted, nil
}

func toAddressRecord(payload dto.PresentAddressPayload) model.PresentAddress {
	return model.PresentAddress{
		Careof:   payload.Careof,
		Village:  payload.Village,
		District: payload.District,
		Upazila:  payload.Upazila,
		Post:     payload.Post,
		Postcode: payload.Postcode,
	}
}

func toEducationRecord(payload dto.EducationPayload) model.Education {
	record := model.Education{
		Exam:       payload.Exam,
		Roll:       payload.Roll,
		Group:      payload.Group,
		GroupOther: payload.GroupOther,
		Board:      payload.Board,
		BoardOther: payload.BoardOther,
		ResultType: payload.ResultType,
		Year:       payload.Year,
	}
	if payload.Result != nil {
		record.Result = *payload.Result
	}
	return record
}

func fromAddressRecord(record model.PresentAddress) dto.PresentAddressPayload {
	return dto.PresentAddressPayload{
		Careof:   record.Careof,
		Village:  record.Village,
		District: record.District,
		Upazila:  record.Upazila,
		Post:     record.Post,
		Postcode: record.Postcode,
	}
}

func fromEducationRecord(record model.Education) dto.EducationPayload {
	result := record.Result
	return dto.EducationPayload{
		Exam:       record.Exam,
		Roll:       record.Roll,
		Group:      record.Group,
		GroupOther: record.GroupOther,
		Board:      record.Board,
		BoardOther: record.BoardOther,
		ResultType: record.ResultType,
		Result:     &result,
		Year:       record.Year,
	}
}

// SanitizeProfile converts a stored profile into its public representation.
func SanitizeProfile(profile *model.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:     profile.ID,
		UserID: profile.UserID,

		Name:     profile.Name,
		NameBn:   profile.NameBn,
		Father:   profile.Father,
		FatherBn: profile.FatherBn,
		Mother:   profile.Mother,
		MotherBn: profile.MotherBn,

		Dob:    profile.Dob,
		Gender: profile.Gender,

		Nid:      profile.Nid,
		NidNo:    profile.NidNo,
		Breg:     profile.Breg,
		Passport: profile.Passport,

		Email:         profile.Email,
		Mobile:        profile.Mobile,
		ConfirmMobile: profile.ConfirmMobile,

		Nationality:   profile.Nationality,
		Religion:      profile.Religion,
		MaritalStatus: profile.MaritalStatus,
		Quota:         profile.Quota,
		DepStatus:     profile.DepStatus,

		PresentAddress: fromAddressRecord(profile.PresentAddress.Data()),
		SSC:            fromEducationRecord(profile.SSC.Data()),
		HSC:            fromEducationRecord(profile.HSC.Data()),

		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
