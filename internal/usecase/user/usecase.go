package user

import (
	"context"
	"strings"

	"tender-crm-backend/internal/domain/errs"
	domain "tender-crm-backend/internal/domain/user"
	"tender-crm-backend/internal/usecase/storeerr"
	"tender-crm-backend/pkg/id"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const entity = "user"

type Usecase struct {
	repo     domain.Repository
	log      *zap.Logger
	validate *validator.Validate
}

func NewUsecase(repo domain.Repository, logger *zap.Logger) *Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Usecase{repo: repo, log: logger, validate: validator.New()}
}

func (u *Usecase) Create(ctx context.Context, in Input) (*domain.User, error) {
	if err := u.check(in); err != nil {
		return nil, err
	}
	usr := &domain.User{UserID: id.New(id.PrefixUser), Active: true}
	apply(usr, in)
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	u.log.Info("user created", zap.String("user_id", usr.UserID), zap.String("role", string(usr.Role)))
	return usr, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*domain.User, error) {
	usr, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	return usr, nil
}

func (u *Usecase) List(ctx context.Context, departmentID string) ([]domain.User, error) {
	return u.repo.List(ctx, departmentID)
}

func (u *Usecase) Update(ctx context.Context, userID string, in Input) (*domain.User, error) {
	if err := u.check(in); err != nil {
		return nil, err
	}
	usr, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	apply(usr, in)
	if err := u.repo.Save(ctx, usr); err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	return usr, nil
}

func (u *Usecase) Delete(ctx context.Context, userID string) error {
	n, err := u.repo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFound(entity)
	}
	return nil
}

func apply(usr *domain.User, in Input) {
	usr.Username = strings.TrimSpace(in.Username)
	usr.FullName = in.FullName
	usr.Email = strings.ToLower(strings.TrimSpace(in.Email))
	usr.Role = in.Role
	usr.DepartmentID = in.DepartmentID
	usr.DesignationID = in.DesignationID
	if in.Active != nil {
		usr.Active = *in.Active
	}
}

func (u *Usecase) check(in Input) error {
	v := &errs.ValidationError{}
	if strings.TrimSpace(in.Username) == "" {
		v.Add("username", "is required")
	}
	if strings.TrimSpace(in.FullName) == "" {
		v.Add("fullName", "is required")
	}
	if err := u.validate.Var(in.Email, "required,email"); err != nil {
		v.Add("email", "must be a valid email address")
	}
	switch in.Role {
	case domain.RoleAdmin, domain.RoleManager, domain.RoleSales, domain.RoleFinance:
	default:
		v.Add("role", "must be one of Admin, Manager, Sales, Finance")
	}
	return v.OrNil()
}
