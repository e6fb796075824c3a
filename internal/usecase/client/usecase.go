package client

import (
	"context"
	"strings"
	"time"

	"tender-crm-backend/internal/domain/actor"
	domain "tender-crm-backend/internal/domain/client"
	"tender-crm-backend/internal/domain/errs"
	"tender-crm-backend/internal/domain/history"
	"tender-crm-backend/internal/domain/uow"
	"tender-crm-backend/internal/usecase/storeerr"
	"tender-crm-backend/pkg/id"

	"go.uber.org/zap"
)

const entity = "client"

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
	now  func() time.Time
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, logger *zap.Logger) *Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Usecase{repo: repo, uow: tx, log: logger, now: time.Now}
}

func (u *Usecase) Create(ctx context.Context, a actor.Actor, in Input) (*domain.Client, error) {
	if in.Status == "" {
		in.Status = domain.StatusProspect
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	c := &domain.Client{
		ClientID:    id.New(id.PrefixClient),
		CreatedByID: a.ID,
	}
	apply(c, in)
	c.History.Append(history.NewEntry(a, "Client created", "", u.now()))
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	u.log.Info("client created", zap.String("client_id", c.ClientID), zap.String("actor", a.ID))
	return c, nil
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	return c, nil
}

func (u *Usecase) List(ctx context.Context, status domain.Status) ([]domain.Client, error) {
	return u.repo.List(ctx, status)
}

func (u *Usecase) Update(ctx context.Context, clientID string, in Input) (*domain.Client, error) {
	return u.mutate(ctx, clientID, func(c *domain.Client) error {
		if in.Status == "" {
			in.Status = c.Status
		}
		if err := validate(in); err != nil {
			return err
		}
		apply(c, in)
		return nil
	})
}

func (u *Usecase) Delete(ctx context.Context, clientID string) error {
	n, err := u.repo.Delete(ctx, clientID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFound(entity)
	}
	return nil
}

func (u *Usecase) AppendHistory(ctx context.Context, a actor.Actor, clientID string, in HistoryInput) (*history.Entry, error) {
	if strings.TrimSpace(in.Action) == "" {
		return nil, errs.Invalid("action", "is required")
	}
	e := history.NewEntry(a, in.Action, in.Details, u.now())
	if _, err := u.mutate(ctx, clientID, func(c *domain.Client) error {
		c.History.Append(e)
		return nil
	}); err != nil {
		return nil, err
	}
	return &e, nil
}

func (u *Usecase) mutate(ctx context.Context, clientID string, fn func(c *domain.Client) error) (*domain.Client, error) {
	var out *domain.Client
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Clients.GetByClientIDForUpdate(ctx, clientID)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		if err := r.Clients.Save(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	return out, nil
}

func apply(c *domain.Client, in Input) {
	c.Name = strings.TrimSpace(in.Name)
	c.Industry = in.Industry
	c.ContactPerson = in.ContactPerson
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.Status = in.Status
}

func validate(in Input) error {
	v := &errs.ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "is required")
	}
	switch in.Status {
	case domain.StatusActive, domain.StatusInactive, domain.StatusProspect:
	default:
		v.Add("status", "must be one of Active, Inactive, Prospect")
	}
	return v.OrNil()
}
