package financial

import (
	"context"
	"errors"
	"time"

	"tender-crm-backend/internal/domain/actor"
	"tender-crm-backend/internal/domain/errs"
	domain "tender-crm-backend/internal/domain/financial"
	"tender-crm-backend/internal/domain/uow"
	"tender-crm-backend/internal/usecase/storeerr"
	"tender-crm-backend/pkg/id"

	"go.uber.org/zap"
)

const entity = "financial request"

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
	now  func() time.Time
}

// NewUsecase: the UoW carries the ledger write and the tender projection in one tx.
func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, logger *zap.Logger) *Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Usecase{repo: repo, uow: tx, log: logger, now: time.Now}
}

func (u *Usecase) Create(ctx context.Context, a actor.Actor, in CreateInput) (*domain.Request, error) {
	v := &errs.ValidationError{}
	if in.TenderID == "" {
		v.Add("tenderId", "is required")
	}
	switch {
	case in.Type == "":
		v.Add("type", "is required")
	case !in.Type.Valid():
		v.Add("type", "must be one of EMD, PBG, SD, Other")
	}
	if in.Amount <= 0 {
		v.Add("amount", "must be greater than 0")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	r := &domain.Request{
		RequestID:     id.New(id.PrefixFinancialRequest),
		TenderID:      in.TenderID,
		Type:          in.Type,
		Amount:        in.Amount,
		Status:        domain.StatusPendingApproval,
		RequestedByID: a.ID,
		RequestDate:   u.now().UTC(),
		Notes:         in.Notes,
		ExpiryDate:    in.ExpiryDate,
	}
	if err := u.repo.Create(ctx, r); err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	u.log.Info("financial request created",
		zap.String("request_id", r.RequestID),
		zap.String("tender_id", r.TenderID),
		zap.String("type", string(r.Type)),
		zap.String("actor", a.ID),
	)
	return r, nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*domain.Request, error) {
	r, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	return r, nil
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]domain.Request, error) {
	return u.repo.List(ctx, f)
}

// Update applies a status change. Processed requests project their instrument onto
// the owning tender inside the same transaction.
func (u *Usecase) Update(ctx context.Context, a actor.Actor, requestID string, in UpdateInput) (*domain.Request, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	var out *domain.Request
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		fr, err := r.Financials.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return storeerr.Translate(err, entity)
		}

		now := u.now().UTC()
		fr.Status = in.Status
		switch in.Status {
		case domain.StatusApproved:
			approver := a.ID
			fr.ApproverID = &approver
			fr.ApprovalDate = &now
		case domain.StatusRejected:
			fr.RejectionReason = in.Reason
		case domain.StatusProcessed:
			details := *in.Instrument
			fr.InstrumentDetails = &details
		}

		if err := r.Financials.Save(ctx, fr); err != nil {
			return err
		}
		if fr.Status == domain.StatusProcessed {
			if err := u.project(ctx, r, fr); err != nil {
				return err
			}
		}
		out = fr
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("financial request updated",
		zap.String("request_id", out.RequestID),
		zap.String("status", string(out.Status)),
		zap.String("actor", a.ID),
	)
	return out, nil
}

func (u *Usecase) project(ctx context.Context, r uow.Repos, fr *domain.Request) error {
	slot, ok := SlotFor(fr.Type)
	if !ok {
		return nil
	}
	t, err := r.Tenders.GetByTenderIDForUpdate(ctx, fr.TenderID)
	if err != nil {
		if errors.Is(storeerr.Translate(err, "tender"), errs.ErrNotFound) {
			u.log.Warn("projection skipped, tender not found",
				zap.String("request_id", fr.RequestID),
				zap.String("tender_id", fr.TenderID),
			)
			return nil
		}
		return err
	}
	Project(t, slot, fr)
	return r.Tenders.Save(ctx, t)
}

func validateUpdate(in UpdateInput) error {
	switch {
	case in.Status == "":
		return errs.Invalid("status", "is required")
	case !in.Status.Valid():
		return errs.Invalid("status", "must be one of Pending Approval, Approved, Rejected, Processed")
	case in.Status == domain.StatusRejected && in.Reason == "":
		return errs.Invalid("reason", "is required when rejecting")
	case in.Status == domain.StatusProcessed && in.Instrument == nil:
		return errs.Invalid("instrument", "is required when processing")
	}
	return nil
}
