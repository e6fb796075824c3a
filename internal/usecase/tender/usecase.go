package tender

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tender-crm-backend/internal/domain/actor"
	"tender-crm-backend/internal/domain/errs"
	"tender-crm-backend/internal/domain/history"
	domain "tender-crm-backend/internal/domain/tender"
	"tender-crm-backend/internal/domain/uow"
	"tender-crm-backend/internal/usecase/storeerr"
	"tender-crm-backend/pkg/id"

	"go.uber.org/zap"
)

const entity = "tender"

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

func (u *Usecase) Create(ctx context.Context, a actor.Actor, in CreateInput) (*domain.Tender, error) {
	if in.Status == "" {
		in.Status = domain.StatusDraft
	}
	if err := validateHeader(in.ReferenceNo, in.Title, in.Status, in.Value); err != nil {
		return nil, err
	}

	t := &domain.Tender{
		TenderID:        id.New(id.PrefixTender),
		ReferenceNo:     in.ReferenceNo,
		Title:           in.Title,
		ClientID:        in.ClientID,
		Status:          in.Status,
		Value:           in.Value,
		DueDate:         in.DueDate,
		AssignedUserIDs: []string{},
		CreatedByID:     a.ID,
	}
	t.History.Append(history.NewEntry(a, "Tender created", "", u.now()))
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	u.log.Info("tender created", zap.String("tender_id", t.TenderID), zap.String("actor", a.ID))
	return t, nil
}

func (u *Usecase) Get(ctx context.Context, tenderID string) (*domain.Tender, error) {
	t, err := u.repo.GetByTenderID(ctx, tenderID)
	if err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	return t, nil
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]domain.Tender, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) Update(ctx context.Context, a actor.Actor, tenderID string, in UpdateInput) (*domain.Tender, error) {
	return u.mutate(ctx, tenderID, func(t *domain.Tender) error {
		status := in.Status
		if status == "" {
			status = t.Status
		}
		if err := validateHeader(in.ReferenceNo, in.Title, status, in.Value); err != nil {
			return err
		}
		if status != t.Status {
			t.History.Append(history.NewEntry(a, "Status changed", fmt.Sprintf("%s -> %s", t.Status, status), u.now()))
		}
		t.ReferenceNo = in.ReferenceNo
		t.Title = in.Title
		t.ClientID = in.ClientID
		t.Status = status
		t.Value = in.Value
		t.DueDate = in.DueDate
		return nil
	})
}

func (u *Usecase) Delete(ctx context.Context, tenderID string) error {
	n, err := u.repo.Delete(ctx, tenderID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFound(entity)
	}
	u.log.Info("tender deleted", zap.String("tender_id", tenderID))
	return nil
}

// AssignUsers replaces the assignee list. Responses from users no longer assigned are kept.
func (u *Usecase) AssignUsers(ctx context.Context, a actor.Actor, tenderID string, userIDs []string) (*domain.Tender, error) {
	ids := dedupe(userIDs)
	if len(ids) == 0 {
		return nil, errs.Invalid("userIds", "must not be empty")
	}
	return u.mutate(ctx, tenderID, func(t *domain.Tender) error {
		t.AssignedUserIDs = ids
		t.History.Append(history.NewEntry(a, "Users assigned", strings.Join(ids, ", "), u.now()))
		return nil
	})
}

func (u *Usecase) RespondToAssignment(ctx context.Context, a actor.Actor, tenderID string, in RespondInput) (*domain.Tender, error) {
	if in.Response != ResponseAccepted && in.Response != ResponseDeclined {
		return nil, errs.Invalid("response", "must be Accepted or Declined")
	}
	return u.mutate(ctx, tenderID, func(t *domain.Tender) error {
		if !t.IsAssigned(a.ID) {
			return errs.Invalid("userId", "is not assigned to this tender")
		}
		now := u.now().UTC()
		t.AssignmentResponses.Set(domain.UserKey(a.ID), domain.AssignmentResponse{
			Response:    in.Response,
			Comment:     in.Comment,
			RespondedAt: now,
		})
		t.History.Append(history.NewEntry(a, "Assignment "+strings.ToLower(in.Response), in.Comment, now))
		return nil
	})
}

func (u *Usecase) UpdatePostAwardStage(ctx context.Context, a actor.Actor, tenderID, stage string, in StageInput) (*domain.Tender, error) {
	v := &errs.ValidationError{}
	if strings.TrimSpace(stage) == "" {
		v.Add("stage", "is required")
	}
	if in.Status == "" {
		v.Add("status", "is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	return u.mutate(ctx, tenderID, func(t *domain.Tender) error {
		now := u.now().UTC()
		t.PostAwardProcess.Set(domain.StageKey(stage), domain.StageProgress{
			Status:        in.Status,
			Notes:         in.Notes,
			CompletedDate: in.CompletedDate,
			UpdatedByID:   a.ID,
			UpdatedAt:     now,
		})
		t.History.Append(history.NewEntry(a, "Post-award stage updated", stage+": "+in.Status, now))
		return nil
	})
}

// AppendHistory records a free-form audit entry and returns it.
func (u *Usecase) AppendHistory(ctx context.Context, a actor.Actor, tenderID string, in HistoryInput) (*history.Entry, error) {
	if strings.TrimSpace(in.Action) == "" {
		return nil, errs.Invalid("action", "is required")
	}
	e := history.NewEntry(a, in.Action, in.Details, u.now())
	if _, err := u.mutate(ctx, tenderID, func(t *domain.Tender) error {
		t.History.Append(e)
		return nil
	}); err != nil {
		return nil, err
	}
	return &e, nil
}

// mutate runs fn against the locked tender and saves it in the same tx.
func (u *Usecase) mutate(ctx context.Context, tenderID string, fn func(t *domain.Tender) error) (*domain.Tender, error) {
	var out *domain.Tender
	err := u.uow.WithinTenderTx(ctx, tenderID, func(r uow.Repos, t *domain.Tender) error {
		if err := fn(t); err != nil {
			return err
		}
		if err := r.Tenders.Save(ctx, t); err != nil {
			return storeerr.Translate(err, entity)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, storeerr.Translate(err, entity)
	}
	return out, nil
}

func validateHeader(referenceNo, title string, status domain.Status, value float64) error {
	v := &errs.ValidationError{}
	if strings.TrimSpace(referenceNo) == "" {
		v.Add("referenceNo", "is required")
	}
	if strings.TrimSpace(title) == "" {
		v.Add("title", "is required")
	}
	if !validStatus(status) {
		v.Add("status", "is not a valid tender status")
	}
	if value < 0 {
		v.Add("value", "must not be negative")
	}
	return v.OrNil()
}

func validStatus(s domain.Status) bool {
	switch s {
	case domain.StatusDraft, domain.StatusSubmitted, domain.StatusUnderEvaluation,
		domain.StatusWon, domain.StatusLost, domain.StatusCancelled:
		return true
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
