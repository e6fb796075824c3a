package catalog

import (
	"context"
	"testing"

	domain "tender-crm-backend/internal/domain/catalog"
	"tender-crm-backend/internal/domain/errs"
	"tender-crm-backend/internal/testutil/catalogmock"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func memRepo[T any, P domain.Item[T]]() (*catalogmock.Repo[T], map[string]*T) {
	rows := map[string]*T{}
	return &catalogmock.Repo[T]{
		CreateFn: func(_ context.Context, item *T) error {
			for _, r := range rows {
				if P(r).Base().Name == P(item).Base().Name {
					return gorm.ErrDuplicatedKey
				}
			}
			rows[P(item).Base().PublicID] = item
			return nil
		},
		GetByPublicIDFn: func(_ context.Context, pid string) (*T, error) {
			r, ok := rows[pid]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return r, nil
		},
		SaveFn: func(_ context.Context, item *T) error {
			rows[P(item).Base().PublicID] = item
			return nil
		},
		DeleteFn: func(_ context.Context, pid string) (int64, error) {
			if _, ok := rows[pid]; !ok {
				return 0, nil
			}
			delete(rows, pid)
			return 1, nil
		},
	}, rows
}

func TestService_ProductLifecycle(t *testing.T) {
	repo, rows := memRepo[domain.Product]()
	svc := NewService[domain.Product](repo, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, &domain.Product{Record: domain.Record{Name: " Router X1 "}, UnitPrice: 1200})
	require.NoError(t, err)
	require.Regexp(t, `^prd[0-9a-f]{32}$`, p.PublicID)
	require.Equal(t, "Router X1", p.Name)
	require.Len(t, rows, 1)

	got, err := svc.Update(ctx, p.PublicID, &domain.Product{Record: domain.Record{Name: "Router X2"}, UnitPrice: 1300, OEMID: "oem1"})
	require.NoError(t, err)
	require.Equal(t, "Router X2", got.Name)
	require.Equal(t, 1300.0, got.UnitPrice)
	require.Equal(t, p.PublicID, got.PublicID)

	require.NoError(t, svc.Delete(ctx, p.PublicID))
	_, err = svc.Get(ctx, p.PublicID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, p.PublicID), errs.ErrNotFound)
}

func TestService_Validation(t *testing.T) {
	tests := []struct {
		name  string
		run   func() error
		field string
	}{
		{
			name: "missing name",
			run: func() error {
				repo, _ := memRepo[domain.Department]()
				_, err := NewService[domain.Department](repo, nil).Create(context.Background(), &domain.Department{})
				return err
			},
			field: "name",
		},
		{
			name: "bad oem email",
			run: func() error {
				repo, _ := memRepo[domain.OEM]()
				_, err := NewService[domain.OEM](repo, nil).Create(context.Background(), &domain.OEM{Record: domain.Record{Name: "Cisco"}, ContactEmail: "x"})
				return err
			},
			field: "contactEmail",
		},
		{
			name: "negative designation level",
			run: func() error {
				repo, _ := memRepo[domain.Designation]()
				_, err := NewService[domain.Designation](repo, nil).Create(context.Background(), &domain.Designation{Record: domain.Record{Name: "VP"}, Level: -1})
				return err
			},
			field: "level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ve *errs.ValidationError
			require.ErrorAs(t, tt.run(), &ve)
			require.Equal(t, tt.field, ve.Fields[0].Field)
		})
	}
}

func TestService_DuplicateName(t *testing.T) {
	repo, _ := memRepo[domain.BidTemplate]()
	svc := NewService[domain.BidTemplate](repo, nil)
	_, err := svc.Create(context.Background(), &domain.BidTemplate{Record: domain.Record{Name: "Standard"}})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &domain.BidTemplate{Record: domain.Record{Name: "Standard"}})
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Contains(t, err.Error(), "bid template")
}
