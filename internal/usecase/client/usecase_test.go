package client

import (
	"context"
	"testing"
	"time"

	"tender-crm-backend/internal/domain/actor"
	domain "tender-crm-backend/internal/domain/client"
	"tender-crm-backend/internal/domain/errs"
	"tender-crm-backend/internal/domain/uow"
	"tender-crm-backend/internal/testutil/clientmock"
	"tender-crm-backend/internal/testutil/uowmock"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	rep   = actor.Actor{ID: "usr-7", Name: "Riya Rep"}
	clock = time.Date(2024, 5, 5, 8, 0, 0, 0, time.UTC)
)

func newFixture() (*Usecase, map[string]*domain.Client) {
	rows := map[string]*domain.Client{}
	get := func(_ context.Context, cid string) (*domain.Client, error) {
		c, ok := rows[cid]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *c
		return &cp, nil
	}
	repo := &clientmock.Repo{
		CreateFn: func(_ context.Context, c *domain.Client) error {
			for _, r := range rows {
				if r.Name == c.Name {
					return gorm.ErrDuplicatedKey
				}
			}
			cp := *c
			rows[c.ClientID] = &cp
			return nil
		},
		GetByClientIDFn:          get,
		GetByClientIDForUpdateFn: get,
		SaveFn: func(_ context.Context, c *domain.Client) error {
			cp := *c
			rows[c.ClientID] = &cp
			return nil
		},
		DeleteFn: func(_ context.Context, cid string) (int64, error) {
			if _, ok := rows[cid]; !ok {
				return 0, nil
			}
			delete(rows, cid)
			return 1, nil
		},
	}
	u := NewUsecase(repo, uowmock.Passthrough(uow.Repos{Clients: repo}), nil)
	u.now = func() time.Time { return clock }
	return u, rows
}

func TestUsecase_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		wantErr error
	}{
		{"defaults to prospect", Input{Name: "Acme Corp"}, nil},
		{"explicit status", Input{Name: "Acme Corp", Status: domain.StatusActive}, nil},
		{"blank name", Input{Name: "  "}, errs.ErrValidation},
		{"bad status", Input{Name: "Acme Corp", Status: "Gold"}, errs.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, rows := newFixture()
			c, err := u.Create(context.Background(), rep, tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, rows)
				return
			}
			require.NoError(t, err)
			require.Regexp(t, `^cli[0-9a-f]{32}$`, c.ClientID)
			if tt.in.Status == "" {
				require.Equal(t, domain.StatusProspect, c.Status)
			}
			require.Equal(t, 1, c.History.Len())
			e, _ := c.History.Last()
			require.Equal(t, "Client created", e.Action)
			require.Equal(t, rep.ID, e.UserID)
			require.Equal(t, rep.Name, e.User)
			require.Equal(t, clock, e.Timestamp)
		})
	}
}

func TestUsecase_Create_DuplicateName(t *testing.T) {
	u, _ := newFixture()
	_, err := u.Create(context.Background(), rep, Input{Name: "Acme"})
	require.NoError(t, err)
	_, err = u.Create(context.Background(), rep, Input{Name: "Acme"})
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestUsecase_UpdateKeepsHistory(t *testing.T) {
	u, rows := newFixture()
	ctx := context.Background()
	c, err := u.Create(ctx, rep, Input{Name: "Acme"})
	require.NoError(t, err)

	got, err := u.Update(ctx, c.ClientID, Input{Name: "Acme Ltd", Email: "ops@acme.test"})
	require.NoError(t, err)
	require.Equal(t, "Acme Ltd", got.Name)
	require.Equal(t, domain.StatusProspect, got.Status)
	require.Equal(t, 1, rows[c.ClientID].History.Len())

	_, err = u.Update(ctx, "cli-missing", Input{Name: "x"})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUsecase_AppendHistoryAndDelete(t *testing.T) {
	u, rows := newFixture()
	ctx := context.Background()
	c, err := u.Create(ctx, rep, Input{Name: "Acme"})
	require.NoError(t, err)

	e, err := u.AppendHistory(ctx, rep, c.ClientID, HistoryInput{Action: "Meeting held", Details: "kickoff"})
	require.NoError(t, err)
	require.Equal(t, "kickoff", e.Details)
	require.Equal(t, 2, rows[c.ClientID].History.Len())
	first, second := rows[c.ClientID].History[0], rows[c.ClientID].History[1]
	require.Equal(t, "Client created", first.Action)
	require.Equal(t, "Meeting held", second.Action)

	_, err = u.AppendHistory(ctx, rep, c.ClientID, HistoryInput{Action: " "})
	require.ErrorIs(t, err, errs.ErrValidation)

	require.NoError(t, u.Delete(ctx, c.ClientID))
	require.ErrorIs(t, u.Delete(ctx, c.ClientID), errs.ErrNotFound)
	_, err = u.Get(ctx, c.ClientID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
