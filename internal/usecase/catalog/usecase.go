// Package catalog serves the admin lookup tables (departments, designations,
// bid templates) and the OEM/product master data through one generic service.
package catalog

import (
	"context"
	"errors"
	"reflect"
	"strings"

	domain "tender-crm-backend/internal/domain/catalog"
	"tender-crm-backend/internal/domain/errs"
	"tender-crm-backend/internal/usecase/storeerr"
	"tender-crm-backend/pkg/id"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service[T any, P domain.Item[T]] struct {
	repo     domain.Repository[T]
	log      *zap.Logger
	validate *validator.Validate
}

func NewService[T any, P domain.Item[T]](repo domain.Repository[T], logger *zap.Logger) *Service[T, P] {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return &Service[T, P]{repo: repo, log: logger, validate: v}
}

// Kind names the entity, e.g. "bid template".
func (s *Service[T, P]) Kind() string { return P(new(T)).Kind() }

func (s *Service[T, P]) Create(ctx context.Context, item *T) (*T, error) {
	p := P(item)
	base := p.Base()
	base.Name = strings.TrimSpace(base.Name)
	base.PublicID = id.New(p.Prefix())
	if err := s.check(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storeerr.Translate(err, s.Kind())
	}
	s.log.Info("catalog entry created", zap.String("kind", s.Kind()), zap.String("id", base.PublicID))
	return item, nil
}

func (s *Service[T, P]) Get(ctx context.Context, publicID string) (*T, error) {
	item, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, storeerr.Translate(err, s.Kind())
	}
	return item, nil
}

func (s *Service[T, P]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Update copies the editable fields of patch onto the stored entry.
func (s *Service[T, P]) Update(ctx context.Context, publicID string, patch *T) (*T, error) {
	P(patch).Base().Name = strings.TrimSpace(P(patch).Base().Name)
	if err := s.check(patch); err != nil {
		return nil, err
	}
	item, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, storeerr.Translate(err, s.Kind())
	}
	P(item).Apply(patch)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, storeerr.Translate(err, s.Kind())
	}
	return item, nil
}

func (s *Service[T, P]) Delete(ctx context.Context, publicID string) error {
	n, err := s.repo.Delete(ctx, publicID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFound(s.Kind())
	}
	return nil
}

func (s *Service[T, P]) check(item *T) error {
	err := s.validate.Struct(item)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := &errs.ValidationError{}
	for _, fe := range ves {
		out.Add(fe.Field(), "failed on '"+fe.Tag()+"'")
	}
	return out
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
