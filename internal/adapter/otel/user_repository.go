package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// TracingUserRepository wraps a domain.UserRepository with OpenTelemetry tracing.
type TracingUserRepository struct {
	next   domain.UserRepository
	tracer trace.Tracer
}

// Compile-time check: TracingUserRepository implements domain.UserRepository.
var _ domain.UserRepository = (*TracingUserRepository)(nil)

// NewTracingUserRepository creates a tracing decorator around the given repository.
func NewTracingUserRepository(next domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (r *TracingUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.Save",
		trace.WithAttributes(
			attribute.String("user.id", user.ID),
			attribute.String("user.authority", string(user.Authority)),
			attribute.String("tenant.id", user.TenantID),
		),
	)
	defer span.End()

	saved, err := r.next.Save(ctx, user)
	recordError(span, err)
	return saved, err
}

func (r *TracingUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.GetByID",
		trace.WithAttributes(attribute.String("user.id", id)),
	)
	defer span.End()

	user, err := r.next.GetByID(ctx, id)
	recordError(span, err)
	return user, err
}

func (r *TracingUserRepository) GetByExternalUID(ctx context.Context, externalUID string) (domain.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.GetByExternalUID",
		trace.WithAttributes(attribute.String("user.external_uid", externalUID)),
	)
	defer span.End()

	user, err := r.next.GetByExternalUID(ctx, externalUID)
	recordError(span, err)
	return user, err
}

func (r *TracingUserRepository) Delete(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(ctx, "UserRepository.Delete",
		trace.WithAttributes(attribute.String("user.id", id)),
	)
	defer span.End()

	err := r.next.Delete(ctx, id)
	recordError(span, err)
	return err
}

func (r *TracingUserRepository) List(ctx context.Context) ([]domain.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.List")
	defer span.End()

	users, err := r.next.List(ctx)
	r.finishList(span, users, err)
	return users, err
}

func (r *TracingUserRepository) ListByTenantAndAuthority(ctx context.Context, tenantID string, authority domain.Authority) ([]domain.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.ListByTenantAndAuthority",
		trace.WithAttributes(
			attribute.String("tenant.id", tenantID),
			attribute.String("user.authority", string(authority)),
		),
	)
	defer span.End()

	users, err := r.next.ListByTenantAndAuthority(ctx, tenantID, authority)
	r.finishList(span, users, err)
	return users, err
}

func (r *TracingUserRepository) ListByTenantAndAuthorities(ctx context.Context, tenantID string, authorities ...domain.Authority) ([]domain.User, error) {
	names := make([]string, len(authorities))
	for i, a := range authorities {
		names[i] = string(a)
	}

	ctx, span := r.tracer.Start(ctx, "UserRepository.ListByTenantAndAuthorities",
		trace.WithAttributes(
			attribute.String("tenant.id", tenantID),
			attribute.StringSlice("user.authorities", names),
		),
	)
	defer span.End()

	users, err := r.next.ListByTenantAndAuthorities(ctx, tenantID, authorities...)
	r.finishList(span, users, err)
	return users, err
}

func (r *TracingUserRepository) finishList(span trace.Span, users []domain.User, err error) {
	if err != nil {
		recordError(span, err)
		return
	}
	span.SetAttributes(attribute.Int("result.count", len(users)))
}
