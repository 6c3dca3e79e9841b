package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

const tracerName = "github.com/neomorfeo/tenantadmin/internal/adapter/otel"

// TracingTenantRepository wraps a domain.TenantRepository with OpenTelemetry tracing.
// Each method creates a span with semantic attributes and records errors.
type TracingTenantRepository struct {
	next   domain.TenantRepository
	tracer trace.Tracer
}

// Compile-time check: TracingTenantRepository implements domain.TenantRepository.
var _ domain.TenantRepository = (*TracingTenantRepository)(nil)

// NewTracingTenantRepository creates a tracing decorator around the given repository.
func NewTracingTenantRepository(next domain.TenantRepository) *TracingTenantRepository {
	return &TracingTenantRepository{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (r *TracingTenantRepository) Save(ctx context.Context, tenant domain.Tenant) (domain.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "TenantRepository.Save",
		trace.WithAttributes(
			attribute.String("tenant.id", tenant.ID),
			attribute.String("tenant.name", tenant.Name),
		),
	)
	defer span.End()

	saved, err := r.next.Save(ctx, tenant)
	recordError(span, err)
	return saved, err
}

func (r *TracingTenantRepository) GetByID(ctx context.Context, id string) (domain.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "TenantRepository.GetByID",
		trace.WithAttributes(attribute.String("tenant.id", id)),
	)
	defer span.End()

	tenant, err := r.next.GetByID(ctx, id)
	recordError(span, err)
	return tenant, err
}

func (r *TracingTenantRepository) GetByName(ctx context.Context, name string) (domain.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "TenantRepository.GetByName",
		trace.WithAttributes(attribute.String("tenant.name", name)),
	)
	defer span.End()

	tenant, err := r.next.GetByName(ctx, name)
	recordError(span, err)
	return tenant, err
}

func (r *TracingTenantRepository) Delete(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(ctx, "TenantRepository.Delete",
		trace.WithAttributes(attribute.String("tenant.id", id)),
	)
	defer span.End()

	err := r.next.Delete(ctx, id)
	recordError(span, err)
	return err
}

func (r *TracingTenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "TenantRepository.List")
	defer span.End()

	tenants, err := r.next.List(ctx)
	if err != nil {
		recordError(span, err)
	} else {
		span.SetAttributes(attribute.Int("result.count", len(tenants)))
	}
	return tenants, err
}

// recordError marks the span as failed when err is non-nil.
func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
