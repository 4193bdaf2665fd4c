package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frigate/infras/otel"
	"frigate/infras/postgres"
	"frigate/internal/domains/booking/model"
	"frigate/shared/constant"
	gDto "frigate/shared/dto"
	"frigate/shared/logger"
	gRepo "frigate/shared/repository"
	"frigate/shared/timezone"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ConfirmPayment(ctx context.Context, bookingCode, paymentID string) (bool, error)
	SumTotalAmount(ctx context.Context, filter gDto.FilterGroup) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ConfirmPayment flips a booking to CONFIRMED/PAID in a single conditional
// update. The status guard makes the transition run at most once: a second
// verification of the same booking matches zero rows and reports false.
func (repo *repositoryImpl) ConfirmPayment(ctx context.Context, bookingCode, paymentID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ConfirmPayment", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :status, %s = :payment_status, %s = :payment_id, modified_at = :modified_at, modified_by = :modified_by WHERE %s = :booking_code AND %s = :current_status",
		model.TableName,
		model.FieldStatus,
		model.FieldPaymentStatus,
		model.FieldPaymentID,
		model.FieldBookingCode,
		model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"status":         model.StatusConfirmed,
		"payment_status": model.PaymentStatusPaid,
		"payment_id":     paymentID,
		"modified_at":    timezone.Now(),
		"modified_by":    bookingCode,
		"booking_code":   bookingCode,
		"current_status": model.StatusPending,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to confirm payment (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) SumTotalAmount(ctx context.Context, filter gDto.FilterGroup) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.SumTotalAmount", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s.%s), 0) FROM %s %s", model.TableName, model.FieldTotalAmount, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total float64

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &total, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum total amount (%s): %w", model.EntityName, err)
	}

	return total, nil
}
