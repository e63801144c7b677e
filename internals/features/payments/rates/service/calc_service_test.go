package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	articleModel "majalahku_backend/internals/features/editorial/articles/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gdb, mock
}

func rateRows(cents int64, bonuses string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"payment_rate_id", "payment_rate_tier", "payment_rate_cents",
		"payment_rate_bonuses", "payment_rate_effective_from", "payment_rate_is_active",
	}).AddRow(uuid.New(), "feature", cents, []byte(bonuses), time.Now(), true)
}

func TestCalculatePaymentBaseOnly(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "payment_rates"`).
		WillReturnRows(rateRows(50000, `{"photo":7500,"rush":10000}`))

	article := &articleModel.ArticleModel{ArticleTier: articleModel.TierFeature}

	calc, err := CalculatePayment(gdb, article)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), calc.TotalCents)
	require.Len(t, calc.Lines, 1)
	assert.Equal(t, "base", calc.Lines[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculatePaymentSumsFlaggedBonuses(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "payment_rates"`).
		WillReturnRows(rateRows(50000, `{"photo":7500,"rush":10000,"exclusive":20000}`))

	article := &articleModel.ArticleModel{
		ArticleTier:       articleModel.TierFeature,
		ArticleBonusPhoto: true,
		ArticleBonusRush:  true,
	}

	calc, err := CalculatePayment(gdb, article)
	require.NoError(t, err)
	assert.Equal(t, int64(67500), calc.TotalCents)
	assert.Len(t, calc.Lines, 3)
}

func TestCalculatePaymentIgnoresUnpricedFlag(t *testing.T) {
	gdb, mock := newMockDB(t)
	// card prices no bonuses at all
	mock.ExpectQuery(`SELECT \* FROM "payment_rates"`).
		WillReturnRows(rateRows(30000, `{}`))

	article := &articleModel.ArticleModel{
		ArticleTier:           articleModel.TierStandard,
		ArticleBonusExclusive: true,
	}

	calc, err := CalculatePayment(gdb, article)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), calc.TotalCents)
	assert.Len(t, calc.Lines, 1)
}

func TestCalculatePaymentNoActiveRate(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "payment_rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_rate_id"}))

	article := &articleModel.ArticleModel{ArticleTier: articleModel.TierBrief}

	_, err := CalculatePayment(gdb, article)
	assert.ErrorIs(t, err, ErrNoActiveRate)
}
