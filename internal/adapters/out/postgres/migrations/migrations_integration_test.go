package migrations_test

import (
	"context"
	"testing"

	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/adapters/out/postgres/pgtest"

	"github.com/stretchr/testify/suite"
)

type MigrationsIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database
}

func (suite *MigrationsIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *MigrationsIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *MigrationsIntegrationTestSuite) count(query string) int64 {
	var n int64
	suite.Require().NoError(suite.pg.SQL.QueryRowContext(context.Background(), query).Scan(&n))
	return n
}

func (suite *MigrationsIntegrationTestSuite) TestUp_SeedsCoreStatusesAndEdges() {
	suite.Equal(int64(migrations.CoreStatusCount), suite.count(`SELECT COUNT(*) FROM order_statuses WHERE is_core`))
	suite.Equal(int64(migrations.CoreTransitionCount), suite.count(`SELECT COUNT(*) FROM status_transitions`))
	suite.Equal(int64(0), suite.count(`SELECT COUNT(*) FROM order_statuses WHERE NOT is_active`))
}

func (suite *MigrationsIntegrationTestSuite) TestDownAndUp_AreReversible() {
	ctx := context.Background()

	version, err := migrations.Version(ctx, suite.pg.SQL)
	suite.Require().NoError(err)
	suite.Equal(int64(2), version)

	suite.Require().NoError(migrations.Down(ctx, suite.pg.SQL))
	suite.Equal(int64(0), suite.count(`SELECT COUNT(*) FROM order_statuses`))

	suite.Require().NoError(migrations.Up(ctx, suite.pg.SQL))
	suite.Equal(int64(migrations.CoreStatusCount), suite.count(`SELECT COUNT(*) FROM order_statuses`))
	suite.Require().NoError(migrations.Status(ctx, suite.pg.SQL))
}

func (suite *MigrationsIntegrationTestSuite) TestSchema_RejectsSelfLoopEdges() {
	_, err := suite.pg.SQL.ExecContext(context.Background(), `
		INSERT INTO status_transitions (id, from_status_id, to_status_id)
		SELECT gen_random_uuid(), id, id FROM order_statuses WHERE slug = 'PAID'`)

	suite.Error(err)
}

func (suite *MigrationsIntegrationTestSuite) TestSchema_HistoryBlocksOrderDeletion() {
	ctx := context.Background()
	_, err := suite.pg.SQL.ExecContext(ctx, `
		INSERT INTO orders (id, order_number, status, customer_email)
		VALUES ('5f0c1a52-7d3e-4e59-9a53-7a1c2f3e4b01', 'SF-FK-1', 'PAID', 'fk@example.com');
		INSERT INTO order_status_history (id, order_id, to_status, changed_by)
		VALUES (gen_random_uuid(), '5f0c1a52-7d3e-4e59-9a53-7a1c2f3e4b01', 'PAID', 'Admin')`)
	suite.Require().NoError(err)

	_, err = suite.pg.SQL.ExecContext(ctx, `DELETE FROM orders WHERE order_number = 'SF-FK-1'`)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "order_status_history")
	suite.Equal(int64(1), suite.count(`SELECT COUNT(*) FROM order_status_history WHERE order_id = '5f0c1a52-7d3e-4e59-9a53-7a1c2f3e4b01'`))
}

func TestMigrationsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationsIntegrationTestSuite))
}
