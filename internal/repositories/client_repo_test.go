package repositories

import (
	"context"
	"testing"
	"time"

	"autogestor/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ClientRepoTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	repo      ClientRepository
	dealerID1 uuid.UUID
	dealerID2 uuid.UUID
	ctx       context.Context
}

func (suite *ClientRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewClientRepo(mock)
	suite.dealerID1 = uuid.New()
	suite.dealerID2 = uuid.New()
	suite.ctx = context.Background()
}

func (suite *ClientRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestClientRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ClientRepoTestSuite))
}

func (suite *ClientRepoTestSuite) TestCreate_ReturnsTimestamps() {
	now := time.Now()
	client := &models.Client{
		ID:       uuid.New(),
		DealerID: suite.dealerID1,
		Cedula:   "00112345678",
		Name:     "Juan Pérez",
		Address:  "Av. 27 de Febrero 100",
	}

	suite.mock.ExpectQuery(`INSERT INTO clients`).
		WithArgs(client.ID, client.DealerID, client.Cedula, client.Name,
			client.Email, client.Phone, client.Address).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := suite.repo.Create(suite.ctx, client)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), now, client.CreatedAt)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ClientRepoTestSuite) TestGetByID_ScopedByDealer() {
	clientID := uuid.New()
	now := time.Now()

	suite.mock.ExpectQuery(`SELECT id, dealer_id, cedula, name, email, phone, address, created_at, updated_at\s+FROM clients\s+WHERE dealer_id = \$1 AND id = \$2`).
		WithArgs(suite.dealerID1, clientID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "dealer_id", "cedula", "name", "email", "phone", "address", "created_at", "updated_at",
		}).AddRow(clientID, suite.dealerID1, "00112345678", "Juan Pérez",
			(*string)(nil), (*string)(nil), "Av. 27 de Febrero 100", now, now))

	client, err := suite.repo.GetByID(suite.ctx, suite.dealerID1, clientID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), clientID, client.ID)
	assert.Equal(suite.T(), suite.dealerID1, client.DealerID)
}

func (suite *ClientRepoTestSuite) TestGetByID_OtherDealerReadsAsNoRows() {
	clientID := uuid.New()

	// The row exists under dealer 1, so a dealer 2 lookup matches nothing.
	suite.mock.ExpectQuery(`SELECT id, dealer_id, cedula, name, email, phone, address, created_at, updated_at\s+FROM clients\s+WHERE dealer_id = \$1 AND id = \$2`).
		WithArgs(suite.dealerID2, clientID).
		WillReturnError(pgx.ErrNoRows)

	client, err := suite.repo.GetByID(suite.ctx, suite.dealerID2, clientID)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), client)
}

func (suite *ClientRepoTestSuite) TestList_OrderedByName() {
	now := time.Now()

	suite.mock.ExpectQuery(`SELECT id, dealer_id, cedula, name, email, phone, address, created_at, updated_at\s+FROM clients\s+WHERE dealer_id = \$1\s+ORDER BY name`).
		WithArgs(suite.dealerID1).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "dealer_id", "cedula", "name", "email", "phone", "address", "created_at", "updated_at",
		}).
			AddRow(uuid.New(), suite.dealerID1, "00112345678", "Ana Gómez",
				(*string)(nil), (*string)(nil), "Calle El Sol 5", now, now).
			AddRow(uuid.New(), suite.dealerID1, "00198765432", "Luis Mota",
				(*string)(nil), (*string)(nil), "Calle Duarte 18", now, now))

	clients, err := suite.repo.List(suite.ctx, suite.dealerID1)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), clients, 2)
	assert.Equal(suite.T(), "Ana Gómez", clients[0].Name)
}

func (suite *ClientRepoTestSuite) TestList_EmptyDealer() {
	suite.mock.ExpectQuery(`SELECT id, dealer_id, cedula, name, email, phone, address, created_at, updated_at\s+FROM clients\s+WHERE dealer_id = \$1\s+ORDER BY name`).
		WithArgs(suite.dealerID2).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "dealer_id", "cedula", "name", "email", "phone", "address", "created_at", "updated_at",
		}))

	clients, err := suite.repo.List(suite.ctx, suite.dealerID2)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), clients)
}

func (suite *ClientRepoTestSuite) TestCount() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM clients WHERE dealer_id = \$1`).
		WithArgs(suite.dealerID1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := suite.repo.Count(suite.ctx, suite.dealerID1)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, count)
}
