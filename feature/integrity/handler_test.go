package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bas-manager/core/dataset"
	"bas-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()

	app := fiber.New()
	mockClient := new(mocks.Client)
	data := dataset.Config{
		Building:        "milas_hall",
		BASPrefix:       "combined_milas_hall",
		OccupancyPrefix: "occupancy_data",
		OAObject:        "oa_data.csv",
		RosterObject:    "RoomStatsCopy.csv",
		FilePrefix:      "Flo2.3-",
	}
	svc := NewService(mockClient, "test-bucket", data, zap.NewNop(), nil)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func emptyListChannel() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(emptyListChannel())

	req := httptest.NewRequest("GET", "/integrity/structure", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "checked", body["status"])
	assert.NotEmpty(t, body["missing"])
}

func TestHandleNamingCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(emptyListChannel())

	req := httptest.NewRequest("GET", "/integrity/naming", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "checked", body["status"])
}

func TestHandleDatabaseCheckNoDB(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/integrity/database", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleOutsideAirCheckStorageError(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("GetObject", mock.Anything, "test-bucket", "oa_data.csv", mock.Anything).
		Return(nil, assert.AnError)

	req := httptest.NewRequest("GET", "/integrity/oa", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
