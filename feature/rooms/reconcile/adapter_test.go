package reconcile_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"bas-manager/core/database"
	"bas-manager/core/dataset"
	corereconcile "bas-manager/core/reconcile"
	"bas-manager/core/storage/mocks"
	"bas-manager/feature/rooms/models"
	"bas-manager/feature/rooms/reconcile"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testBucket = "bas-data"

const rosterCSV = `room,floor,sqft,occupant,professor,has_occupancy_sensor,sensor_status
A3-70,3,410,Jordan Lee,Dr. Smith,yes,ok
A3-71,3,380,,,no,
`

func testDataConfig() dataset.Config {
	return dataset.Config{
		Building:        "milas_hall",
		BASPrefix:       "combined_milas_hall",
		OccupancyPrefix: "occupancy_data",
		OAObject:        "oa_data.csv",
		RosterObject:    "RoomStatsCopy.csv",
		FilePrefix:      "Flo2.3-",
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}))
	return db
}

func rosterObject() io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(rosterCSV)))
}

func TestLoadRosterIndex(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "RoomStatsCopy.csv", mock.Anything).
		Return(rosterObject(), nil)

	adapter := reconcile.NewAdapter(testDataConfig())

	index, err := adapter.LoadRosterIndex(context.Background(), mockClient, testBucket, "RoomStatsCopy.csv")
	require.NoError(t, err)
	require.Len(t, index, 2)

	rec := index["A3-70"].(models.RosterRecord)
	assert.Equal(t, "Jordan Lee", rec.Occupant)
	assert.Equal(t, 410, rec.Sqft)
	assert.True(t, rec.HasOccupancySensor)
}

func TestLoadDBIndex(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Room{ID: "A3-70", Floor: "3", Sqft: 410}).Error)

	adapter := reconcile.NewAdapter(testDataConfig())

	index, err := adapter.LoadDBIndex(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, index, 1)
	assert.Equal(t, "A3-70", adapter.ExtractDBKey(index["A3-70"]))
}

func TestLoadDBIndexNilDB(t *testing.T) {
	adapter := reconcile.NewAdapter(testDataConfig())

	index, err := adapter.LoadDBIndex(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestExtractStorageKey(t *testing.T) {
	adapter := reconcile.NewAdapter(testDataConfig())

	tests := []struct {
		name      string
		objectKey string
		wantKey   string
		wantOK    bool
	}{
		{"valid room file", "combined_milas_hall/Flo2.3-A3-70.csv", "A3-70", true},
		{"wrong extension", "combined_milas_hall/Flo2.3-A3-70.txt", "", false},
		{"missing file prefix", "combined_milas_hall/readme.csv", "", false},
		{"empty room", "combined_milas_hall/Flo2.3-.csv", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := adapter.ExtractStorageKey(tt.objectKey, ".csv")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestCompareFields(t *testing.T) {
	adapter := reconcile.NewAdapter(testDataConfig())

	db := models.Room{ID: "A3-70", Floor: "3", Sqft: 380, Occupant: "Jordan Lee", SensorStatus: "ok"}
	roster := models.RosterRecord{Room: "A3-70", Floor: "3", Sqft: 410, Occupant: "Jordan Lee", SensorStatus: "broken"}

	mismatches := adapter.CompareFields(db, roster)
	require.Len(t, mismatches, 2)
	assert.Contains(t, mismatches[0], "sqft")
	assert.Contains(t, mismatches[1], "sensor_status")

	// Identical rows produce no mismatches
	assert.Empty(t, adapter.CompareFields(db, db.ToRecord()))
}

func TestResolveName(t *testing.T) {
	adapter := reconcile.NewAdapter(testDataConfig())

	withOccupant := models.RosterRecord{Room: "A3-70", Occupant: "Jordan Lee"}
	assert.Equal(t, "Jordan Lee", adapter.ResolveName(nil, withOccupant))

	vacant := models.RosterRecord{Room: "A3-71"}
	assert.Equal(t, "A3-71", adapter.ResolveName(nil, vacant))

	dbOnly := models.Room{ID: "A3-72", Occupant: "Casey Park"}
	assert.Equal(t, "Casey Park", adapter.ResolveName(dbOnly, nil))

	assert.Equal(t, "", adapter.ResolveName(nil, nil))
}

func TestReconcileAllWithAdapter(t *testing.T) {
	db := testDB(t)
	// A3-70 complete, A3-72 only in DB
	require.NoError(t, db.Create(&models.Room{ID: "A3-70", Floor: "3", Sqft: 410, Occupant: "Jordan Lee", Professor: "Dr. Smith", HasOccupancySensor: true, SensorStatus: "ok"}).Error)
	require.NoError(t, db.Create(&models.Room{ID: "A3-72", Floor: "3", Sqft: 300}).Error)

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "RoomStatsCopy.csv", mock.Anything).
		Return(rosterObject(), nil)
	mockClient.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return(listChannel(
			"combined_milas_hall/Flo2.3-A3-70.csv",
			"combined_milas_hall/Flo2.3-A3-71.csv",
		))

	adapter := reconcile.NewAdapter(testDataConfig())
	spec := &corereconcile.Spec{
		Adapter:          adapter,
		StoragePrefix:    "combined_milas_hall",
		StorageExtension: ".csv",
		RosterObjectName: "RoomStatsCopy.csv",
	}

	results, err := corereconcile.ReconcileAll(context.Background(), spec, db, mockClient, testBucket)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Results are sorted by room ID
	assert.Equal(t, "A3-70", results[0].ID)
	assert.True(t, results[0].DBPresent)
	assert.True(t, results[0].RosterPresent)
	assert.True(t, results[0].StoragePresent)
	assert.Empty(t, results[0].Mismatch)
	assert.Equal(t, "Jordan Lee", results[0].Name)
	assert.Equal(t, "410", results[0].Metadata["sqft"])

	assert.Equal(t, "A3-71", results[1].ID)
	assert.False(t, results[1].DBPresent)
	assert.True(t, results[1].RosterPresent)
	assert.True(t, results[1].StoragePresent)

	assert.Equal(t, "A3-72", results[2].ID)
	assert.True(t, results[2].DBPresent)
	assert.False(t, results[2].RosterPresent)
	assert.False(t, results[2].StoragePresent)
}

func listChannel(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func TestQueryRoster(t *testing.T) {
	// Fresh reader per call: the first lookup consumes the object body.
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "RoomStatsCopy.csv", mock.Anything).
		Return(rosterObject(), nil).Once()
	mockClient.On("GetObject", mock.Anything, testBucket, "RoomStatsCopy.csv", mock.Anything).
		Return(rosterObject(), nil).Once()

	adapter := reconcile.NewAdapter(testDataConfig())

	item, err := adapter.QueryRoster(context.Background(), mockClient, testBucket, "RoomStatsCopy.csv", corereconcile.Query{Occupant: "Jordan Lee"})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "A3-70", item.(models.RosterRecord).Room)

	item, err = adapter.QueryRoster(context.Background(), mockClient, testBucket, "RoomStatsCopy.csv", corereconcile.Query{ID: "B9-99"})
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestQueryRosterReaderReuse(t *testing.T) {
	// Each call fetches the object fresh; a consumed reader must not be reused.
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "RoomStatsCopy.csv", mock.Anything).
		Return(rosterObject(), nil).Once()

	adapter := reconcile.NewAdapter(testDataConfig())

	item, err := adapter.QueryRoster(context.Background(), mockClient, testBucket, "RoomStatsCopy.csv", corereconcile.Query{ID: "A3-71"})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.False(t, item.(models.RosterRecord).HasOccupancySensor)

	mockClient.AssertExpectations(t)
}

func TestQueryDB(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Room{ID: "A3-70", Occupant: "Jordan Lee"}).Error)

	adapter := reconcile.NewAdapter(testDataConfig())

	item, err := adapter.QueryDB(context.Background(), db, corereconcile.Query{ID: "A3-70"})
	require.NoError(t, err)
	require.NotNil(t, item)

	item, err = adapter.QueryDB(context.Background(), db, corereconcile.Query{Occupant: "Jordan Lee"})
	require.NoError(t, err)
	require.NotNil(t, item)

	item, err = adapter.QueryDB(context.Background(), db, corereconcile.Query{ID: "B9-99"})
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestCheckStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return(listChannel("combined_milas_hall/Flo2.3-A3-70.csv")).Once()
	mockClient.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return(listChannel()).Once()

	adapter := reconcile.NewAdapter(testDataConfig())

	exists, err := adapter.CheckStorage(context.Background(), mockClient, testBucket, "combined_milas_hall", ".csv", "A3-70")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = adapter.CheckStorage(context.Background(), mockClient, testBucket, "combined_milas_hall", ".csv", "B9-99")
	require.NoError(t, err)
	assert.False(t, exists)
}
