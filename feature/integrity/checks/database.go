package checks

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"bas-manager/core/database"
	"bas-manager/feature/rooms/models"

	"gorm.io/gorm"
)

// DatabaseReport strictly types the result of a database schema check.
type DatabaseReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	ExtraColumns   []string `json:"extra_columns"`
}

// CheckDatabase verifies the rooms table schema using the GORM model as the
// source of truth.
func CheckDatabase(db *gorm.DB) (*DatabaseReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	model := models.Room{}
	tableName := model.TableName()

	report := &DatabaseReport{
		Table:          tableName,
		Matched:        true,
		MissingColumns: []string{},
		ExtraColumns:   []string{},
	}

	expected := make(map[string]struct{})
	val := reflect.TypeOf(model)
	for i := 0; i < val.NumField(); i++ {
		colName := parseGormColumn(val.Field(i).Tag.Get("gorm"))
		if colName != "" {
			expected[colName] = struct{}{}
		}
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", tableName, err)
	}

	actual := make(map[string]struct{}, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = struct{}{}
	}

	for colName := range expected {
		if _, ok := actual[colName]; !ok {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Matched = false
		}
	}
	for colName := range actual {
		if _, ok := expected[colName]; !ok {
			report.ExtraColumns = append(report.ExtraColumns, colName)
		}
	}

	sort.Strings(report.MissingColumns)
	sort.Strings(report.ExtraColumns)

	return report, nil
}

// parseGormColumn extracts the column name from a gorm struct tag.
func parseGormColumn(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}
