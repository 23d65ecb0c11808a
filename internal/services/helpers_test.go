package services

import (
	"fmt"
	"testing"

	"github.com/Alexis-Monk/triviaapi-U/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))
	return db
}

// seedTrivia inserts Science (1), Art (2) and Geography (3) plus the given
// number of questions per category, in that category order.
func seedTrivia(t *testing.T, db *gorm.DB, perCategory int) {
	t.Helper()

	for _, name := range []string{"Science", "Art", "Geography"} {
		require.NoError(t, db.Create(&models.Category{Type: name}).Error)
	}
	for cat := uint(1); cat <= 3; cat++ {
		for i := 1; i <= perCategory; i++ {
			q := models.Question{
				Question:   fmt.Sprintf("Question %d of category %d?", i, cat),
				Answer:     fmt.Sprintf("Answer %d", i),
				CategoryID: cat,
				Difficulty: i%5 + 1,
			}
			require.NoError(t, db.Create(&q).Error)
		}
	}
}
