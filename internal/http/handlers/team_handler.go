package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salesledger/internal/ledger"
	"salesledger/internal/models"
)

// ListTeamMembers returns participation intervals, filterable by record
// (?record_type=&record_id=), by user (?user_id=) and by open state
// (?active=true).
func ListTeamMembers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.SalesTeamMember{}).Order("start_date DESC")

		recordType := ledger.RecordType(c.Query("record_type"))
		if recordType != "" && !recordType.Supported() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported record_type"})
			return
		}
		if recordType != "" {
			recordID, err := strconv.ParseInt(c.Query("record_id"), 10, 64)
			if err != nil || recordID <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "record_id required with record_type"})
				return
			}
			query = query.Scopes(ledger.ForRecord(recordType, recordID))
		}

		if userStr := c.Query("user_id"); userStr != "" {
			if userID, err := strconv.ParseInt(userStr, 10, 64); err == nil && userID > 0 {
				query = query.Where("user_id = ?", userID)
			}
		}

		if c.Query("active") == "true" {
			query = query.Where("end_date IS NULL")
		}

		var members []models.SalesTeamMember
		if err := query.Limit(200).Find(&members).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"members": members})
	}
}
