package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesledger/internal/ledger"
)

// shareEventDTO mirrors the platform's share-change notification. Principal
// fields are deliberately not required at binding time: a payload missing
// them must still reach the dispatcher so the miss is recorded as a
// diagnostic, not bounced as a 400.
type shareEventDTO struct {
	Kind          string `json:"kind" binding:"required"`
	RecordType    string `json:"record_type" binding:"required"`
	RecordID      int64  `json:"record_id" binding:"required"`
	PrincipalID   int64  `json:"principal_id"`
	PrincipalKind string `json:"principal_kind"`
	AccessMask    string `json:"access_mask"`
}

// ShareEvent ingests one access-control change event and applies it to the
// participation ledger. Soft failures are consumed (200); hard store
// failures surface as 500 with the wrapped message.
func ShareEvent(d *ledger.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in shareEventDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		kind := ledger.PrincipalKind(in.PrincipalKind)
		if kind == "" {
			kind = ledger.PrincipalUser
		}

		ev := ledger.ShareEvent{
			Kind:       in.Kind,
			Target:     ledger.RecordRef{Type: ledger.RecordType(in.RecordType), ID: in.RecordID},
			Principal:  ledger.PrincipalRef{ID: in.PrincipalID, Kind: kind},
			AccessMask: in.AccessMask,
		}

		if err := d.Dispatch(c.Request.Context(), ev); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "handled"})
	}
}
