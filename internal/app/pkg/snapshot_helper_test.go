package pkg

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSnapshot_ClientFields(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")
	createdAt := time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC)

	client := &models.Client{
		ID:        id,
		Name:      "Acme Ltda",
		Email:     "contact@acme.example",
		Type:      models.ClientTypeCompany,
		Document:  "12345678000190",
		Status:    models.ClientStatusActive,
		CreatedBy: "maria",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	snap := Snapshot(client)

	assert.Equal(t, id.String(), snap["id"])
	assert.Equal(t, "Acme Ltda", snap["name"])
	assert.Equal(t, "company", snap["type"])
	assert.Equal(t, "2024-01-30T12:00:00Z", snap["created_at"])
}

func TestSnapshot_ExcludesRelationships(t *testing.T) {
	t.Parallel()

	client := &models.Client{
		Name: "Acme Ltda",
		Contacts: []models.ClientContact{
			{Name: "João"},
		},
	}

	snap := Snapshot(client)

	_, ok := snap["contacts"]
	assert.False(t, ok)
}

func TestSnapshot_NilOptionalsRenderEmpty(t *testing.T) {
	t.Parallel()

	client := &models.Client{Name: "Acme Ltda"}

	snap := Snapshot(client)

	assert.Equal(t, "", snap["last_contact"])
	assert.Equal(t, "", snap["deleted_at"])
}

func TestSnapshot_DeletedAtRendersRFC3339WhenSet(t *testing.T) {
	t.Parallel()

	deletedAt := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	client := &models.Client{
		Name:      "Gone Ltda",
		DeletedAt: gorm.DeletedAt{Time: deletedAt, Valid: true},
	}

	snap := Snapshot(client)

	assert.Equal(t, "2024-02-01T09:30:00Z", snap["deleted_at"])
}

func TestSnapshot_DecimalFields(t *testing.T) {
	t.Parallel()

	quote := &models.Quote{
		Subtotal: decimal.NewFromFloat(100.50),
		Discount: decimal.NewFromFloat(10),
		Tax:      decimal.NewFromFloat(5.25),
		Total:    decimal.NewFromFloat(95.75),
	}

	snap := Snapshot(quote)

	assert.Equal(t, "100.5", snap["subtotal"])
	assert.Equal(t, "95.75", snap["total"])

	_, ok := snap["items"]
	assert.False(t, ok)
}

func TestSnapshot_UpdateProducesDistinctMaps(t *testing.T) {
	t.Parallel()

	client := &models.Client{Name: "Before"}
	before := Snapshot(client)

	client.Name = "After"
	after := Snapshot(client)

	assert.Equal(t, "Before", before["name"])
	assert.Equal(t, "After", after["name"])
	assert.NotEqual(t, before, after)
}

func TestSnapshot_NonStructInputs(t *testing.T) {
	t.Parallel()

	require.Empty(t, Snapshot(nil))
	require.Empty(t, Snapshot("not a struct"))

	var client *models.Client
	require.Empty(t, Snapshot(client))
}
