package services

import (
	"testing"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBuildStaffUpdates_OnlyCityLeavesOtherFieldsAlone(t *testing.T) {
	updates := buildStaffUpdates(dto.StaffRequest{City: "Pune"})

	// city plus the always-recomputed center_id, nothing else
	require.Len(t, updates, 2)
	assert.Equal(t, "Pune", updates["city"])
	assert.Nil(t, updates["center_id"])
	assert.NotContains(t, updates, "in_ir")
	assert.NotContains(t, updates, "first_name")
}

func TestBuildStaffUpdates_EmptyStringsCannotClearFields(t *testing.T) {
	updates := buildStaffUpdates(dto.StaffRequest{Email: "", State: ""})

	assert.NotContains(t, updates, "email")
	assert.NotContains(t, updates, "state")
}

func TestBuildStaffUpdates_InIRAppliedWhenPresent(t *testing.T) {
	off := false
	updates := buildStaffUpdates(dto.StaffRequest{InIR: &off})

	require.Contains(t, updates, "in_ir")
	assert.Equal(t, false, updates["in_ir"])
}

func TestBuildStaffUpdates_CenterIDAlwaysRecomputed(t *testing.T) {
	updates := buildStaffUpdates(dto.StaffRequest{CenterID: "center-7"})
	require.NotNil(t, updates["center_id"])
	assert.Equal(t, "center-7", *updates["center_id"].(*string))

	updates = buildStaffUpdates(dto.StaffRequest{CenterID: ""})
	require.Contains(t, updates, "center_id")
	assert.Nil(t, updates["center_id"])
}

func TestBuildStaffUpdates_OpaquePayloadsIncludedWhenSupplied(t *testing.T) {
	addr := datatypes.JSON(`{"label":"Baner"}`)
	updates := buildStaffUpdates(dto.StaffRequest{Address: addr})

	assert.Equal(t, addr, updates["address"])
	assert.NotContains(t, updates, "occupation")
}

func TestNormalizeCenterID(t *testing.T) {
	assert.Nil(t, normalizeCenterID(""))

	got := normalizeCenterID("center-1")
	require.NotNil(t, got)
	assert.Equal(t, "center-1", *got)
}

func TestStaffExportFilename(t *testing.T) {
	tests := []struct {
		name                          string
		centerID, occupation, address string
		want                          string
	}{
		{"all filters", "c1", "Nurse", "Baner", "staff_c1_Nurse_Baner.xlsx"},
		{"occupation only", "", "Nurse", "", "staff_Nurse.xlsx"},
		{"no filters", "", "", "", "staff.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, staffExportFilename(tt.centerID, tt.occupation, tt.address))
		})
	}
}

func TestPageSlice(t *testing.T) {
	staff := make([]models.Staff, 30)

	assert.Len(t, pageSlice(staff, 1, 12), 12)
	assert.Len(t, pageSlice(staff, 2, 12), 12)
	assert.Len(t, pageSlice(staff, 3, 12), 6)
	assert.Empty(t, pageSlice(staff, 4, 12))
}

func TestReverse(t *testing.T) {
	staff := []models.Staff{
		{FirstName: "a"}, {FirstName: "b"}, {FirstName: "c"},
	}
	reverse(staff)

	assert.Equal(t, "c", staff[0].FirstName)
	assert.Equal(t, "b", staff[1].FirstName)
	assert.Equal(t, "a", staff[2].FirstName)
}

func TestPayloadLabel(t *testing.T) {
	assert.Equal(t, "Nurse", models.PayloadLabel(datatypes.JSON(`{"label":"Nurse","code":7}`)))
	assert.Equal(t, "", models.PayloadLabel(nil))
	assert.Equal(t, "", models.PayloadLabel(datatypes.JSON(`{"name":"no label"}`)))
	assert.Equal(t, "", models.PayloadLabel(datatypes.JSON(`[1,2]`)))
}
