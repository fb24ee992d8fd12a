package status_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newCoreStatus(slug status.Slug, name string) *status.Status {
	def := status.DefaultDefinition(name)
	def.Color = "#10B981"
	return status.RestoreStatus(kernel.NewUUID(), slug, def, true, fixedNow, fixedNow)
}

func newCustomStatus(t *testing.T) *status.Status {
	t.Helper()
	st, err := status.NewStatus(kernel.NewUUID(), "AWAITING_PROOF", status.DefaultDefinition("Awaiting Proof"), fixedNow)
	require.NoError(t, err)
	return st
}

func TestNewStatus(t *testing.T) {
	t.Run("should apply creation defaults", func(t *testing.T) {
		st := newCustomStatus(t)

		require.NoError(t, st.Validate())
		assert.Equal(t, status.Slug("AWAITING_PROOF"), st.Slug())
		assert.Equal(t, "Awaiting Proof", st.Name())
		assert.False(t, st.IsCore())
		assert.True(t, st.IsActive())
		assert.True(t, st.Definition().IncludeInReports)
		assert.Equal(t, fixedNow, st.CreatedAt())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		def := status.DefaultDefinition("")
		def.Color = "green"

		st, err := status.NewStatus(kernel.UUID{}, "bad", def, fixedNow)

		require.Error(t, err)
		assert.Nil(t, st)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "color")
	})

	t.Run("should reject an overlong name", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'x'
		}

		_, err := status.NewStatus(kernel.NewUUID(), "LONG", status.DefaultDefinition(string(long)), fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestStatus_Validate_ZeroValue(t *testing.T) {
	var st *status.Status
	require.ErrorIs(t, st.Validate(), status.ErrStatusIsNotConstructed)
	require.ErrorIs(t, (&status.Status{}).Validate(), status.ErrStatusIsNotConstructed)
}

func TestStatus_ApplyPatch_Core(t *testing.T) {
	t.Run("color on a core status is forbidden", func(t *testing.T) {
		paid := newCoreStatus(status.Paid, "Paid")
		before := paid.Definition()

		err := paid.ApplyPatch(status.Patch{Color: status.Some("#FF0000")}, fixedNow.Add(time.Hour))

		var forbidden *errs.ForbiddenFieldEditError
		require.True(t, errors.As(err, &forbidden))
		assert.Equal(t, []string{status.FieldColor}, forbidden.Fields)
		assert.Equal(t, before, paid.Definition())
		assert.Equal(t, fixedNow, paid.UpdatedAt())
	})

	t.Run("description on a core status is accepted", func(t *testing.T) {
		paid := newCoreStatus(status.Paid, "Paid")
		later := fixedNow.Add(time.Hour)

		err := paid.ApplyPatch(status.Patch{Description: status.Some("Payment captured")}, later)

		require.NoError(t, err)
		assert.Equal(t, "Payment captured", paid.Definition().Description)
		assert.Equal(t, later, paid.UpdatedAt())
	})

	t.Run("mixed patch is rejected as a whole", func(t *testing.T) {
		paid := newCoreStatus(status.Paid, "Paid")

		err := paid.ApplyPatch(status.Patch{
			Description: status.Some("changed"),
			Name:        status.Some("Renamed"),
			IsActive:    status.Some(false),
		}, fixedNow)

		var forbidden *errs.ForbiddenFieldEditError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, []string{status.FieldName, status.FieldIsActive}, forbidden.Fields)
		assert.Empty(t, paid.Definition().Description)
	})

	t.Run("whole whitelist is editable", func(t *testing.T) {
		paid := newCoreStatus(status.Paid, "Paid")
		tplID := kernel.NewUUID()

		err := paid.ApplyPatch(status.Patch{
			Description:      status.Some("d"),
			EmailTemplateID:  status.Some(&tplID),
			SendEmailOnEnter: status.Some(true),
			SortOrder:        status.Some(7),
		}, fixedNow)

		require.NoError(t, err)
		assert.True(t, paid.SendEmailOnEnter())
		assert.True(t, paid.EmailTemplateID().IsEqual(tplID))
		assert.Equal(t, 7, paid.Definition().SortOrder)
	})
}

func TestStatus_ApplyPatch_Custom(t *testing.T) {
	t.Run("any field may change", func(t *testing.T) {
		st := newCustomStatus(t)

		err := st.ApplyPatch(status.Patch{
			Name:     status.Some("Proof Pending"),
			Color:    status.Some("#123ABC"),
			IsActive: status.Some(false),
		}, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, "Proof Pending", st.Name())
		assert.Equal(t, "#123ABC", st.Definition().Color)
		assert.False(t, st.IsActive())
		assert.Equal(t, status.Slug("AWAITING_PROOF"), st.Slug())
	})

	t.Run("empty patch is a validation error", func(t *testing.T) {
		st := newCustomStatus(t)

		require.ErrorIs(t, st.ApplyPatch(status.Patch{}, fixedNow), errs.ErrValueIsRequired)
	})

	t.Run("invalid values leave the status untouched", func(t *testing.T) {
		st := newCustomStatus(t)

		err := st.ApplyPatch(status.Patch{Name: status.Some("  ")}, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Awaiting Proof", st.Name())
	})

	t.Run("nil template id unbinds", func(t *testing.T) {
		st := newCustomStatus(t)
		tplID := kernel.NewUUID()
		require.NoError(t, st.ApplyPatch(status.Patch{EmailTemplateID: status.Some(&tplID)}, fixedNow))

		require.NoError(t, st.ApplyPatch(status.Patch{EmailTemplateID: status.Some[*kernel.UUID](nil)}, fixedNow))

		assert.Nil(t, st.EmailTemplateID())
	})
}

func TestStatus_CanDelete(t *testing.T) {
	custom := newCustomStatus(t)
	core := newCoreStatus(status.Processing, "Processing")

	assert.True(t, custom.CanDelete(0))
	assert.False(t, custom.CanDelete(3))
	assert.False(t, core.CanDelete(0))
	assert.False(t, core.CanDelete(10))
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name       string
		isCore     bool
		orderCount int64
		want       bool
	}{
		{"custom without orders", false, 0, true},
		{"custom with orders", false, 3, false},
		{"core without orders", true, 0, false},
		{"core with orders", true, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.CanDelete(tt.isCore, tt.orderCount))
		})
	}
}

func TestPatch_TouchedFields(t *testing.T) {
	p := status.Patch{
		SortOrder:   status.Some(0),
		Description: status.Some(""),
	}

	assert.Equal(t, []string{status.FieldDescription, status.FieldSortOrder}, p.TouchedFields())
	assert.Empty(t, p.ForbiddenOnCore())
	assert.False(t, p.IsEmpty())
	assert.True(t, status.Patch{}.IsEmpty())
}
