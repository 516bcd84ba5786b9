//go:build unit

package schedule_test

import (
	"testing"

	"portaria/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	t.Run("dispatches on kind", func(t *testing.T) {
		raw := []byte(`{"visitor_name":"João","date":"2026-09-01","start_time":"14:00"}`)

		p, err := schedule.DecodePayload(schedule.KindVisit, raw)
		require.NoError(t, err)

		visit, ok := p.(schedule.VisitPayload)
		require.True(t, ok)
		assert.Equal(t, "João", visit.VisitorName)
		assert.Equal(t, schedule.KindVisit, p.PayloadKind())
	})

	t.Run("same JSON decodes under different kinds", func(t *testing.T) {
		// The kind column is the tag; payload bytes alone are ambiguous.
		raw := []byte(`{"company":"Elevadores Sul","date":"2026-09-03"}`)

		asIntegration, err := schedule.DecodePayload(schedule.KindIntegration, raw)
		require.NoError(t, err)
		_, ok := asIntegration.(schedule.IntegrationPayload)
		assert.True(t, ok)

		asService, err := schedule.DecodePayload(schedule.KindServiceRequest, raw)
		require.NoError(t, err)
		_, ok = asService.(schedule.ServiceRequestPayload)
		assert.True(t, ok)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := schedule.DecodePayload(schedule.Kind("parking"), []byte(`{}`))
		assert.ErrorIs(t, err, schedule.ErrInvalidKind)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := schedule.DecodePayload(schedule.KindDelivery, []byte(`{"carrier":`))
		assert.Error(t, err)
	})
}

func TestEncodePayload(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		_, err := schedule.EncodePayload(nil)
		assert.ErrorIs(t, err, schedule.ErrNilPayload)
	})

	t.Run("round trip keeps variant fields", func(t *testing.T) {
		in := schedule.DeliveryPayload{
			Carrier:     "Transportadora Azul",
			Description: "Cement bags",
			Date:        "2026-09-02",
			Vehicle:     &schedule.Vehicle{Plate: "ABC1D23"},
		}

		raw, err := schedule.EncodePayload(in)
		require.NoError(t, err)

		out, err := schedule.DecodePayload(schedule.KindDelivery, raw)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}
