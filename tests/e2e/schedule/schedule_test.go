//go:build e2e

package schedule_test

import (
	"fmt"
	"net/http"
	"testing"

	"portaria/internal/domain/user"
	"portaria/internal/handler/dto/request"
	"portaria/internal/handler/dto/response"
	"portaria/tests/common/authtest"
	"portaria/tests/common/builder"
	"portaria/tests/common/httptest"
	"portaria/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	schedulesURL = "/api/schedules"
	pendingURL   = "/api/schedules/pending"
	approvedURL  = "/api/schedules/approved"
)

type ScheduleSuite struct {
	e2e.SharedSuite
}

func TestScheduleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ScheduleSuite))
}

// The in-memory schedule collection outlives a database TRUNCATE, so every
// subtest works with its own profiles and asserts on the schedules it created
// rather than on global list sizes.

func (s *ScheduleSuite) createSchedule(t *testing.T, token string, reqBody request.CreateScheduleRequest) response.ScheduleResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, schedulesURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ScheduleResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

func listContains(list []response.ScheduleResponse, id uuid.UUID) bool {
	for _, item := range list {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (s *ScheduleSuite) TestFullLifecycle() {
	s.Run("create, approve, check in", func() {
		t := s.T()

		requesterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "morador1@example.com", string(user.RoleRequester))
		approverToken := authtest.CreateAndLogin(t, s.DB, s.Router, "sindico1@example.com", string(user.RoleApprover))
		gateToken := authtest.CreateAndLogin(t, s.DB, s.Router, "porteiro1@example.com", string(user.RoleGate))

		created := s.createSchedule(t, requesterToken, builder.NewScheduleBuilder().BuildCreateRequestDTO())
		require.Equal(t, "visit", created.Kind)
		require.Equal(t, "pending", created.Status)
		require.False(t, created.Degraded, "write against a live database must be confirmed")

		// the write is mirrored in the database
		var dbStatus string
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM schedules WHERE id = $1", created.ID).Scan(&dbStatus))
		require.Equal(t, "pending", dbStatus)

		// detail fetch returns the same record
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", schedulesURL, created.ID), nil, requesterToken)
		require.Equal(t, http.StatusOK, dw.Code)
		var detail response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ScheduleResponse{}, "Payload", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(created, detail, opts...); diff != "" {
			t.Errorf("schedule detail mismatch (-created +fetched):\n%s", diff)
		}
		require.JSONEq(t, string(created.Payload), string(detail.Payload))

		// requester sees it on their own list
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, schedulesURL, nil, requesterToken)
		require.Equal(t, http.StatusOK, w.Code)
		var mine []response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.True(t, listContains(mine, created.ID))

		// approver sees it pending and approves
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, approverToken)
		require.Equal(t, http.StatusOK, w.Code)
		var pending []response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pending))
		require.True(t, listContains(pending, created.ID))

		note := "Liberado pela administração"
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", schedulesURL, created.ID),
			request.DecisionRequest{Decision: "approved", Note: &note}, approverToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var approved response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &approved))
		require.Equal(t, "approved", approved.Status)
		require.NotNil(t, approved.ReviewedAt)

		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM schedules WHERE id = $1", created.ID).Scan(&dbStatus))
		require.Equal(t, "approved", dbStatus)

		// gate sees it on the approved list and records the check-in
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, approvedURL, nil, gateToken)
		require.Equal(t, http.StatusOK, w.Code)
		var gateList []response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &gateList))
		require.True(t, listContains(gateList, created.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/check-in", schedulesURL, created.ID),
			request.CheckInRequest{Outcome: "authorized"}, gateToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var checkedIn response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &checkedIn))
		require.NotNil(t, checkedIn.CheckInStatus)
		require.Equal(t, "authorized", *checkedIn.CheckInStatus)
		require.NotNil(t, checkedIn.CheckInAt)

		// a second check-in attempt is refused
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/check-in", schedulesURL, created.ID),
			request.CheckInRequest{Outcome: "authorized"}, gateToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("rejection requires a note", func() {
		t := s.T()

		requesterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "morador2@example.com", string(user.RoleRequester))
		approverToken := authtest.CreateAndLogin(t, s.DB, s.Router, "sindico2@example.com", string(user.RoleApprover))

		created := s.createSchedule(t, requesterToken, builder.NewScheduleBuilder().AsDelivery().BuildCreateRequestDTO())

		statusURL := fmt.Sprintf("%s/%s/status", schedulesURL, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			request.DecisionRequest{Decision: "rejected"}, approverToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// the schedule is untouched by the refused decision
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", schedulesURL, created.ID), nil, requesterToken)
		require.Equal(t, http.StatusOK, gw.Code)
		var current response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &current))
		require.Equal(t, "pending", current.Status)

		note := "Fora do horário permitido"
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			request.DecisionRequest{Decision: "rejected", Note: &note}, approverToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rejected response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejected))
		require.Equal(t, "rejected", rejected.Status)
		require.NotNil(t, rejected.ReviewNote)
		require.Equal(t, note, *rejected.ReviewNote)
	})

	s.Run("gate cannot check in a pending schedule", func() {
		t := s.T()

		requesterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "morador3@example.com", string(user.RoleRequester))
		gateToken := authtest.CreateAndLogin(t, s.DB, s.Router, "porteiro3@example.com", string(user.RoleGate))

		created := s.createSchedule(t, requesterToken, builder.NewScheduleBuilder().BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/check-in", schedulesURL, created.ID),
			request.CheckInRequest{Outcome: "authorized"}, gateToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *ScheduleSuite) TestOwnership() {
	s.Run("owner can edit and cancel a pending schedule", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "morador4@example.com", string(user.RoleRequester))

		created := s.createSchedule(t, ownerToken, builder.NewScheduleBuilder().BuildCreateRequestDTO())

		newName := "Maria de Lourdes"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s", schedulesURL, created.ID),
			request.EditScheduleRequest{DisplayName: &newName}, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var edited response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &edited))
		require.Equal(t, newName, edited.RequestedByName)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", schedulesURL, created.ID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cancelled response.ScheduleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		require.Equal(t, "cancelled", cancelled.Status)
	})

	s.Run("another requester cannot edit someone else's schedule", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "morador5@example.com", string(user.RoleRequester))
		intruderToken := authtest.CreateAndLogin(t, s.DB, s.Router, "morador6@example.com", string(user.RoleRequester))

		created := s.createSchedule(t, ownerToken, builder.NewScheduleBuilder().BuildCreateRequestDTO())

		newName := "Intruso"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s", schedulesURL, created.ID),
			request.EditScheduleRequest{DisplayName: &newName}, intruderToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", schedulesURL, created.ID), nil, intruderToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *ScheduleSuite) TestAuthorization() {
	s.Run("requester cannot reach approver or gate endpoints", func() {
		t := s.T()

		requesterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "morador7@example.com", string(user.RoleRequester))

		for _, url := range []string{pendingURL, approvedURL} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, requesterToken)
			require.Equal(t, http.StatusForbidden, w.Code, url)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, schedulesURL+"/purge", nil, requesterToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("gate cannot decide schedules", func() {
		t := s.T()

		requesterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "morador8@example.com", string(user.RoleRequester))
		gateToken := authtest.CreateAndLogin(t, s.DB, s.Router, "porteiro8@example.com", string(user.RoleGate))

		created := s.createSchedule(t, requesterToken, builder.NewScheduleBuilder().BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", schedulesURL, created.ID),
			request.DecisionRequest{Decision: "approved"}, gateToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("unauthenticated requests are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, schedulesURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, schedulesURL,
			builder.NewScheduleBuilder().BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *ScheduleSuite) TestPurge() {
	s.Run("admin can run the retention purge", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, schedulesURL+"/purge?days=7", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result map[string]int
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		// fresh schedules never cross the retention cutoff
		require.Equal(t, 0, result["removed"])
	})

	s.Run("invalid retention window is rejected", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, schedulesURL+"/purge?days=0", nil, adminToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}
