//go:build e2e

package sale_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"flash-sale-api/internal/handler/dto/request"
	"flash-sale-api/internal/handler/dto/response"
	"flash-sale-api/internal/pkg/sign"
	"flash-sale-api/tests/common/dbtest"
	"flash-sale-api/tests/common/httptest"
	"flash-sale-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	salesURL     = "/api/sales"
	saleURL      = "/api/sales/%d"
	exposureURL  = "/api/sales/%d/exposure"
	executionURL = "/api/sales/%d/execution"
)

type SaleSuite struct {
	e2e.SharedSuite
}

func (s *SaleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestSaleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SaleSuite))
}

// obtains a token through the exposure endpoint
func (s *SaleSuite) exposeToken(t *testing.T, saleID int64) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(exposureURL, saleID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var exposure response.ExposureResponse
	err := httptest.DecodeResponseBody(t, w.Body, &exposure)
	require.NoError(t, err)
	require.True(t, exposure.Exposed, "sale should be open")
	require.NotEmpty(t, exposure.Token)

	return exposure.Token
}

func (s *SaleSuite) execute(t *testing.T, saleID, requesterID int64, token string) *response.ExecutionResponse {
	t.Helper()

	body := request.ExecuteSaleRequest{RequesterID: requesterID, Token: token}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(executionURL, saleID), body)
	require.Equal(t, http.StatusOK, w.Code, "named outcomes answer 200: %s", w.Body.String())

	var execution response.ExecutionResponse
	err := httptest.DecodeResponseBody(t, w.Body, &execution)
	require.NoError(t, err)

	return &execution
}

// =============================================================================
// TestListSales - Listing API tests
// =============================================================================

func (s *SaleSuite) TestListSales() {
	s.Run("Normal case: Sales are listed newest first with paging", func() {
		t := s.T()

		dbtest.CreateOpenSale(t, s.DB, "1000 yen off iPhone", 100)
		dbtest.CreateOpenSale(t, s.DB, "500 yen off iPad", 200)
		dbtest.CreateOpenSale(t, s.DB, "300 yen off AirPods", 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, salesURL+"?offset=0&limit=2", nil)

		var sales []response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sales)
		require.Len(t, sales, 2)
		require.False(t, sales[0].CreatedAt.Before(sales[1].CreatedAt), "newest first")
	})

	s.Run("Error case: Invalid paging parameters are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, salesURL+"?limit=0", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid paging parameters")
	})
}

// =============================================================================
// TestGetSale - Detail API tests (cache-aside path)
// =============================================================================

func (s *SaleSuite) TestGetSale() {
	s.Run("Normal case: Sale detail is returned and cached", func() {
		t := s.T()

		saleID := dbtest.CreateOpenSale(t, s.DB, "1000 yen off iPhone", 100)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, saleID), nil)

		var sale response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sale)
		require.Equal(t, saleID, sale.ID)
		require.Equal(t, "1000 yen off iPhone", sale.Name)
		require.Equal(t, int32(100), sale.Remaining)

		// First read populates the cache
		exists, err := s.Redis.Exists(t.Context(), fmt.Sprintf("sale:%d", saleID)).Result()
		require.NoError(t, err)
		require.Equal(t, int64(1), exists)

		// Second read is served from the cache
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, saleID), nil)
		var cached response.SaleResponse
		httptest.AssertSuccessResponse(t, w2, http.StatusOK, &cached)
		require.Equal(t, sale, cached)
	})

	s.Run("Error case: Unknown sale id is 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, int64(999999)), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Sale not found")
	})

	s.Run("Error case: Malformed sale id is 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, salesURL+"/not-a-number", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid sale ID format")
	})
}

// =============================================================================
// TestExposure - Token exposure tests
// =============================================================================

func (s *SaleSuite) TestExposure() {
	s.Run("Normal case: Open sale exposes a token", func() {
		t := s.T()

		saleID := dbtest.CreateOpenSale(t, s.DB, "1000 yen off iPhone", 100)

		token := s.exposeToken(t, saleID)

		// The token must match the server-side HMAC for this sale
		signer := sign.New(s.Config.Sale.TokenSecret)
		require.True(t, signer.Verify(saleID, token))
	})

	s.Run("Normal case: Sale before its window returns the countdown payload", func() {
		t := s.T()

		now := time.Now().UTC()
		saleID := dbtest.CreateTestSale(t, s.DB, "upcoming sale", 100, now.Add(time.Hour), now.Add(2*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(exposureURL, saleID), nil)

		var exposure response.ExposureResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &exposure)
		require.False(t, exposure.Exposed)
		require.Empty(t, exposure.Token)
		require.Greater(t, exposure.Now, int64(0))
		require.Greater(t, exposure.StartAt, exposure.Now)
		require.Greater(t, exposure.EndAt, exposure.StartAt)
	})

	s.Run("Error case: Unknown sale id is 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(exposureURL, int64(999999)), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Sale not found")
	})
}

// =============================================================================
// TestExecution - Purchase execution tests
// =============================================================================

func (s *SaleSuite) TestExecution() {
	const requesterID = int64(13812345678)

	s.Run("Normal case: Expose then execute wins and decrements stock", func() {
		t := s.T()

		saleID := dbtest.CreateOpenSale(t, s.DB, "1000 yen off iPhone", 5)
		token := s.exposeToken(t, saleID)

		execution := s.execute(t, saleID, requesterID, token)

		require.Equal(t, response.StateSuccess, execution.State)
		require.NotNil(t, execution.Win)
		require.Equal(t, saleID, execution.Win.SaleID)
		require.Equal(t, requesterID, execution.Win.RequesterID)
		require.Equal(t, "1000 yen off iPhone", execution.Win.SaleName)

		require.Equal(t, int32(4), dbtest.RemainingStock(t, s.DB, saleID))
		require.Equal(t, 1, dbtest.CountWinRecords(t, s.DB, saleID))
	})

	s.Run("Normal case: Repeat execution by the same requester reports already won", func() {
		t := s.T()

		saleID := dbtest.CreateOpenSale(t, s.DB, "1000 yen off iPhone", 5)
		token := s.exposeToken(t, saleID)

		first := s.execute(t, saleID, requesterID, token)
		require.Equal(t, response.StateSuccess, first.State)

		second := s.execute(t, saleID, requesterID, token)
		require.Equal(t, response.StateAlreadyWon, second.State)
		require.Nil(t, second.Win)

		// The retry must not consume stock again
		require.Equal(t, int32(4), dbtest.RemainingStock(t, s.DB, saleID))
		require.Equal(t, 1, dbtest.CountWinRecords(t, s.DB, saleID))
	})

	s.Run("Normal case: Exhausted stock reports sale closed", func() {
		t := s.T()

		saleID := dbtest.CreateOpenSale(t, s.DB, "last unit", 1)
		token := s.exposeToken(t, saleID)

		winner := s.execute(t, saleID, requesterID, token)
		require.Equal(t, response.StateSuccess, winner.State)

		loser := s.execute(t, saleID, requesterID+1, token)
		require.Equal(t, response.StateSaleClosed, loser.State)

		require.Equal(t, int32(0), dbtest.RemainingStock(t, s.DB, saleID))
		require.Equal(t, 1, dbtest.CountWinRecords(t, s.DB, saleID))
	})

	s.Run("Error case: Tampered token is rejected without touching the database", func() {
		t := s.T()

		saleID := dbtest.CreateOpenSale(t, s.DB, "1000 yen off iPhone", 5)

		execution := s.execute(t, saleID, requesterID, "deadbeef")
		require.Equal(t, response.StateInvalidToken, execution.State)

		require.Equal(t, int32(5), dbtest.RemainingStock(t, s.DB, saleID))
		require.Equal(t, 0, dbtest.CountWinRecords(t, s.DB, saleID))
	})

	s.Run("Error case: Valid token for a closed window leaves no trace", func() {
		t := s.T()

		now := time.Now().UTC()
		saleID := dbtest.CreateTestSale(t, s.DB, "ended sale", 5, now.Add(-2*time.Hour), now.Add(-time.Hour))

		// The token itself stays valid after the window closes; the decrement
		// guard is what rejects the late request
		token := sign.New(s.Config.Sale.TokenSecret).Sign(saleID)

		execution := s.execute(t, saleID, requesterID, token)
		require.Equal(t, response.StateSaleClosed, execution.State)

		// The registration must roll back together with the failed decrement
		require.Equal(t, int32(5), dbtest.RemainingStock(t, s.DB, saleID))
		require.Equal(t, 0, dbtest.CountWinRecords(t, s.DB, saleID))
	})

	s.Run("Error case: Missing token is a 400", func() {
		t := s.T()

		saleID := dbtest.CreateOpenSale(t, s.DB, "1000 yen off iPhone", 5)

		body := map[string]any{"requesterId": requesterID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(executionURL, saleID), body)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

// =============================================================================
// TestExecutionConcurrency - Oversell protection under parallel requests
// =============================================================================

func (s *SaleSuite) TestExecutionConcurrency() {
	s.Run("Normal case: Concurrent requesters never win more than the stock", func() {
		t := s.T()

		const (
			stock      = int32(3)
			requesters = 20
		)

		saleID := dbtest.CreateOpenSale(t, s.DB, "3 units only", stock)
		token := s.exposeToken(t, saleID)

		// FailNow is only safe on the test goroutine, so workers report back
		// through a channel instead of asserting inline
		var wg sync.WaitGroup
		states := make(chan int, requesters)
		for i := range requesters {
			wg.Add(1)
			go func() {
				defer wg.Done()

				body := request.ExecuteSaleRequest{RequesterID: int64(100000 + i), Token: token}
				jsonBody, err := json.Marshal(body)
				if err != nil {
					return
				}
				req := nethttptest.NewRequest(http.MethodPost, fmt.Sprintf(executionURL, saleID), bytes.NewReader(jsonBody))
				req.Header.Set("Content-Type", "application/json")
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)

				var execution response.ExecutionResponse
				if err := json.Unmarshal(w.Body.Bytes(), &execution); err != nil {
					return
				}
				states <- execution.State
			}()
		}
		wg.Wait()
		close(states)

		outcomes := make(map[int]int)
		total := 0
		for state := range states {
			outcomes[state]++
			total++
		}
		require.Equal(t, requesters, total, "every request must yield a decodable outcome")

		require.Equal(t, int(stock), outcomes[response.StateSuccess], "exactly one win per unit of stock")
		require.Equal(t, requesters-int(stock), outcomes[response.StateSaleClosed])

		require.Equal(t, int32(0), dbtest.RemainingStock(t, s.DB, saleID))
		require.Equal(t, int(stock), dbtest.CountWinRecords(t, s.DB, saleID))
	})
}

// =============================================================================
// TestServerTime - Countdown clock endpoint
// =============================================================================

func (s *SaleSuite) TestServerTime() {
	s.Run("Normal case: Server time is returned in unix millis", func() {
		t := s.T()

		before := time.Now().UnixMilli()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/time", nil)

		var serverTime response.TimeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &serverTime)
		require.GreaterOrEqual(t, serverTime.Now, before)
		require.LessOrEqual(t, serverTime.Now, time.Now().UnixMilli())
	})
}
